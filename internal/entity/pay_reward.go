package entity

import (
	"database/sql"

	"github.com/moonticket/backend/pkg/enum"
)

type PayRewardStatus string

var (
	PayRewardPending = enum.New(PayRewardStatus("pending"))
	PayRewardSent    = enum.New(PayRewardStatus("sent"))
	PayRewardFailed  = enum.New(PayRewardStatus("failed"))
)

type PayReward struct {
	Base

	Wallet string `gorm:"index"`

	// Note contains the reason of this payout, e.g. checkin:day-3.
	Note   string
	Token  string
	Amount int64

	Status      PayRewardStatus `gorm:"index"`
	TxSignature sql.NullString
}
