package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Purchase struct {
	Base

	Signature string `gorm:"uniqueIndex"`
	Wallet    string `gorm:"index"`

	Lamports    uint64
	TixAmount   decimal.Decimal `gorm:"type:decimal(38,18)"`
	SolPriceUSD decimal.Decimal `gorm:"type:decimal(38,18)"`
	USDSpent    decimal.Decimal `gorm:"type:decimal(38,18)"`
	Credits     int64

	Slot      uint64
	BlockTime time.Time
}
