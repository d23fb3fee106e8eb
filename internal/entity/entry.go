package entity

import (
	"github.com/moonticket/backend/pkg/enum"
	"github.com/shopspring/decimal"
)

type EntryType string

var (
	PurchaseEntry = enum.New(EntryType("purchase"))
	TweetEntry    = enum.New(EntryType("tweet"))
	CreditEntry   = enum.New(EntryType("credit"))
)

// Entry is an append-only ledger row. ClaimKey is unique across the table, a
// second append with the same key is rejected by the database.
type Entry struct {
	Base

	Wallet    string `gorm:"index"`
	Type      EntryType
	Entries   decimal.Decimal `gorm:"type:decimal(38,18)"`
	TixAmount decimal.Decimal `gorm:"type:decimal(38,18)"`
	Reference string
	ClaimKey  string `gorm:"uniqueIndex"`
}
