package entity

import "time"

type TicketCredit struct {
	Wallet    string `gorm:"primarykey"`
	Balance   int64  `gorm:"check:chk_ticket_credits_balance,balance >= 0"`
	UpdatedAt time.Time
}

type FreeTicketClaim struct {
	Base

	Wallet string `gorm:"uniqueIndex:idx_free_ticket_claims_wallet_draw"`
	DrawID string `gorm:"uniqueIndex:idx_free_ticket_claims_wallet_draw"`
}
