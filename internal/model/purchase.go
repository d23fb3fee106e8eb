package model

import "github.com/shopspring/decimal"

type PreflightPurchaseRequest struct {
	Lamports uint64 `json:"lamports" form:"lamports"`
}

type PreflightPurchaseResponse struct {
	Balance          uint64          `json:"balance"`
	Required         uint64          `json:"required"`
	Sufficient       bool            `json:"sufficient"`
	SolPriceUSD      decimal.Decimal `json:"sol_price_usd"`
	EstimatedUSD     decimal.Decimal `json:"estimated_usd"`
	EstimatedEntries decimal.Decimal `json:"estimated_entries"`
	EstimatedCredits int64           `json:"estimated_credits"`
}

type ConfirmPurchaseRequest struct {
	Signature string `json:"signature"`
}

type ConfirmPurchaseResponse struct {
	Purchase        Purchase `json:"purchase"`
	AlreadyRecorded bool     `json:"already_recorded"`
}
