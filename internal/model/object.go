package model

import "github.com/shopspring/decimal"

type AccessToken struct {
	Wallet string `json:"wallet"`
}

type Draw struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	WinningNumbers    []int           `json:"winning_numbers,omitempty"`
	Moonball          int             `json:"moonball,omitempty"`
	JackpotUSD        decimal.Decimal `json:"jackpot_usd"`
	Winners           []string        `json:"winners,omitempty"`
	OutcomeRecordedAt string          `json:"outcome_recorded_at,omitempty"`
}

type WalletSummary struct {
	Wallet      string `json:"wallet"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`

	PurchaseEntries decimal.Decimal `json:"purchase_entries"`
	TweetEntries    decimal.Decimal `json:"tweet_entries"`
	CreditEntries   decimal.Decimal `json:"credit_entries"`
	TotalEntries    decimal.Decimal `json:"total_entries"`
	TixPurchased    decimal.Decimal `json:"tix_purchased"`

	TweetClaimed      bool `json:"tweet_claimed"`
	BonusTweetClaimed bool `json:"bonus_tweet_claimed"`
}

type TicketNumbers struct {
	Numbers  []int `json:"numbers"`
	Moonball int   `json:"moonball"`
}

type Ticket struct {
	ID        string `json:"id"`
	DrawID    string `json:"draw_id"`
	BatchID   string `json:"batch_id"`
	Numbers   []int  `json:"numbers"`
	Moonball  int    `json:"moonball"`
	CreatedAt string `json:"created_at"`
}

type Purchase struct {
	Signature   string          `json:"signature"`
	Wallet      string          `json:"wallet"`
	Lamports    uint64          `json:"lamports"`
	TixAmount   decimal.Decimal `json:"tix_amount"`
	SolPriceUSD decimal.Decimal `json:"sol_price_usd"`
	USDSpent    decimal.Decimal `json:"usd_spent"`
	Entries     decimal.Decimal `json:"entries"`
	Credits     int64           `json:"credits"`
	Slot        uint64          `json:"slot"`
	BlockTime   string          `json:"block_time"`
}

type PayReward struct {
	ID          string `json:"id"`
	Wallet      string `json:"wallet"`
	Note        string `json:"note"`
	Token       string `json:"token"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	TxSignature string `json:"tx_signature,omitempty"`
	CreatedAt   string `json:"created_at"`
}
