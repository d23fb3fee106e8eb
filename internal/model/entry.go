package model

import "github.com/shopspring/decimal"

type GetWalletSummaryRequest struct{}

type GetWalletSummaryResponse struct {
	Summary WalletSummary `json:"summary"`
}

type ClaimTweetEntryRequest struct {
	TweetURL string `json:"tweet_url"`
	IsBonus  bool   `json:"is_bonus"`
}

type ClaimTweetEntryResponse struct {
	Entries decimal.Decimal `json:"entries"`
}
