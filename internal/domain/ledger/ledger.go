package ledger

import (
	"fmt"
	"strings"

	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/shopspring/decimal"
)

// PurchaseEntries returns one entry per dollar spent, fractions included.
func PurchaseEntries(usdSpent decimal.Decimal) (decimal.Decimal, error) {
	if !usdSpent.IsPositive() {
		return decimal.Zero, errorx.New(errorx.InvalidAmount, "Spent amount must be positive")
	}

	return usdSpent, nil
}

// PurchaseCredits returns one ticket credit per whole dollar spent.
func PurchaseCredits(usdSpent decimal.Decimal) int64 {
	if !usdSpent.IsPositive() {
		return 0
	}

	return usdSpent.Floor().IntPart()
}

func TweetClaimKey(wallet string, window drawwindow.Window, isBonus bool) string {
	return fmt.Sprintf("tweet:%s:%d:%t", wallet, window.Start.Unix(), isBonus)
}

func PurchaseClaimKey(signature string) string {
	return "purchase:" + signature
}

func CreditClaimKey(batchID string) string {
	return "credit:" + batchID
}

func isBonusTweetKey(claimKey string) bool {
	return strings.HasPrefix(claimKey, "tweet:") && strings.HasSuffix(claimKey, ":true")
}

type Summary struct {
	Window          drawwindow.Window
	PurchaseEntries decimal.Decimal
	TweetEntries    decimal.Decimal
	CreditEntries   decimal.Decimal

	// TotalEntries is the sum of purchase and tweet entries.
	TotalEntries decimal.Decimal
	TixPurchased decimal.Decimal

	// TweetClaimed and BonusTweetClaimed tell which tweet entries of the
	// window are used up.
	TweetClaimed      bool
	BonusTweetClaimed bool
}

// Summarize folds entries created inside window. Entries outside the window
// are ignored, so callers may pass a superset.
func Summarize(entries []entity.Entry, window drawwindow.Window) Summary {
	s := Summary{
		Window:          window,
		PurchaseEntries: decimal.Zero,
		TweetEntries:    decimal.Zero,
		CreditEntries:   decimal.Zero,
		TixPurchased:    decimal.Zero,
	}

	for _, e := range entries {
		if !window.Contains(e.CreatedAt) {
			continue
		}

		switch e.Type {
		case entity.PurchaseEntry:
			s.PurchaseEntries = s.PurchaseEntries.Add(e.Entries)
			s.TixPurchased = s.TixPurchased.Add(e.TixAmount)
		case entity.TweetEntry:
			s.TweetEntries = s.TweetEntries.Add(e.Entries)
			if isBonusTweetKey(e.ClaimKey) {
				s.BonusTweetClaimed = true
			} else {
				s.TweetClaimed = true
			}
		case entity.CreditEntry:
			s.CreditEntries = s.CreditEntries.Add(e.Entries)
		}
	}

	s.TotalEntries = s.PurchaseEntries.Add(s.TweetEntries)
	return s
}
