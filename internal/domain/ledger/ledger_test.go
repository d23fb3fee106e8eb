package ledger

import (
	"testing"
	"time"

	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPurchaseEntries(t *testing.T) {
	n, err := PurchaseEntries(d("12.5"))
	require.NoError(t, err)
	require.True(t, d("12.5").Equal(n))

	_, err = PurchaseEntries(decimal.Zero)
	require.True(t, errorx.Is(err, errorx.InvalidAmount))

	_, err = PurchaseEntries(d("-1"))
	require.True(t, errorx.Is(err, errorx.InvalidAmount))
}

func TestPurchaseCredits(t *testing.T) {
	require.Equal(t, int64(12), PurchaseCredits(d("12.99")))
	require.Equal(t, int64(0), PurchaseCredits(d("0.99")))
	require.Equal(t, int64(0), PurchaseCredits(d("-3.5")))
	require.Equal(t, int64(5), PurchaseCredits(d("5")))
}

func TestClaimKeys(t *testing.T) {
	w := drawwindow.Window{Start: time.Unix(1709607600, 0).UTC()}

	require.Equal(t, "tweet:abc:1709607600:true", TweetClaimKey("abc", w, true))
	require.NotEqual(t, TweetClaimKey("abc", w, true), TweetClaimKey("abc", w, false))
	require.True(t, isBonusTweetKey(TweetClaimKey("abc", w, true)))
	require.False(t, isBonusTweetKey(TweetClaimKey("abc", w, false)))
	require.Equal(t, "purchase:sig", PurchaseClaimKey("sig"))
	require.Equal(t, "credit:batch", CreditClaimKey("batch"))
}

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC)
	w := drawwindow.Window{Start: start, End: start.Add(drawwindow.Length)}

	entry := func(typ entity.EntryType, entries, tix string, at time.Time) entity.Entry {
		return entity.Entry{
			Base:      entity.Base{CreatedAt: at},
			Type:      typ,
			Entries:   d(entries),
			TixAmount: d(tix),
		}
	}

	entries := []entity.Entry{
		entry(entity.PurchaseEntry, "12.5", "1250", start),
		entry(entity.PurchaseEntry, "0.25", "25", start.Add(time.Hour)),
		entry(entity.TweetEntry, "1", "0", start.Add(2*time.Hour)),
		entry(entity.TweetEntry, "1", "0", start.Add(3*time.Hour)),
		entry(entity.CreditEntry, "3", "0", start.Add(4*time.Hour)),

		// Outside of the window.
		entry(entity.PurchaseEntry, "100", "10000", start.Add(-time.Nanosecond)),
		entry(entity.TweetEntry, "1", "0", w.End),
	}

	s := Summarize(entries, w)
	require.True(t, d("12.75").Equal(s.PurchaseEntries), s.PurchaseEntries.String())
	require.True(t, d("2").Equal(s.TweetEntries))
	require.True(t, d("3").Equal(s.CreditEntries))
	require.True(t, d("14.75").Equal(s.TotalEntries))
	require.True(t, d("1275").Equal(s.TixPurchased))
	require.Equal(t, w, s.Window)
	require.False(t, s.TweetClaimed)
	require.False(t, s.BonusTweetClaimed)

	// Folding the same ledger twice gives the same answer.
	require.Equal(t, s, Summarize(entries, w))
}

func TestSummarize_TweetClaims(t *testing.T) {
	start := time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC)
	w := drawwindow.Window{Start: start, End: start.Add(drawwindow.Length)}

	regular := entity.Entry{
		Base:     entity.Base{CreatedAt: start},
		Type:     entity.TweetEntry,
		Entries:  d("1"),
		ClaimKey: TweetClaimKey("abc", w, false),
	}
	bonus := regular
	bonus.ClaimKey = TweetClaimKey("abc", w, true)

	s := Summarize([]entity.Entry{regular}, w)
	require.True(t, s.TweetClaimed)
	require.False(t, s.BonusTweetClaimed)

	s = Summarize([]entity.Entry{bonus}, w)
	require.False(t, s.TweetClaimed)
	require.True(t, s.BonusTweetClaimed)

	s = Summarize([]entity.Entry{regular, bonus}, w)
	require.True(t, s.TweetClaimed)
	require.True(t, s.BonusTweetClaimed)
	require.True(t, d("2").Equal(s.TweetEntries))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, drawwindow.Window{})
	require.True(t, s.TotalEntries.IsZero())
	require.True(t, s.TixPurchased.IsZero())
}
