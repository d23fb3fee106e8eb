package domain

import (
	"context"
	"testing"
	"time"

	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/api/twitter"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_entryDomain_RecordPurchaseEntry(t *testing.T) {
	ctx := testutil.NewMockContext()
	d := NewEntryDomain(repository.NewEntryRepository(), newTestResolver(), nil)
	signature := testutil.NewSignature()

	entry, err := d.RecordPurchaseEntry(ctx, testutil.Wallet1, signature,
		decimal.RequireFromString("12.75"), decimal.NewFromInt(400))
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("12.75").Equal(entry.Entries))

	_, err = d.RecordPurchaseEntry(ctx, testutil.Wallet1, signature,
		decimal.RequireFromString("12.75"), decimal.NewFromInt(400))
	require.True(t, errorx.Is(err, errorx.DuplicateClaim))

	_, err = d.RecordPurchaseEntry(ctx, testutil.Wallet1, testutil.NewSignature(), decimal.Zero, decimal.Zero)
	require.True(t, errorx.Is(err, errorx.InvalidAmount))

	_, err = d.RecordPurchaseEntry(ctx, testutil.Wallet1, testutil.NewSignature(), decimal.NewFromInt(-3), decimal.Zero)
	require.True(t, errorx.Is(err, errorx.InvalidAmount))
}

func Test_entryDomain_RecordTweetEntry(t *testing.T) {
	ctx := testutil.NewMockContext()
	d := NewEntryDomain(repository.NewEntryRepository(), newTestResolver(), nil)

	_, err := d.RecordTweetEntry(ctx, testutil.Wallet1, "1", false)
	require.NoError(t, err)

	// A bonus tweet is tracked separately.
	_, err = d.RecordTweetEntry(ctx, testutil.Wallet1, "2", true)
	require.NoError(t, err)

	_, err = d.RecordTweetEntry(ctx, testutil.Wallet1, "3", false)
	require.True(t, errorx.Is(err, errorx.DuplicateClaim))

	_, err = d.RecordTweetEntry(ctx, testutil.Wallet1, "4", true)
	require.True(t, errorx.Is(err, errorx.DuplicateClaim))

	_, err = d.RecordTweetEntry(ctx, testutil.Wallet2, "5", false)
	require.NoError(t, err)
}

func Test_entryDomain_RecordTweetEntry_AtBoundary(t *testing.T) {
	ctx := testutil.NewMockContext()
	d := NewEntryDomain(repository.NewEntryRepository(), newTestResolver(), nil)

	boundary := time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC)
	before := boundary.Add(-time.Millisecond)

	entry, err := d.recordTweetEntry(ctx, testutil.Wallet1, "1", false, before)
	require.NoError(t, err)
	require.True(t, before.Equal(entry.CreatedAt))

	last, err := d.SummarizeWallet(ctx, testutil.Wallet1, before)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(1).Equal(last.TweetEntries))
	require.True(t, last.TweetClaimed)

	current, err := d.SummarizeWallet(ctx, testutil.Wallet1, boundary)
	require.NoError(t, err)
	require.True(t, current.TweetEntries.IsZero())
	require.False(t, current.TweetClaimed)

	// The new window has its own regular tweet entry.
	_, err = d.recordTweetEntry(ctx, testutil.Wallet1, "2", false, boundary)
	require.NoError(t, err)
	_, err = d.recordTweetEntry(ctx, testutil.Wallet1, "3", false, boundary.Add(time.Hour))
	require.True(t, errorx.Is(err, errorx.DuplicateClaim))
}

func Test_entryDomain_SummarizeWallet(t *testing.T) {
	ctx := testutil.NewMockContext()
	d := NewEntryDomain(repository.NewEntryRepository(), newTestResolver(), nil)

	_, err := d.RecordPurchaseEntry(ctx, testutil.Wallet1, testutil.NewSignature(),
		decimal.RequireFromString("10.5"), decimal.NewFromInt(300))
	require.NoError(t, err)
	_, err = d.RecordPurchaseEntry(ctx, testutil.Wallet1, testutil.NewSignature(),
		decimal.RequireFromString("2.25"), decimal.NewFromInt(60))
	require.NoError(t, err)
	_, err = d.RecordTweetEntry(ctx, testutil.Wallet1, "1", false)
	require.NoError(t, err)
	_, err = d.RecordPurchaseEntry(ctx, testutil.Wallet2, testutil.NewSignature(),
		decimal.NewFromInt(99), decimal.NewFromInt(1))
	require.NoError(t, err)

	summary, err := d.SummarizeWallet(ctx, testutil.Wallet1, time.Now())
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("12.75").Equal(summary.PurchaseEntries))
	require.True(t, decimal.NewFromInt(1).Equal(summary.TweetEntries))
	require.True(t, decimal.RequireFromString("13.75").Equal(summary.TotalEntries))
	require.True(t, decimal.NewFromInt(360).Equal(summary.TixPurchased))
	require.True(t, summary.TweetClaimed)
	require.False(t, summary.BonusTweetClaimed)

	// Entries of the current window do not count for the next one.
	next, err := d.SummarizeWallet(ctx, testutil.Wallet1, time.Now().Add(8*24*time.Hour))
	require.NoError(t, err)
	require.True(t, next.TotalEntries.IsZero())

	_, err = d.SummarizeWallet(ctx, testutil.Wallet1, time.Time{})
	require.True(t, errorx.Is(err, errorx.WindowResolution))

	resp, err := d.GetWalletSummary(testutil.NewMockContextWithWallet(ctx, testutil.Wallet3), &model.GetWalletSummaryRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Wallet3, resp.Summary.Wallet)
	require.True(t, resp.Summary.TotalEntries.IsZero())
	require.False(t, resp.Summary.TweetClaimed)
}

func Test_entryDomain_ClaimTweetEntry(t *testing.T) {
	tweets := map[string]twitter.Tweet{
		"100": {ID: "100", AuthorScreenName: "alice", Text: "Feeling lucky #moonticket"},
		"200": {ID: "200", AuthorScreenName: "alice", Text: "no hashtag here"},
	}

	endpoint := &testutil.MockTwitterEndpoint{
		GetTweetFunc: func(ctx context.Context, author, tweetID string) (twitter.Tweet, error) {
			tweet, ok := tweets[tweetID]
			if !ok {
				return twitter.Tweet{}, twitter.ErrTweetNotFound
			}
			return tweet, nil
		},
	}

	tests := []struct {
		name     string
		req      *model.ClaimTweetEntryRequest
		wantCode errorx.Code
	}{
		{
			name: "happy case",
			req:  &model.ClaimTweetEntryRequest{TweetURL: "https://x.com/alice/status/100"},
		},
		{
			name:     "invalid url",
			req:      &model.ClaimTweetEntryRequest{TweetURL: "https://example.com/alice/status/100"},
			wantCode: errorx.BadRequest,
		},
		{
			name:     "tweet not found",
			req:      &model.ClaimTweetEntryRequest{TweetURL: "https://twitter.com/alice/status/300"},
			wantCode: errorx.NotFound,
		},
		{
			name:     "missing campaign text",
			req:      &model.ClaimTweetEntryRequest{TweetURL: "https://twitter.com/alice/status/200"},
			wantCode: errorx.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
			d := NewEntryDomain(repository.NewEntryRepository(), newTestResolver(), endpoint)

			got, err := d.ClaimTweetEntry(ctx, tt.req)
			if tt.wantCode == 0 {
				require.NoError(t, err)
				require.True(t, decimal.NewFromInt(1).Equal(got.Entries))
			} else {
				require.True(t, errorx.Is(err, tt.wantCode), "unexpected error %v", err)
				require.Nil(t, got)
			}
		})
	}
}

func Test_entryDomain_ClaimTweetEntry_Duplicate(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	d := NewEntryDomain(repository.NewEntryRepository(), newTestResolver(), nil)

	_, err := d.ClaimTweetEntry(ctx, &model.ClaimTweetEntryRequest{TweetURL: "https://x.com/alice/status/1"})
	require.NoError(t, err)

	// Another tweet in the same window is still a duplicate claim.
	_, err = d.ClaimTweetEntry(ctx, &model.ClaimTweetEntryRequest{TweetURL: "https://x.com/alice/status/2"})
	require.True(t, errorx.Is(err, errorx.DuplicateClaim))

	_, err = d.ClaimTweetEntry(ctx, &model.ClaimTweetEntryRequest{TweetURL: "https://x.com/alice/status/3", IsBonus: true})
	require.NoError(t, err)
}
