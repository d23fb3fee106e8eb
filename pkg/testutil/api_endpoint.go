package testutil

import (
	"context"

	"github.com/moonticket/backend/pkg/api/twitter"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/shopspring/decimal"
)

type MockTwitterEndpoint struct {
	GetTweetFunc func(ctx context.Context, author, tweetID string) (twitter.Tweet, error)
}

func (e *MockTwitterEndpoint) GetTweet(ctx context.Context, author, tweetID string) (twitter.Tweet, error) {
	if e.GetTweetFunc != nil {
		return e.GetTweetFunc(ctx, author, tweetID)
	}

	return twitter.Tweet{}, errorx.New(errorx.NotImplemented, "Not implemented")
}

type MockPricingEndpoint struct {
	GetUSDPriceFunc func(ctx context.Context, assetID string) (decimal.Decimal, error)
}

func (e *MockPricingEndpoint) GetUSDPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	if e.GetUSDPriceFunc != nil {
		return e.GetUSDPriceFunc(ctx, assetID)
	}

	return decimal.Zero, errorx.New(errorx.NotImplemented, "Not implemented")
}

type MockSolanaReader struct {
	GetTransferFunc func(ctx context.Context, signature string) (*solutil.Transfer, error)
	GetBalanceFunc  func(ctx context.Context, wallet string) (uint64, error)
}

func (r *MockSolanaReader) GetTransfer(ctx context.Context, signature string) (*solutil.Transfer, error) {
	if r.GetTransferFunc != nil {
		return r.GetTransferFunc(ctx, signature)
	}

	return nil, errorx.New(errorx.NotImplemented, "Not implemented")
}

func (r *MockSolanaReader) GetBalance(ctx context.Context, wallet string) (uint64, error) {
	if r.GetBalanceFunc != nil {
		return r.GetBalanceFunc(ctx, wallet)
	}

	return 0, errorx.New(errorx.NotImplemented, "Not implemented")
}
