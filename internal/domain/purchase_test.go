package domain

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/pubsub"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/moonticket/backend/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type purchaseFixture struct {
	domain       *purchaseDomain
	entryDomain  *entryDomain
	creditDomain *ticketCreditDomain
	publisher    *testutil.MockPublisher
	priceCalls   *atomic.Int32
	transfers    map[string]*solutil.Transfer
}

func newPurchaseFixture() *purchaseFixture {
	f := &purchaseFixture{
		entryDomain:  NewEntryDomain(repository.NewEntryRepository(), newTestResolver(), nil),
		creditDomain: newTestTicketCreditDomain(),
		publisher:    &testutil.MockPublisher{},
		priceCalls:   &atomic.Int32{},
		transfers:    map[string]*solutil.Transfer{},
	}

	reader := &testutil.MockSolanaReader{
		GetTransferFunc: func(ctx context.Context, signature string) (*solutil.Transfer, error) {
			transfer, ok := f.transfers[signature]
			if !ok {
				return nil, solutil.ErrTransactionNotFound
			}
			return transfer, nil
		},
		GetBalanceFunc: func(ctx context.Context, wallet string) (uint64, error) {
			return 1_000_000_000, nil
		},
	}

	pricingEndpoint := &testutil.MockPricingEndpoint{
		GetUSDPriceFunc: func(ctx context.Context, assetID string) (decimal.Decimal, error) {
			f.priceCalls.Add(1)
			return decimal.NewFromInt(100), nil
		},
	}

	f.domain = NewPurchaseDomain(
		repository.NewPurchaseRepository(),
		f.entryDomain,
		f.creditDomain,
		reader,
		pricingEndpoint,
		&testutil.MockRedisClient{},
		f.publisher,
	)

	return f
}

func (f *purchaseFixture) addTransfer(feePayer string, lamports uint64) string {
	signature := testutil.NewSignature()
	f.transfers[signature] = &solutil.Transfer{
		Signature: signature,
		FeePayer:  feePayer,
		Slot:      42,
		BlockTime: time.Now(),
		Lamports:  lamports,
		TixAmount: decimal.NewFromInt(5000),
	}
	return signature
}

func Test_purchaseDomain_ConfirmPurchase(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	f := newPurchaseFixture()

	// 0.125 SOL at 100 USD.
	signature := f.addTransfer(testutil.Wallet1, 125_000_000)

	got, err := f.domain.ConfirmPurchase(ctx, &model.ConfirmPurchaseRequest{Signature: signature})
	require.NoError(t, err)
	require.False(t, got.AlreadyRecorded)
	require.True(t, decimal.RequireFromString("12.5").Equal(got.Purchase.USDSpent))
	require.True(t, decimal.RequireFromString("12.5").Equal(got.Purchase.Entries))
	require.Equal(t, int64(12), got.Purchase.Credits)

	balance, err := f.creditDomain.GetBalance(ctx, testutil.Wallet1)
	require.NoError(t, err)
	require.Equal(t, int64(12), balance)

	summary, err := f.entryDomain.SummarizeWallet(ctx, testutil.Wallet1, time.Now())
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("12.5").Equal(summary.PurchaseEntries))
	require.True(t, decimal.NewFromInt(5000).Equal(summary.TixPurchased))

	published := f.publisher.Published()
	require.Len(t, published, 1)
	require.Equal(t, pubsub.PurchaseRecordedTopic, published[0].Topic)

	// A replay returns the stored purchase and credits nothing.
	replay, err := f.domain.ConfirmPurchase(ctx, &model.ConfirmPurchaseRequest{Signature: signature})
	require.NoError(t, err)
	require.True(t, replay.AlreadyRecorded)
	require.Equal(t, got.Purchase.Signature, replay.Purchase.Signature)

	balance, err = f.creditDomain.GetBalance(ctx, testutil.Wallet1)
	require.NoError(t, err)
	require.Equal(t, int64(12), balance)
	require.Len(t, f.publisher.Published(), 1)

	// Another wallet cannot claim the same signature.
	otherCtx := testutil.NewMockContextWithWallet(ctx, testutil.Wallet2)
	_, err = f.domain.ConfirmPurchase(otherCtx, &model.ConfirmPurchaseRequest{Signature: signature})
	require.True(t, errorx.Is(err, errorx.PermissionDenied))
}

func Test_purchaseDomain_ConfirmPurchase_Rejected(t *testing.T) {
	f := newPurchaseFixture()
	paidByOther := f.addTransfer(testutil.Wallet2, 1_000_000_000)
	noPayment := f.addTransfer(testutil.Wallet1, 0)

	tests := []struct {
		name      string
		signature string
		wantCode  errorx.Code
	}{
		{name: "invalid signature", signature: "not-a-signature", wantCode: errorx.BadRequest},
		{name: "not finalized", signature: testutil.NewSignature(), wantCode: errorx.NotFound},
		{name: "paid by another wallet", signature: paidByOther, wantCode: errorx.PermissionDenied},
		{name: "treasury not paid", signature: noPayment, wantCode: errorx.InvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)

			got, err := f.domain.ConfirmPurchase(ctx, &model.ConfirmPurchaseRequest{Signature: tt.signature})
			require.True(t, errorx.Is(err, tt.wantCode), "unexpected error %v", err)
			require.Nil(t, got)

			balance, err := f.creditDomain.GetBalance(ctx, testutil.Wallet1)
			require.NoError(t, err)
			require.Zero(t, balance)
		})
	}
}

func Test_purchaseDomain_ConfirmPurchase_RPCUnavailable(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	f := newPurchaseFixture()
	f.domain.solanaReader = &testutil.MockSolanaReader{
		GetTransferFunc: func(ctx context.Context, signature string) (*solutil.Transfer, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := f.domain.ConfirmPurchase(ctx, &model.ConfirmPurchaseRequest{Signature: testutil.NewSignature()})
	require.True(t, errorx.Is(err, errorx.Unavailable))
}

func Test_purchaseDomain_PriceIsCached(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	f := newPurchaseFixture()

	for i := 0; i < 3; i++ {
		signature := f.addTransfer(testutil.Wallet1, 10_000_000)
		_, err := f.domain.ConfirmPurchase(ctx, &model.ConfirmPurchaseRequest{Signature: signature})
		require.NoError(t, err)
	}

	require.Equal(t, int32(1), f.priceCalls.Load())
}

func Test_purchaseDomain_PreflightPurchase(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	f := newPurchaseFixture()

	// The wallet holds 1 SOL, the fee reserve is 10000 lamports.
	got, err := f.domain.PreflightPurchase(ctx, &model.PreflightPurchaseRequest{Lamports: 500_000_000})
	require.NoError(t, err)
	require.True(t, got.Sufficient)
	require.Equal(t, uint64(500_010_000), got.Required)
	require.True(t, decimal.NewFromInt(50).Equal(got.EstimatedUSD))
	require.Equal(t, int64(50), got.EstimatedCredits)

	got, err = f.domain.PreflightPurchase(ctx, &model.PreflightPurchaseRequest{Lamports: 999_995_000})
	require.NoError(t, err)
	require.False(t, got.Sufficient)

	_, err = f.domain.PreflightPurchase(ctx, &model.PreflightPurchaseRequest{})
	require.True(t, errorx.Is(err, errorx.InvalidAmount))

	// lamports + reserve would wrap around to 4999.
	_, err = f.domain.PreflightPurchase(ctx, &model.PreflightPurchaseRequest{Lamports: math.MaxUint64 - 5000})
	require.True(t, errorx.Is(err, errorx.InvalidAmount))

	got, err = f.domain.PreflightPurchase(ctx, &model.PreflightPurchaseRequest{Lamports: math.MaxUint64 - 10_000})
	require.NoError(t, err)
	require.False(t, got.Sufficient)
	require.Equal(t, uint64(math.MaxUint64), got.Required)
}
