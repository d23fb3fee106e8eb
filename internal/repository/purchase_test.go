package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_purchaseRepository(t *testing.T) {
	ctx := testutil.NewMockContext()
	repo := NewPurchaseRepository()
	sig := testutil.NewSignature()

	newPurchase := func() *entity.Purchase {
		return &entity.Purchase{
			Base:        entity.Base{ID: uuid.NewString()},
			Signature:   sig,
			Wallet:      testutil.Wallet1,
			Lamports:    1_000_000_000,
			TixAmount:   decimal.RequireFromString("250.5"),
			SolPriceUSD: decimal.RequireFromString("150"),
			USDSpent:    decimal.RequireFromString("150"),
			Credits:     150,
			BlockTime:   time.Now().UTC(),
		}
	}

	require.NoError(t, repo.Create(ctx, newPurchase()))
	require.ErrorIs(t, repo.Create(ctx, newPurchase()), gorm.ErrDuplicatedKey)

	stored, err := repo.GetBySignature(ctx, sig)
	require.NoError(t, err)
	require.Equal(t, testutil.Wallet1, stored.Wallet)
	require.Equal(t, uint64(1_000_000_000), stored.Lamports)
	require.True(t, decimal.RequireFromString("250.5").Equal(stored.TixAmount))

	_, err = repo.GetBySignature(ctx, "unknown")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
