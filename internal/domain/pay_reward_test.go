package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_payRewardDomain_GetMyPayRewards(t *testing.T) {
	ctx := testutil.NewMockContext()
	repo := repository.NewPayRewardRepository()
	d := NewPayRewardDomain(repo)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.PayReward{
			Base:   entity.Base{ID: uuid.NewString()},
			Wallet: testutil.Wallet1,
			Token:  "TIX",
			Amount: 50,
			Status: entity.PayRewardPending,
		}))
	}

	walletCtx := testutil.NewMockContextWithWallet(ctx, testutil.Wallet1)
	got, err := d.GetMyPayRewards(walletCtx, &model.GetMyPayRewardsRequest{})
	require.NoError(t, err)
	require.Len(t, got.PayRewards, 3)

	got, err = d.GetMyPayRewards(walletCtx, &model.GetMyPayRewardsRequest{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got.PayRewards, 1)

	_, err = d.GetMyPayRewards(walletCtx, &model.GetMyPayRewardsRequest{Limit: 51})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	other, err := d.GetMyPayRewards(testutil.NewMockContextWithWallet(ctx, testutil.Wallet2), &model.GetMyPayRewardsRequest{})
	require.NoError(t, err)
	require.Empty(t, other.PayRewards)
}

func Test_payRewardDomain_SettlePayReward(t *testing.T) {
	ctx := testutil.NewMockContext()
	repo := repository.NewPayRewardRepository()
	d := NewPayRewardDomain(repo)

	reward := &entity.PayReward{
		Base:   entity.Base{ID: uuid.NewString()},
		Wallet: testutil.Wallet1,
		Token:  "TIX",
		Amount: 100,
		Status: entity.PayRewardPending,
	}
	require.NoError(t, repo.Create(ctx, reward))

	tests := []struct {
		name     string
		req      *model.SettlePayRewardRequest
		want     string
		wantCode errorx.Code
	}{
		{
			name:     "unknown status",
			req:      &model.SettlePayRewardRequest{ID: reward.ID, Status: "lost"},
			wantCode: errorx.BadRequest,
		},
		{
			name:     "unknown reward",
			req:      &model.SettlePayRewardRequest{ID: uuid.NewString(), Status: "failed"},
			wantCode: errorx.NotFound,
		},
		{
			name:     "sent without signature",
			req:      &model.SettlePayRewardRequest{ID: reward.ID, Status: "sent"},
			wantCode: errorx.BadRequest,
		},
		{
			name: "failed",
			req:  &model.SettlePayRewardRequest{ID: reward.ID, Status: "failed"},
			want: "failed",
		},
		{
			name:     "failed cannot be sent directly",
			req:      &model.SettlePayRewardRequest{ID: reward.ID, Status: "sent", TxSignature: testutil.NewSignature()},
			wantCode: errorx.BadRequest,
		},
		{
			name: "retry",
			req:  &model.SettlePayRewardRequest{ID: reward.ID, Status: "pending"},
			want: "pending",
		},
		{
			name: "sent",
			req:  &model.SettlePayRewardRequest{ID: reward.ID, Status: "sent", TxSignature: testutil.NewSignature()},
			want: "sent",
		},
		{
			name:     "sent is final",
			req:      &model.SettlePayRewardRequest{ID: reward.ID, Status: "failed"},
			wantCode: errorx.BadRequest,
		},
	}

	// Cases run in order, each one starts from the status left by the
	// previous one.
	for _, tt := range tests {
		got, err := d.SettlePayReward(ctx, tt.req)
		if tt.wantCode == 0 {
			require.NoError(t, err, tt.name)
			require.Equal(t, tt.want, got.PayReward.Status, tt.name)
		} else {
			require.True(t, errorx.Is(err, tt.wantCode), "%s: unexpected error %v", tt.name, err)
		}
	}

	stored, err := repo.GetByID(ctx, reward.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PayRewardSent, stored.Status)
	require.True(t, stored.TxSignature.Valid)

	pending, err := d.GetPendingPayRewards(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}
