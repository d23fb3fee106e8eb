package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/dateutil"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/pubsub"
	"github.com/moonticket/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_checkInDomain_CheckIn(t *testing.T) {
	today := time.Now().UTC()
	tests := []struct {
		name       string
		lastDate   string
		streak     int
		wantStreak int
		wantReward int64
	}{
		{name: "first check-in", wantStreak: 1, wantReward: 50},
		{name: "second day", lastDate: dateutil.Date(today.AddDate(0, 0, -1)), streak: 1, wantStreak: 2, wantReward: 50},
		{name: "fourth day", lastDate: dateutil.Date(today.AddDate(0, 0, -1)), streak: 3, wantStreak: 4, wantReward: 200},
		{name: "capped at seven", lastDate: dateutil.Date(today.AddDate(0, 0, -1)), streak: 7, wantStreak: 7, wantReward: 1000},
		{name: "missed a day", lastDate: dateutil.Date(today.AddDate(0, 0, -2)), streak: 5, wantStreak: 1, wantReward: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
			checkInRepo := repository.NewCheckInRepository()
			payRewardRepo := repository.NewPayRewardRepository()
			publisher := &testutil.MockPublisher{}
			d := NewCheckInDomain(checkInRepo, payRewardRepo, publisher)

			if tt.lastDate != "" {
				require.NoError(t, checkInRepo.Create(ctx, &entity.CheckIn{
					Wallet:          testutil.Wallet1,
					LastCheckinDate: tt.lastDate,
					Streak:          tt.streak,
				}))
			}

			got, err := d.CheckIn(ctx, &model.CheckInRequest{})
			require.NoError(t, err)
			require.False(t, got.AlreadyCheckedIn)
			require.Equal(t, tt.wantStreak, got.Streak)
			require.Equal(t, tt.wantReward, got.Reward)

			stored, err := checkInRepo.Get(ctx, testutil.Wallet1)
			require.NoError(t, err)
			require.Equal(t, dateutil.Date(time.Now()), stored.LastCheckinDate)
			require.Equal(t, tt.wantStreak, stored.Streak)

			reward, err := payRewardRepo.GetByID(ctx, got.PayRewardID)
			require.NoError(t, err)
			require.Equal(t, entity.PayRewardPending, reward.Status)
			require.Equal(t, tt.wantReward, reward.Amount)
			require.Equal(t, "TIX", reward.Token)

			published := publisher.Published()
			require.Len(t, published, 1)
			require.Equal(t, pubsub.PayoutRequestedTopic, published[0].Topic)

			var event payoutRequestedEvent
			require.NoError(t, json.Unmarshal(published[0].Pack.Msg, &event))
			require.Equal(t, got.PayRewardID, event.PayRewardID)
			require.Equal(t, tt.wantReward, event.Amount)
		})
	}
}

func Test_checkInDomain_CheckIn_SameDay(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	payRewardRepo := repository.NewPayRewardRepository()
	publisher := &testutil.MockPublisher{}
	d := NewCheckInDomain(repository.NewCheckInRepository(), payRewardRepo, publisher)

	first, err := d.CheckIn(ctx, &model.CheckInRequest{})
	require.NoError(t, err)

	second, err := d.CheckIn(ctx, &model.CheckInRequest{})
	require.NoError(t, err)
	require.True(t, second.AlreadyCheckedIn)
	require.Equal(t, first.Streak, second.Streak)
	require.Zero(t, second.Reward)
	require.Empty(t, second.PayRewardID)

	// Exactly one reward for one streak advance.
	rewards, err := payRewardRepo.GetByWallet(ctx, testutil.Wallet1, 0, 10)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	require.Len(t, publisher.Published(), 1)
}

func Test_checkInDomain_CheckIn_PublishFailed(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	payRewardRepo := repository.NewPayRewardRepository()
	publisher := &testutil.MockPublisher{
		PublishFunc: func(context.Context, string, *pubsub.Pack) error {
			return errors.New("broker is down")
		},
	}
	d := NewCheckInDomain(repository.NewCheckInRepository(), payRewardRepo, publisher)

	got, err := d.CheckIn(ctx, &model.CheckInRequest{})
	require.NoError(t, err)

	// The reward stays pending for the payout worker to sweep.
	pending, err := payRewardRepo.GetAllPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, got.PayRewardID, pending[0].ID)
}

func Test_checkInDomain_CheckIn_MalformedStoredDate(t *testing.T) {
	ctx := testutil.NewMockContextWithWallet(testutil.NewMockContext(), testutil.Wallet1)
	checkInRepo := repository.NewCheckInRepository()
	payRewardRepo := repository.NewPayRewardRepository()
	publisher := &testutil.MockPublisher{}
	d := NewCheckInDomain(checkInRepo, payRewardRepo, publisher)

	require.NoError(t, checkInRepo.Create(ctx, &entity.CheckIn{
		Wallet:          testutil.Wallet1,
		LastCheckinDate: "not-a-date",
		Streak:          4,
	}))

	_, err := d.CheckIn(ctx, &model.CheckInRequest{})
	require.ErrorIs(t, err, errorx.Unknown)

	stored, err := checkInRepo.Get(ctx, testutil.Wallet1)
	require.NoError(t, err)
	require.Equal(t, 4, stored.Streak)

	rewards, err := payRewardRepo.GetAllPending(ctx)
	require.NoError(t, err)
	require.Empty(t, rewards)
	require.Empty(t, publisher.Published())
}
