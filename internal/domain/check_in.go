package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/domain/streak"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/dateutil"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/pubsub"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CheckInDomain interface {
	CheckIn(context.Context, *model.CheckInRequest) (*model.CheckInResponse, error)
}

type checkInDomain struct {
	checkInRepo   repository.CheckInRepository
	payRewardRepo repository.PayRewardRepository
	publisher     pubsub.Publisher
}

func NewCheckInDomain(
	checkInRepo repository.CheckInRepository,
	payRewardRepo repository.PayRewardRepository,
	publisher pubsub.Publisher,
) *checkInDomain {
	return &checkInDomain{
		checkInRepo:   checkInRepo,
		payRewardRepo: payRewardRepo,
		publisher:     publisher,
	}
}

type payoutRequestedEvent struct {
	PayRewardID string `json:"pay_reward_id"`
	Wallet      string `json:"wallet"`
	Token       string `json:"token"`
	Amount      int64  `json:"amount"`
}

// CheckIn advances the daily streak of the request wallet. The new streak and
// its pending reward are stored together, the payout worker is notified once
// they are committed.
func (d *checkInDomain) CheckIn(ctx context.Context, req *model.CheckInRequest) (*model.CheckInResponse, error) {
	wallet := xcontext.RequestWallet(ctx)
	today := dateutil.Date(time.Now())

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	current, err := d.checkInRepo.Get(ctx, wallet)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get check-in: %v", err)
		return nil, errorx.Unknown
	}

	var lastDate string
	var currentStreak int
	if current != nil {
		lastDate = current.LastCheckinDate
		currentStreak = current.Streak
	}

	result, err := streak.Next(lastDate, currentStreak, today)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute streak of %s: %v", wallet, err)
		return nil, errorx.Unknown
	}

	if result.AlreadyCheckedIn {
		return &model.CheckInResponse{Streak: result.Streak, AlreadyCheckedIn: true}, nil
	}

	checkIn := &entity.CheckIn{
		Wallet:          wallet,
		LastCheckinDate: today,
		Streak:          result.Streak,
	}

	if current == nil {
		err = d.checkInRepo.Create(ctx, checkIn)
	} else {
		err = d.checkInRepo.UpdateIfLastDate(ctx, checkIn, lastDate)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrRecordNotFound) {
			// Another check-in of this wallet won the race.
			return nil, errorx.New(errorx.TooManyRequests, "Check-in is in progress, please try again")
		}

		xcontext.Logger(ctx).Errorf("Cannot store check-in: %v", err)
		return nil, errorx.Unknown
	}

	reward := &entity.PayReward{
		Base:   entity.Base{ID: uuid.NewString()},
		Wallet: wallet,
		Note:   fmt.Sprintf("checkin:day-%d", result.Streak),
		Token:  xcontext.Configs(ctx).CheckIn.RewardToken,
		Amount: result.Reward,
		Status: entity.PayRewardPending,
	}
	if err := d.payRewardRepo.Create(ctx, reward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pay reward: %v", err)
		return nil, errorx.Unknown
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit transaction: %v", err)
		return nil, errorx.Unknown
	}

	// The reward row stays pending if the notification is lost, the payout
	// worker also sweeps pending rows.
	pack, err := pubsub.NewPack(wallet, payoutRequestedEvent{
		PayRewardID: reward.ID,
		Wallet:      wallet,
		Token:       reward.Token,
		Amount:      reward.Amount,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pack: %v", err)
	} else if err := d.publisher.Publish(ctx, pubsub.PayoutRequestedTopic, pack); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot publish payout request: %v", err)
	}

	return &model.CheckInResponse{
		Streak:      result.Streak,
		Reward:      result.Reward,
		PayRewardID: reward.ID,
	}, nil
}
