package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/enum"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PayRewardDomain interface {
	GetMyPayRewards(context.Context, *model.GetMyPayRewardsRequest) (*model.GetMyPayRewardsResponse, error)
	GetPendingPayRewards(context.Context) ([]model.PayReward, error)
	SettlePayReward(context.Context, *model.SettlePayRewardRequest) (*model.SettlePayRewardResponse, error)
}

type payRewardDomain struct {
	payRewardRepo repository.PayRewardRepository
}

func NewPayRewardDomain(payRewardRepo repository.PayRewardRepository) *payRewardDomain {
	return &payRewardDomain{payRewardRepo: payRewardRepo}
}

func (d *payRewardDomain) GetMyPayRewards(
	ctx context.Context, req *model.GetMyPayRewardsRequest,
) (*model.GetMyPayRewardsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Offset and limit must not be negative")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	rewards, err := d.payRewardRepo.GetByWallet(ctx, xcontext.RequestWallet(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pay rewards by wallet: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyPayRewardsResponse{PayRewards: []model.PayReward{}}
	for i := range rewards {
		resp.PayRewards = append(resp.PayRewards, model.ConvertPayReward(&rewards[i]))
	}

	return resp, nil
}

func (d *payRewardDomain) GetPendingPayRewards(ctx context.Context) ([]model.PayReward, error) {
	rewards, err := d.payRewardRepo.GetAllPending(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pending pay rewards: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.PayReward{}
	for i := range rewards {
		result = append(result, model.ConvertPayReward(&rewards[i]))
	}

	return result, nil
}

// SettlePayReward is called by the payout worker. A pending reward becomes
// sent or failed, a failed one may go back to pending to be retried. Sent is
// final.
func (d *payRewardDomain) SettlePayReward(
	ctx context.Context, req *model.SettlePayRewardRequest,
) (*model.SettlePayRewardResponse, error) {
	to, err := enum.ToEnum[entity.PayRewardStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	reward, err := d.payRewardRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found pay reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot get pay reward: %v", err)
		return nil, errorx.Unknown
	}

	if !canSettle(reward.Status, to) {
		return nil, errorx.New(errorx.BadRequest, "Cannot change status from %s to %s", reward.Status, to)
	}

	var txSignature sql.NullString
	if to == entity.PayRewardSent {
		if !solutil.IsValidSignature(req.TxSignature) {
			return nil, errorx.New(errorx.BadRequest, "A sent reward requires a valid transaction signature")
		}

		txSignature = sql.NullString{String: req.TxSignature, Valid: true}
	}

	err = d.payRewardRepo.UpdateStatus(ctx, reward.ID, reward.Status, to, txSignature)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.TooManyRequests, "The reward is being settled by another request")
		}

		xcontext.Logger(ctx).Errorf("Cannot update pay reward status: %v", err)
		return nil, errorx.Unknown
	}

	reward.Status = to
	reward.TxSignature = txSignature
	return &model.SettlePayRewardResponse{PayReward: model.ConvertPayReward(reward)}, nil
}

func canSettle(from, to entity.PayRewardStatus) bool {
	switch from {
	case entity.PayRewardPending:
		return to == entity.PayRewardSent || to == entity.PayRewardFailed
	case entity.PayRewardFailed:
		return to == entity.PayRewardPending
	}

	return false
}
