package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PayRewardRepository interface {
	Create(context.Context, *entity.PayReward) error
	GetByID(context.Context, string) (*entity.PayReward, error)
	GetByWallet(ctx context.Context, wallet string, offset, limit int) ([]entity.PayReward, error)
	GetAllPending(context.Context) ([]entity.PayReward, error)
	UpdateStatus(
		ctx context.Context, id string,
		from, to entity.PayRewardStatus,
		txSignature sql.NullString,
	) error
}

type payRewardRepository struct{}

func NewPayRewardRepository() *payRewardRepository {
	return &payRewardRepository{}
}

func (r *payRewardRepository) Create(ctx context.Context, reward *entity.PayReward) error {
	return xcontext.DB(ctx).Create(reward).Error
}

func (r *payRewardRepository) GetByID(ctx context.Context, id string) (*entity.PayReward, error) {
	var result entity.PayReward
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *payRewardRepository) GetByWallet(
	ctx context.Context, wallet string, offset, limit int,
) ([]entity.PayReward, error) {
	var result []entity.PayReward
	err := xcontext.DB(ctx).
		Where("wallet=?", wallet).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *payRewardRepository) GetAllPending(ctx context.Context) ([]entity.PayReward, error) {
	var result []entity.PayReward
	err := xcontext.DB(ctx).
		Where("status=?", entity.PayRewardPending).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateStatus moves a reward from status from to status to. It returns
// gorm.ErrRecordNotFound if the reward is not in status from.
func (r *payRewardRepository) UpdateStatus(
	ctx context.Context, id string,
	from, to entity.PayRewardStatus,
	txSignature sql.NullString,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.PayReward{}).
		Where("id=? AND status=?", id, from).
		Updates(map[string]any{
			"status":       to,
			"tx_signature": txSignature,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
