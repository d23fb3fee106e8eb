package repository

import (
	"context"
	"errors"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckInRepository interface {
	Get(ctx context.Context, wallet string) (*entity.CheckIn, error)
	Create(ctx context.Context, checkIn *entity.CheckIn) error
	UpdateIfLastDate(ctx context.Context, checkIn *entity.CheckIn, lastDate string) error
}

type checkInRepository struct{}

func NewCheckInRepository() *checkInRepository {
	return &checkInRepository{}
}

func (r *checkInRepository) Get(ctx context.Context, wallet string) (*entity.CheckIn, error) {
	var result entity.CheckIn
	if err := xcontext.DB(ctx).Take(&result, "wallet=?", wallet).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// Create returns gorm.ErrDuplicatedKey if the wallet has a row already.
func (r *checkInRepository) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet"}},
			DoNothing: true,
		}).
		Create(checkIn)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}

	return nil
}

// UpdateIfLastDate stores checkIn only if the stored last check-in date is
// still lastDate. It returns gorm.ErrRecordNotFound otherwise.
func (r *checkInRepository) UpdateIfLastDate(ctx context.Context, checkIn *entity.CheckIn, lastDate string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.CheckIn{}).
		Where("wallet=? AND last_checkin_date=?", checkIn.Wallet, lastDate).
		Updates(map[string]any{
			"last_checkin_date": checkIn.LastCheckinDate,
			"streak":            checkIn.Streak,
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
