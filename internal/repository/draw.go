package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DrawOutcome struct {
	WinningNumbers entity.Array[int]
	Moonball       int
	JackpotUSD     decimal.Decimal
	Winners        entity.Array[string]
	RecordedAt     time.Time
}

type DrawRepository interface {
	GetOrCreate(ctx context.Context, draw *entity.Draw) (*entity.Draw, error)
	GetByID(ctx context.Context, id string) (*entity.Draw, error)
	GetByStartTime(ctx context.Context, startTime time.Time) (*entity.Draw, error)
	RecordOutcome(ctx context.Context, id string, outcome DrawOutcome) error
}

type drawRepository struct{}

func NewDrawRepository() *drawRepository {
	return &drawRepository{}
}

// GetOrCreate inserts draw unless a draw with the same start time exists, then
// returns the stored row.
func (r *drawRepository) GetOrCreate(ctx context.Context, draw *entity.Draw) (*entity.Draw, error) {
	err := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "start_time"}},
			DoNothing: true,
		}).
		Create(draw).Error
	if err != nil {
		return nil, err
	}

	return r.GetByStartTime(ctx, draw.StartTime)
}

func (r *drawRepository) GetByID(ctx context.Context, id string) (*entity.Draw, error) {
	var result entity.Draw
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *drawRepository) GetByStartTime(ctx context.Context, startTime time.Time) (*entity.Draw, error) {
	var result entity.Draw
	if err := xcontext.DB(ctx).Take(&result, "start_time=?", startTime.UTC()).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// RecordOutcome writes the outcome only if none has been recorded yet. It
// returns gorm.ErrRecordNotFound if the draw does not exist or already has an
// outcome.
func (r *drawRepository) RecordOutcome(ctx context.Context, id string, outcome DrawOutcome) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Draw{}).
		Where("id=? AND outcome_recorded_at IS NULL", id).
		Updates(map[string]any{
			"winning_numbers":     outcome.WinningNumbers,
			"moonball":            outcome.Moonball,
			"jackpot_usd":         outcome.JackpotUSD,
			"winners":             outcome.Winners,
			"outcome_recorded_at": sql.NullTime{Time: outcome.RecordedAt.UTC(), Valid: true},
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
