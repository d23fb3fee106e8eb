package repository

import (
	"context"
	"time"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntryRepository interface {
	Append(ctx context.Context, entry *entity.Entry) error
	GetByWalletBetween(ctx context.Context, wallet string, start, end time.Time) ([]entity.Entry, error)
}

type entryRepository struct{}

func NewEntryRepository() *entryRepository {
	return &entryRepository{}
}

// Append inserts entry. It returns gorm.ErrDuplicatedKey without modifying
// anything if an entry with the same claim key exists.
func (r *entryRepository) Append(ctx context.Context, entry *entity.Entry) error {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "claim_key"}},
			DoNothing: true,
		}).
		Create(entry)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}

	return nil
}

// GetByWalletBetween returns entries of wallet created in [start, end).
func (r *entryRepository) GetByWalletBetween(
	ctx context.Context, wallet string, start, end time.Time,
) ([]entity.Entry, error) {
	var result []entity.Entry
	err := xcontext.DB(ctx).
		Where("wallet=? AND created_at>=? AND created_at<?", wallet, start.UTC(), end.UTC()).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
