package repository

import (
	"context"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetBySignature(ctx context.Context, signature string) (*entity.Purchase, error)
}

type purchaseRepository struct{}

func NewPurchaseRepository() *purchaseRepository {
	return &purchaseRepository{}
}

// Create returns gorm.ErrDuplicatedKey if the signature was recorded before.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "signature"}},
			DoNothing: true,
		}).
		Create(purchase)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}

	return nil
}

func (r *purchaseRepository) GetBySignature(ctx context.Context, signature string) (*entity.Purchase, error) {
	var result entity.Purchase
	if err := xcontext.DB(ctx).Take(&result, "signature=?", signature).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
