package repository

import (
	"context"
	"errors"
	"time"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketCreditRepository interface {
	Get(ctx context.Context, wallet string) (int64, error)
	Increase(ctx context.Context, wallet string, amount int64) error
	Decrease(ctx context.Context, wallet string, amount int64) error
	CreateFreeClaim(ctx context.Context, claim *entity.FreeTicketClaim) error
}

type ticketCreditRepository struct{}

func NewTicketCreditRepository() *ticketCreditRepository {
	return &ticketCreditRepository{}
}

// Get returns zero for a wallet which never had any credit.
func (r *ticketCreditRepository) Get(ctx context.Context, wallet string) (int64, error) {
	var result entity.TicketCredit
	err := xcontext.DB(ctx).Take(&result, "wallet=?", wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return result.Balance, nil
}

func (r *ticketCreditRepository) Increase(ctx context.Context, wallet string, amount int64) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "wallet"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance":    gorm.Expr("balance + ?", amount),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(&entity.TicketCredit{Wallet: wallet, Balance: amount}).Error
}

// Decrease subtracts amount in a single conditional statement. It returns
// gorm.ErrRecordNotFound and changes nothing if the balance is lower than
// amount.
func (r *ticketCreditRepository) Decrease(ctx context.Context, wallet string, amount int64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.TicketCredit{}).
		Where("wallet=? AND balance>=?", wallet, amount).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now().UTC(),
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

// CreateFreeClaim returns gorm.ErrDuplicatedKey if the wallet already claimed
// the free ticket of the draw.
func (r *ticketCreditRepository) CreateFreeClaim(ctx context.Context, claim *entity.FreeTicketClaim) error {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet"}, {Name: "draw_id"}},
			DoNothing: true,
		}).
		Create(claim)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}

	return nil
}
