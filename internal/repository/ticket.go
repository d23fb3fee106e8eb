package repository

import (
	"context"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
)

type TicketRepository interface {
	CreateMany(ctx context.Context, tickets []entity.Ticket) error
	GetByWalletAndDraw(ctx context.Context, wallet, drawID string) ([]entity.Ticket, error)
	CountByDraw(ctx context.Context, drawID string) (int64, error)
}

type ticketRepository struct{}

func NewTicketRepository() *ticketRepository {
	return &ticketRepository{}
}

func (r *ticketRepository) CreateMany(ctx context.Context, tickets []entity.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Create(&tickets).Error
}

func (r *ticketRepository) GetByWalletAndDraw(ctx context.Context, wallet, drawID string) ([]entity.Ticket, error) {
	var result []entity.Ticket
	err := xcontext.DB(ctx).
		Where("wallet=? AND draw_id=?", wallet, drawID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ticketRepository) CountByDraw(ctx context.Context, drawID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Ticket{}).Where("draw_id=?", drawID).Count(&count).Error
	return count, err
}
