package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/domain/ledger"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TicketCreditDomain interface {
	CreditFreeTicket(ctx context.Context, wallet, drawID string) error
	CreditFromPurchase(ctx context.Context, wallet string, usdSpent decimal.Decimal) (int64, error)
	SpendCredits(ctx context.Context, wallet string, count int64) error
	GetBalance(ctx context.Context, wallet string) (int64, error)

	GetTicketCredits(context.Context, *model.GetTicketCreditsRequest) (*model.GetTicketCreditsResponse, error)
	ClaimFreeTicket(context.Context, *model.ClaimFreeTicketRequest) (*model.ClaimFreeTicketResponse, error)
}

type ticketCreditDomain struct {
	ticketCreditRepo repository.TicketCreditRepository
	drawRepo         repository.DrawRepository
	resolver         *drawwindow.Resolver
}

func NewTicketCreditDomain(
	ticketCreditRepo repository.TicketCreditRepository,
	drawRepo repository.DrawRepository,
	resolver *drawwindow.Resolver,
) *ticketCreditDomain {
	return &ticketCreditDomain{
		ticketCreditRepo: ticketCreditRepo,
		drawRepo:         drawRepo,
		resolver:         resolver,
	}
}

// CreditFreeTicket grants one credit per wallet and draw.
func (d *ticketCreditDomain) CreditFreeTicket(ctx context.Context, wallet, drawID string) error {
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err := d.ticketCreditRepo.CreateFreeClaim(ctx, &entity.FreeTicketClaim{
		Base:   entity.Base{ID: uuid.NewString()},
		Wallet: wallet,
		DrawID: drawID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorx.New(errorx.AlreadyClaimed, "You have already claimed the free ticket of this draw")
		}

		xcontext.Logger(ctx).Errorf("Cannot create free ticket claim: %v", err)
		return errorx.Unknown
	}

	if err := d.ticketCreditRepo.Increase(ctx, wallet, 1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase ticket credits: %v", err)
		return errorx.Unknown
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit transaction: %v", err)
		return errorx.Unknown
	}

	return nil
}

// CreditFromPurchase grants one credit per whole dollar spent and returns the
// number of granted credits.
func (d *ticketCreditDomain) CreditFromPurchase(
	ctx context.Context, wallet string, usdSpent decimal.Decimal,
) (int64, error) {
	credits := ledger.PurchaseCredits(usdSpent)
	if credits == 0 {
		return 0, nil
	}

	if err := d.ticketCreditRepo.Increase(ctx, wallet, credits); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase ticket credits: %v", err)
		return 0, errorx.Unknown
	}

	return credits, nil
}

// SpendCredits removes count credits in a single conditional statement. The
// balance is left untouched if it cannot cover count.
func (d *ticketCreditDomain) SpendCredits(ctx context.Context, wallet string, count int64) error {
	if count <= 0 {
		return errorx.New(errorx.InvalidAmount, "The number of credits must be positive")
	}

	if err := d.ticketCreditRepo.Decrease(ctx, wallet, count); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.InsufficientCredits, "Not enough ticket credits")
		}

		xcontext.Logger(ctx).Errorf("Cannot decrease ticket credits: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *ticketCreditDomain) GetBalance(ctx context.Context, wallet string) (int64, error) {
	balance, err := d.ticketCreditRepo.Get(ctx, wallet)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ticket credits: %v", err)
		return 0, errorx.Unknown
	}

	return balance, nil
}

func (d *ticketCreditDomain) GetTicketCredits(
	ctx context.Context, req *model.GetTicketCreditsRequest,
) (*model.GetTicketCreditsResponse, error) {
	balance, err := d.GetBalance(ctx, xcontext.RequestWallet(ctx))
	if err != nil {
		return nil, err
	}

	return &model.GetTicketCreditsResponse{Balance: balance}, nil
}

func (d *ticketCreditDomain) ClaimFreeTicket(
	ctx context.Context, req *model.ClaimFreeTicketRequest,
) (*model.ClaimFreeTicketResponse, error) {
	draw, err := activeDraw(ctx, d.drawRepo, d.resolver, time.Now())
	if err != nil {
		return nil, err
	}

	wallet := xcontext.RequestWallet(ctx)
	if err := d.CreditFreeTicket(ctx, wallet, draw.ID); err != nil {
		return nil, err
	}

	balance, err := d.GetBalance(ctx, wallet)
	if err != nil {
		return nil, err
	}

	return &model.ClaimFreeTicketResponse{DrawID: draw.ID, Balance: balance}, nil
}
