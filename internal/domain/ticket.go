package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/domain/ledger"
	"github.com/moonticket/backend/internal/domain/lotteryticket"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type TicketDomain interface {
	SubmitTickets(context.Context, *model.SubmitTicketsRequest) (*model.SubmitTicketsResponse, error)
	GetMyTickets(context.Context, *model.GetMyTicketsRequest) (*model.GetMyTicketsResponse, error)
}

type ticketDomain struct {
	ticketRepo         repository.TicketRepository
	entryRepo          repository.EntryRepository
	drawRepo           repository.DrawRepository
	ticketCreditDomain TicketCreditDomain
	resolver           *drawwindow.Resolver
}

func NewTicketDomain(
	ticketRepo repository.TicketRepository,
	entryRepo repository.EntryRepository,
	drawRepo repository.DrawRepository,
	ticketCreditDomain TicketCreditDomain,
	resolver *drawwindow.Resolver,
) *ticketDomain {
	return &ticketDomain{
		ticketRepo:         ticketRepo,
		entryRepo:          entryRepo,
		drawRepo:           drawRepo,
		ticketCreditDomain: ticketCreditDomain,
		resolver:           resolver,
	}
}

// SubmitTickets spends one credit per ticket and stores the batch against the
// active draw. Nothing is spent if any ticket is invalid.
func (d *ticketDomain) SubmitTickets(
	ctx context.Context, req *model.SubmitTicketsRequest,
) (*model.SubmitTicketsResponse, error) {
	batch := make([]lotteryticket.Ticket, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		batch = append(batch, lotteryticket.Ticket{Numbers: t.Numbers, Moonball: t.Moonball})
	}

	if err := lotteryticket.ValidateBatch(batch); err != nil {
		return nil, err
	}

	draw, err := activeDraw(ctx, d.drawRepo, d.resolver, time.Now())
	if err != nil {
		return nil, err
	}

	wallet := xcontext.RequestWallet(ctx)
	batchID := uuid.NewString()
	tickets := make([]entity.Ticket, 0, len(batch))
	for _, t := range batch {
		numbers := slices.Clone(t.Numbers)
		slices.Sort(numbers)

		tickets = append(tickets, entity.Ticket{
			Base:     entity.Base{ID: uuid.NewString()},
			DrawID:   draw.ID,
			Wallet:   wallet,
			BatchID:  batchID,
			Numbers:  numbers,
			Moonball: t.Moonball,
		})
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.ticketCreditDomain.SpendCredits(ctx, wallet, int64(len(tickets))); err != nil {
		return nil, err
	}

	if err := d.ticketRepo.CreateMany(ctx, tickets); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create tickets: %v", err)
		return nil, errorx.Unknown
	}

	err = d.entryRepo.Append(ctx, &entity.Entry{
		Base:      entity.Base{ID: uuid.NewString()},
		Wallet:    wallet,
		Type:      entity.CreditEntry,
		Entries:   decimal.NewFromInt(int64(len(tickets))),
		TixAmount: decimal.Zero,
		Reference: batchID,
		ClaimKey:  ledger.CreditClaimKey(batchID),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot append credit entry: %v", err)
		return nil, errorx.Unknown
	}

	balance, err := d.ticketCreditDomain.GetBalance(ctx, wallet)
	if err != nil {
		return nil, err
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit transaction: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.SubmitTicketsResponse{
		BatchID: batchID,
		DrawID:  draw.ID,
		Balance: balance,
	}
	for i := range tickets {
		resp.Tickets = append(resp.Tickets, model.ConvertTicket(&tickets[i]))
	}

	return resp, nil
}

func (d *ticketDomain) GetMyTickets(
	ctx context.Context, req *model.GetMyTicketsRequest,
) (*model.GetMyTicketsResponse, error) {
	draw, err := activeDraw(ctx, d.drawRepo, d.resolver, time.Now())
	if err != nil {
		return nil, err
	}

	tickets, err := d.ticketRepo.GetByWalletAndDraw(ctx, xcontext.RequestWallet(ctx), draw.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tickets: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyTicketsResponse{DrawID: draw.ID, Tickets: []model.Ticket{}}
	for i := range tickets {
		resp.Tickets = append(resp.Tickets, model.ConvertTicket(&tickets[i]))
	}

	return resp, nil
}
