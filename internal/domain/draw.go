package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/domain/lotteryticket"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DrawDomain interface {
	GetCurrentDraw(context.Context, *model.GetCurrentDrawRequest) (*model.GetCurrentDrawResponse, error)
	GetLastDraw(context.Context, *model.GetLastDrawRequest) (*model.GetLastDrawResponse, error)
	OpenDraw(context.Context, *model.OpenDrawRequest) (*model.OpenDrawResponse, error)
	RecordOutcome(context.Context, *model.RecordDrawOutcomeRequest) (*model.RecordDrawOutcomeResponse, error)
}

type drawDomain struct {
	drawRepo repository.DrawRepository
	resolver *drawwindow.Resolver
}

func NewDrawDomain(drawRepo repository.DrawRepository, resolver *drawwindow.Resolver) *drawDomain {
	return &drawDomain{drawRepo: drawRepo, resolver: resolver}
}

func (d *drawDomain) GetCurrentDraw(
	ctx context.Context, req *model.GetCurrentDrawRequest,
) (*model.GetCurrentDrawResponse, error) {
	draw, err := activeDraw(ctx, d.drawRepo, d.resolver, time.Now())
	if err != nil {
		return nil, err
	}

	return &model.GetCurrentDrawResponse{Draw: model.ConvertDraw(draw)}, nil
}

func (d *drawDomain) GetLastDraw(
	ctx context.Context, req *model.GetLastDrawRequest,
) (*model.GetLastDrawResponse, error) {
	window, err := d.resolver.LastClosed(time.Now())
	if err != nil {
		return nil, err
	}

	draw, err := d.drawRepo.GetByStartTime(ctx, window.Start)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get last draw: %v", err)
			return nil, errorx.Unknown
		}

		// No draw was opened for that window, report the window only.
		draw = &entity.Draw{StartTime: window.Start, EndTime: window.End, JackpotUSD: decimal.Zero}
	}

	return &model.GetLastDrawResponse{
		Draw:     model.ConvertDraw(draw),
		Recorded: draw.HasOutcome(),
	}, nil
}

// OpenDraw creates the draw of the window containing req.At (RFC3339, now if
// empty). It is idempotent.
func (d *drawDomain) OpenDraw(ctx context.Context, req *model.OpenDrawRequest) (*model.OpenDrawResponse, error) {
	at := time.Now()
	if req.At != "" {
		var err error
		at, err = time.Parse(time.RFC3339, req.At)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid time %s", req.At)
		}
	}

	draw, err := activeDraw(ctx, d.drawRepo, d.resolver, at)
	if err != nil {
		return nil, err
	}

	xcontext.Logger(ctx).Infof("Draw %s is open for [%s, %s)", draw.ID, draw.StartTime, draw.EndTime)
	return &model.OpenDrawResponse{Draw: model.ConvertDraw(draw)}, nil
}

func (d *drawDomain) RecordOutcome(
	ctx context.Context, req *model.RecordDrawOutcomeRequest,
) (*model.RecordDrawOutcomeResponse, error) {
	err := lotteryticket.Validate(lotteryticket.Ticket{Numbers: req.WinningNumbers, Moonball: req.Moonball})
	if err != nil {
		return nil, err
	}

	jackpot, err := decimal.NewFromString(req.JackpotUSD)
	if err != nil || jackpot.IsNegative() {
		return nil, errorx.New(errorx.InvalidAmount, "Invalid jackpot amount %q", req.JackpotUSD)
	}

	for _, w := range req.Winners {
		if !solutil.IsValidWallet(w) {
			return nil, errorx.New(errorx.BadRequest, "Invalid winner wallet %s", w)
		}
	}

	draw, err := d.drawRepo.GetByID(ctx, req.DrawID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found draw")
		}

		xcontext.Logger(ctx).Errorf("Cannot get draw: %v", err)
		return nil, errorx.Unknown
	}

	if draw.HasOutcome() {
		return nil, errorx.New(errorx.OutcomeRecorded, "The outcome of this draw has been recorded")
	}

	if time.Now().Before(draw.EndTime) {
		return nil, errorx.New(errorx.BadRequest, "The draw has not closed yet")
	}

	err = d.drawRepo.RecordOutcome(ctx, draw.ID, repository.DrawOutcome{
		WinningNumbers: req.WinningNumbers,
		Moonball:       req.Moonball,
		JackpotUSD:     jackpot,
		Winners:        req.Winners,
		RecordedAt:     time.Now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.OutcomeRecorded, "The outcome of this draw has been recorded")
		}

		xcontext.Logger(ctx).Errorf("Cannot record draw outcome: %v", err)
		return nil, errorx.Unknown
	}

	draw, err = d.drawRepo.GetByID(ctx, draw.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get draw: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RecordDrawOutcomeResponse{Draw: model.ConvertDraw(draw)}, nil
}

// activeDraw returns the draw of the window containing now, creating it if the
// scheduler has not opened it yet.
func activeDraw(
	ctx context.Context,
	drawRepo repository.DrawRepository,
	resolver *drawwindow.Resolver,
	now time.Time,
) (*entity.Draw, error) {
	window, err := resolver.Active(now)
	if err != nil {
		return nil, err
	}

	draw, err := drawRepo.GetOrCreate(ctx, &entity.Draw{
		Base:       entity.Base{ID: uuid.NewString()},
		StartTime:  window.Start,
		EndTime:    window.End,
		JackpotUSD: decimal.Zero,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get or create draw: %v", err)
		return nil, errorx.Unknown
	}

	return draw, nil
}
