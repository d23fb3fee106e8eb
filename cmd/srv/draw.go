package main

import (
	"github.com/moonticket/backend/internal/domain"
	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) loadDrawDomain() {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()

	cfg := xcontext.Configs(s.ctx)
	s.resolver = drawwindow.NewResolver(cfg.Draw.UTCOffset)
	s.drawDomain = domain.NewDrawDomain(s.drawRepo, s.resolver)
}

func (s *srv) startOpenDraw(cctx *cli.Context) error {
	s.loadDrawDomain()

	resp, err := s.drawDomain.OpenDraw(s.ctx, &model.OpenDrawRequest{At: cctx.String("at")})
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Opened draw %s", resp.Draw.ID)
	return nil
}

func (s *srv) startRecordDraw(cctx *cli.Context) error {
	s.loadDrawDomain()

	resp, err := s.drawDomain.RecordOutcome(s.ctx, &model.RecordDrawOutcomeRequest{
		DrawID:         cctx.String("draw-id"),
		WinningNumbers: cctx.IntSlice("numbers"),
		Moonball:       cctx.Int("moonball"),
		JackpotUSD:     cctx.String("jackpot-usd"),
		Winners:        cctx.StringSlice("winner"),
	})
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Recorded outcome of draw %s at %s", resp.Draw.ID, resp.Draw.OutcomeRecordedAt)
	return nil
}
