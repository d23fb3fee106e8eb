package main

import (
	"context"
	"net/http"
	"time"

	"github.com/moonticket/backend/config"
	"github.com/moonticket/backend/pkg/logger"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(logger.ParseLevel(cfg.LogLevel)))
	s.ctx = xcontext.WithHTTPClient(s.ctx, &http.Client{Timeout: 10 * time.Second})
	return nil
}

func (s *srv) unload(*cli.Context) error {
	if stopper, ok := s.publisher.(interface {
		Stop(ctx context.Context) error
	}); ok {
		if err := stopper.Stop(s.ctx); err != nil {
			xcontext.Logger(s.ctx).Warnf("Cannot stop publisher: %v", err)
		}
	}

	return nil
}
