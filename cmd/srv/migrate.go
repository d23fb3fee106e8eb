package main

import (
	"github.com/moonticket/backend/migration"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	if err := migration.Migrate(s.ctx); err != nil {
		return err
	}

	version, err := migration.Version(s.ctx)
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Database is at version %d", version)
	return nil
}
