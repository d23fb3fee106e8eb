package migration

import (
	"context"
	"errors"

	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type migrator func(ctx context.Context) error

// migrators is indexed by version. Never reorder or remove an item, append a
// new one instead.
var migrators = []migrator{
	migrate0000,
}

// Migrate brings the database to the latest version. An empty database is
// created at the latest version directly by migrate0000.
func Migrate(ctx context.Context) error {
	db := xcontext.DB(ctx)
	if err := db.AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	var last entity.Migration
	err := db.Order("version DESC").Take(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Infof("Create database at version %d", len(migrators)-1)
		if err := migrate0000(ctx); err != nil {
			return err
		}

		return db.Create(&entity.Migration{Version: len(migrators) - 1}).Error
	}

	for version := last.Version + 1; version < len(migrators); version++ {
		xcontext.Logger(ctx).Infof("Migrate database to version %d", version)
		if err := migrators[version](ctx); err != nil {
			return err
		}

		if err := db.Create(&entity.Migration{Version: version}).Error; err != nil {
			return err
		}
	}

	return nil
}

func Version(ctx context.Context) (int, error) {
	var last entity.Migration
	if err := xcontext.DB(ctx).Order("version DESC").Take(&last).Error; err != nil {
		return 0, err
	}

	return last.Version, nil
}
