package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moonticket/backend/config"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/logger"
	"github.com/moonticket/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewMockContext returns a context carrying test configs, a silent logger and a
// freshly migrated in-memory database private to the caller. The database has
// a single connection, so statements never overlap.
func NewMockContext() context.Context {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, _ := openDatabase(dsn, 1)
	return newMockContext(db)
}

// NewMockContextWithPool is NewMockContext over a WAL database file with
// several connections, concurrent callers really race on the same rows.
func NewMockContextWithPool(tb testing.TB) context.Context {
	path := filepath.Join(tb.TempDir(), "ledger.db")
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=10000&_txlock=immediate", path)
	db, sqlDB := openDatabase(dsn, 8)
	tb.Cleanup(func() { sqlDB.Close() })
	return newMockContext(db)
}

func openDatabase(dsn string, maxOpenConns int) (*gorm.DB, *sql.DB) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	return db, sqlDB
}

func newMockContext(db *gorm.DB) context.Context {
	cfg := config.Default()
	cfg.Auth.TokenSecret = "secret"
	cfg.Auth.AccessToken.Expiration = time.Minute
	cfg.Solana.FeeReserveLamports = 10_000
	cfg.Twitter.RequiredText = "#Moonticket"

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func NewMockContextWithWallet(ctx context.Context, wallet string) context.Context {
	return xcontext.WithRequestWallet(ctx, wallet)
}
