package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type dbTransaction struct {
	tx   *gorm.DB
	done bool

	// joined is true if the transaction belongs to an outer caller, only the
	// outer caller commits or rollbacks it.
	joined bool
}

func DB(ctx context.Context) *gorm.DB {
	if t, ok := ctx.Value(dbTxKey{}).(*dbTransaction); ok && !t.done {
		return t.tx
	}

	db, _ := ctx.Value(dbKey{}).(*gorm.DB)
	return db
}

// WithDBTransaction begins a transaction, every DB call on the returned
// context runs inside it until CommitDBTransaction or
// WithRollbackDBTransaction is called. If ctx already runs a transaction, the
// returned context joins it.
func WithDBTransaction(ctx context.Context) context.Context {
	if t, ok := ctx.Value(dbTxKey{}).(*dbTransaction); ok && !t.done {
		return context.WithValue(ctx, dbTxKey{}, &dbTransaction{tx: t.tx, joined: true})
	}

	return context.WithValue(ctx, dbTxKey{}, &dbTransaction{tx: DB(ctx).Begin()})
}

// CommitDBTransaction commits the transaction started by WithDBTransaction.
func CommitDBTransaction(ctx context.Context) error {
	t, ok := ctx.Value(dbTxKey{}).(*dbTransaction)
	if !ok || t.done {
		return nil
	}

	t.done = true
	if t.joined {
		return nil
	}

	return t.tx.Commit().Error
}

// WithRollbackDBTransaction rollbacks the transaction if it has not been
// committed yet. It is safe to defer right after WithDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	t, ok := ctx.Value(dbTxKey{}).(*dbTransaction)
	if !ok || t.done {
		return ctx
	}

	t.done = true
	if t.joined {
		return ctx
	}

	if err := t.tx.Rollback().Error; err != nil {
		Logger(ctx).Warnf("Cannot rollback transaction: %v", err)
	}

	return ctx
}
