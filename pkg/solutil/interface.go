package solutil

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const LamportsPerSOL = 1_000_000_000

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionFailed   = errors.New("transaction failed")
)

// Transfer is what a finalized purchase transaction moved, derived from the
// balance changes recorded by the cluster.
type Transfer struct {
	Signature string
	FeePayer  string
	Slot      uint64
	BlockTime time.Time

	// Lamports received by the treasury.
	Lamports uint64

	// TIX received by the fee payer, in token units.
	TixAmount decimal.Decimal
}

type Reader interface {
	GetTransfer(ctx context.Context, signature string) (*Transfer, error)
	GetBalance(ctx context.Context, wallet string) (uint64, error)
}
