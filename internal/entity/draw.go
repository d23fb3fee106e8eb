package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Draw is the weekly drawing of one window. The outcome fields are written
// once and never modified afterwards.
type Draw struct {
	Base

	StartTime time.Time `gorm:"uniqueIndex"`
	EndTime   time.Time

	WinningNumbers    Array[int]
	Moonball          int
	JackpotUSD        decimal.Decimal `gorm:"type:decimal(38,18)"`
	Winners           Array[string]
	OutcomeRecordedAt sql.NullTime
}

func (d *Draw) HasOutcome() bool {
	return d.OutcomeRecordedAt.Valid
}
