package entity

import (
	"context"

	"github.com/moonticket/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Draw{},
		&Entry{},
		&TicketCredit{},
		&FreeTicketClaim{},
		&CheckIn{},
		&Ticket{},
		&Purchase{},
		&PayReward{},
		&Migration{},
	)
}
