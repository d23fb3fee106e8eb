package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTicket(drawID, wallet, batchID string, numbers []int, moonball int) entity.Ticket {
	return entity.Ticket{
		Base:     entity.Base{ID: uuid.NewString()},
		DrawID:   drawID,
		Wallet:   wallet,
		BatchID:  batchID,
		Numbers:  numbers,
		Moonball: moonball,
	}
}

func Test_ticketRepository_CreateMany(t *testing.T) {
	ctx := testutil.NewMockContext()
	repo := NewTicketRepository()

	require.NoError(t, repo.CreateMany(ctx, nil))

	require.NoError(t, repo.CreateMany(ctx, []entity.Ticket{
		newTicket("draw1", testutil.Wallet1, "b1", []int{1, 2, 3, 4}, 5),
		newTicket("draw1", testutil.Wallet1, "b1", []int{7, 9, 21, 25}, 10),
		newTicket("draw1", testutil.Wallet2, "b2", []int{1, 2, 3, 4}, 1),
		newTicket("draw2", testutil.Wallet1, "b3", []int{5, 6, 7, 8}, 2),
	}))

	tickets, err := repo.GetByWalletAndDraw(ctx, testutil.Wallet1, "draw1")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		require.Equal(t, "b1", ticket.BatchID)
		require.Len(t, ticket.Numbers, 4)
	}

	count, err := repo.CountByDraw(ctx, "draw1")
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	count, err = repo.CountByDraw(ctx, "draw3")
	require.NoError(t, err)
	require.Zero(t, count)
}

func Test_ticketRepository_GetByWalletAndDraw_Empty(t *testing.T) {
	ctx := testutil.NewMockContext()
	repo := NewTicketRepository()

	tickets, err := repo.GetByWalletAndDraw(ctx, testutil.Wallet3, "draw1")
	require.NoError(t, err)
	require.Empty(t, tickets)
}
