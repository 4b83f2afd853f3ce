package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

func TestEligibilityChecker_Check(t *testing.T) {
	t.Parallel()

	t.Run("fails when user has no enrollment", func(t *testing.T) {
		store := newFakeStore()
		checker := NewEligibilityChecker(store, store)

		err := checker.Check(context.Background(), 42)
		require.ErrorIs(t, err, model.ErrNotEnrolled)
	})

	t.Run("fails when enrollment has no ticket", func(t *testing.T) {
		store := newFakeStore()
		store.addEnrollment(42)
		checker := NewEligibilityChecker(store, store)

		err := checker.Check(context.Background(), 42)
		require.ErrorIs(t, err, model.ErrNoTicket)
	})

	t.Run("ticket sub-conditions collapse into one kind", func(t *testing.T) {
		cases := []struct {
			name          string
			status        string
			isRemote      bool
			includesHotel bool
		}{
			{"unpaid ticket", model.TicketStatusReserved, false, true},
			{"remote ticket", model.TicketStatusPaid, true, true},
			{"no hotel entitlement", model.TicketStatusPaid, false, false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := newFakeStore()
				e := store.addEnrollment(42)
				store.addTicket(e.ID, tc.status, tc.isRemote, tc.includesHotel)
				checker := NewEligibilityChecker(store, store)

				err := checker.Check(context.Background(), 42)
				require.ErrorIs(t, err, model.ErrIneligibleTicket)
			})
		}
	})

	t.Run("passes for a paid in-person hotel-inclusive ticket", func(t *testing.T) {
		store := newFakeStore()
		e := store.addEnrollment(42)
		store.addTicket(e.ID, model.TicketStatusPaid, false, true)
		checker := NewEligibilityChecker(store, store)

		require.NoError(t, checker.Check(context.Background(), 42))
	})
}
