package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

func newTicketFixture() (*fakeStore, *fakeTicketCatalog) {
	store := newFakeStore()
	catalog := &fakeTicketCatalog{
		fakeStore: store,
		types: []model.TicketType{
			{ID: 1, Name: "Online", PriceCents: 10000, IsRemote: true, IncludesHotel: false},
			{ID: 2, Name: "Presential + Hotel", PriceCents: 60000, IsRemote: false, IncludesHotel: true},
		},
	}
	return store, catalog
}

func TestTicketService(t *testing.T) {
	t.Parallel()

	t.Run("lists ticket types", func(t *testing.T) {
		store, catalog := newTicketFixture()
		svc := NewTicketService(store, catalog)

		types, err := svc.GetTicketTypes(context.Background())
		require.NoError(t, err)
		require.Len(t, types, 2)
	})

	t.Run("returns the user's ticket with its type", func(t *testing.T) {
		store, catalog := newTicketFixture()
		e := store.addEnrollment(1)
		store.addTicket(e.ID, model.TicketStatusPaid, false, true)
		svc := NewTicketService(store, catalog)

		ticket, err := svc.GetUserTicket(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, model.TicketStatusPaid, ticket.Status)
	})

	t.Run("get fails without enrollment or ticket", func(t *testing.T) {
		store, catalog := newTicketFixture()
		svc := NewTicketService(store, catalog)

		_, err := svc.GetUserTicket(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrNotEnrolled)

		store.addEnrollment(1)
		_, err = svc.GetUserTicket(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrNoTicket)
	})

	t.Run("creates a RESERVED ticket", func(t *testing.T) {
		store, catalog := newTicketFixture()
		store.addEnrollment(1)
		svc := NewTicketService(store, catalog)

		ticket, err := svc.CreateTicket(context.Background(), 1, 2)
		require.NoError(t, err)
		require.Equal(t, model.TicketStatusReserved, ticket.Status)
		require.True(t, ticket.Type.IncludesHotel)
	})

	t.Run("rejects a zero or unknown ticket type", func(t *testing.T) {
		store, catalog := newTicketFixture()
		store.addEnrollment(1)
		svc := NewTicketService(store, catalog)

		_, err := svc.CreateTicket(context.Background(), 1, 0)
		require.ErrorIs(t, err, model.ErrInvalidTicketType)
		_, err = svc.CreateTicket(context.Background(), 1, 99)
		require.ErrorIs(t, err, model.ErrInvalidTicketType)
	})

	t.Run("requires an enrollment", func(t *testing.T) {
		store, catalog := newTicketFixture()
		svc := NewTicketService(store, catalog)

		_, err := svc.CreateTicket(context.Background(), 1, 2)
		require.ErrorIs(t, err, model.ErrNotEnrolled)
	})

	t.Run("one ticket per enrollment", func(t *testing.T) {
		store, catalog := newTicketFixture()
		store.addEnrollment(1)
		svc := NewTicketService(store, catalog)

		_, err := svc.CreateTicket(context.Background(), 1, 2)
		require.NoError(t, err)
		_, err = svc.CreateTicket(context.Background(), 1, 1)
		require.ErrorIs(t, err, model.ErrTicketExists)
	})
}
