package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

func TestHotelService(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	catalog := &fakeHotels{
		hotels: []model.Hotel{
			{ID: 1, Name: "Palace", ImageURL: "https://example.com/palace.jpg", CreatedAt: now, UpdatedAt: now},
			{ID: 2, Name: "Seaside", ImageURL: "https://example.com/seaside.jpg", CreatedAt: now, UpdatedAt: now},
		},
		rooms: map[uint64][]model.Room{
			1: {{ID: 10, HotelID: 1, Name: "101", Capacity: 2}},
		},
	}

	t.Run("lists hotels for an entitled user", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		svc := NewHotelService(store, store, catalog)

		hotels, err := svc.ListHotels(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, hotels, 2)
	})

	t.Run("missing enrollment or ticket is not-found", func(t *testing.T) {
		store := newFakeStore()
		svc := NewHotelService(store, store, catalog)

		_, err := svc.ListHotels(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrNotEnrolled)

		store.addEnrollment(1)
		_, err = svc.ListHotels(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrNoTicket)
	})

	t.Run("unpaid, remote or hotel-less tickets require payment", func(t *testing.T) {
		cases := []struct {
			name          string
			status        string
			isRemote      bool
			includesHotel bool
		}{
			{"unpaid", model.TicketStatusReserved, false, true},
			{"remote", model.TicketStatusPaid, true, true},
			{"no hotel", model.TicketStatusPaid, false, false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := newFakeStore()
				e := store.addEnrollment(1)
				store.addTicket(e.ID, tc.status, tc.isRemote, tc.includesHotel)
				svc := NewHotelService(store, store, catalog)

				_, err := svc.ListHotels(context.Background(), 1)
				require.ErrorIs(t, err, model.ErrPaymentRequired)
			})
		}
	})

	t.Run("empty catalog is not-found", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		svc := NewHotelService(store, store, &fakeHotels{})

		_, err := svc.ListHotels(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrHotelNotFound)
	})

	t.Run("returns a hotel with its rooms", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		svc := NewHotelService(store, store, catalog)

		hotel, err := svc.GetHotelWithRooms(context.Background(), 1, 1)
		require.NoError(t, err)
		require.Equal(t, "Palace", hotel.Name)
		require.Len(t, hotel.Rooms, 1)

		_, err = svc.GetHotelWithRooms(context.Background(), 1, 99)
		require.ErrorIs(t, err, model.ErrHotelNotFound)
	})
}
