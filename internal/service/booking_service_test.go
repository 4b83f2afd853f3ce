package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// eligibleUser seeds an enrollment and a paid in-person hotel ticket for
// userID and returns the enrollment.
func eligibleUser(store *fakeStore, userID uint64) *model.Enrollment {
	e := store.addEnrollment(userID)
	store.addTicket(e.ID, model.TicketStatusPaid, false, true)
	return e
}

func newBookingService(store *fakeStore) *BookingService {
	checker := NewEligibilityChecker(store, store)
	return NewBookingService(checker, fakeBookings{store}, store)
}

func TestBookingService_GetBooking(t *testing.T) {
	t.Parallel()

	t.Run("returns booking with room snapshot", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		room := store.addRoom(3)
		booking := store.addBooking(1, room.ID)
		svc := newBookingService(store)

		got, err := svc.GetBooking(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, booking.ID, got.ID)
		require.Equal(t, *room, got.Room)
	})

	t.Run("fails when user has no booking", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		svc := newBookingService(store)

		_, err := svc.GetBooking(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrNoBooking)
	})

	t.Run("read is idempotent", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		room := store.addRoom(2)
		store.addBooking(1, room.ID)
		svc := newBookingService(store)

		first, err := svc.GetBooking(context.Background(), 1)
		require.NoError(t, err)
		second, err := svc.GetBooking(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("no eligibility check on read", func(t *testing.T) {
		// Booking made while eligible stays visible after the ticket
		// reverts to RESERVED.
		store := newFakeStore()
		e := store.addEnrollment(1)
		store.addTicket(e.ID, model.TicketStatusReserved, false, true)
		room := store.addRoom(2)
		booking := store.addBooking(1, room.ID)
		svc := newBookingService(store)

		got, err := svc.GetBooking(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, booking.ID, got.ID)
	})
}

func TestBookingService_CreateBooking(t *testing.T) {
	t.Parallel()

	t.Run("books a vacant room and exposes it on the read path", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		room := store.addRoom(2)
		svc := newBookingService(store)

		id, err := svc.CreateBooking(context.Background(), 1, room.ID)
		require.NoError(t, err)
		require.NotZero(t, id)

		got, err := svc.GetBooking(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, id, got.ID)
		require.Equal(t, *room, got.Room)
	})

	t.Run("fails with NotEnrolled for unknown user", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(2)
		svc := newBookingService(store)

		_, err := svc.CreateBooking(context.Background(), 99, 1)
		require.ErrorIs(t, err, model.ErrNotEnrolled)
	})

	t.Run("unpaid ticket fails before any room lookup", func(t *testing.T) {
		store := newFakeStore()
		e := store.addEnrollment(1)
		store.addTicket(e.ID, model.TicketStatusReserved, false, true)
		room := store.addRoom(2)
		svc := newBookingService(store)

		_, err := svc.CreateBooking(context.Background(), 1, room.ID)
		require.ErrorIs(t, err, model.ErrIneligibleTicket)
		require.Zero(t, store.roomLookups, "room store must not be consulted after an eligibility failure")
	})

	t.Run("second booking fails regardless of target room", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		roomA := store.addRoom(2)
		roomB := store.addRoom(2)
		svc := newBookingService(store)

		_, err := svc.CreateBooking(context.Background(), 1, roomA.ID)
		require.NoError(t, err)

		_, err = svc.CreateBooking(context.Background(), 1, roomB.ID)
		require.ErrorIs(t, err, model.ErrAlreadyBooked)
		_, err = svc.CreateBooking(context.Background(), 1, roomA.ID)
		require.ErrorIs(t, err, model.ErrAlreadyBooked)
	})

	t.Run("fails when room does not exist", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		svc := newBookingService(store)

		_, err := svc.CreateBooking(context.Background(), 1, 777)
		require.ErrorIs(t, err, model.ErrRoomNotFound)
	})

	t.Run("fails when room is at capacity", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		eligibleUser(store, 2)
		room := store.addRoom(1)
		store.addBooking(2, room.ID)
		svc := newBookingService(store)

		_, err := svc.CreateBooking(context.Background(), 1, room.ID)
		require.ErrorIs(t, err, model.ErrRoomFull)
	})

	t.Run("concurrent creates never exceed capacity", func(t *testing.T) {
		const attempts = 16
		store := newFakeStore()
		room := store.addRoom(1)
		for i := uint64(1); i <= attempts; i++ {
			eligibleUser(store, i)
		}
		svc := newBookingService(store)

		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.CreateBooking(context.Background(), uint64(i+1), room.ID)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			require.ErrorIs(t, err, model.ErrRoomFull)
		}
		require.Equal(t, 1, succeeded, "exactly one of %d concurrent attempts may win the last slot", attempts)
		require.Equal(t, 1, store.countLocked(room.ID, 0))
	})
}

func TestBookingService_ChangeBooking(t *testing.T) {
	t.Parallel()

	t.Run("moves the booking to a vacant room", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		roomA := store.addRoom(1)
		roomB := store.addRoom(2)
		booking := store.addBooking(1, roomA.ID)
		svc := newBookingService(store)

		id, err := svc.ChangeBooking(context.Background(), 1, roomB.ID, booking.ID)
		require.NoError(t, err)
		require.Equal(t, booking.ID, id)

		got, err := svc.GetBooking(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, roomB.ID, got.Room.ID)
	})

	t.Run("fails without an existing booking", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		room := store.addRoom(2)
		svc := newBookingService(store)

		_, err := svc.ChangeBooking(context.Background(), 1, room.ID, 5)
		require.ErrorIs(t, err, model.ErrNoExistingBooking)
	})

	t.Run("mismatched booking id writes nothing", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		roomA := store.addRoom(1)
		roomB := store.addRoom(2)
		booking := store.addBooking(1, roomA.ID)
		svc := newBookingService(store)

		_, err := svc.ChangeBooking(context.Background(), 1, roomB.ID, booking.ID+100)
		require.ErrorIs(t, err, model.ErrBookingMismatch)

		got, err := svc.GetBooking(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, roomA.ID, got.Room.ID, "booking must still point at the original room")
	})

	t.Run("fails when target room does not exist", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		roomA := store.addRoom(1)
		booking := store.addBooking(1, roomA.ID)
		svc := newBookingService(store)

		_, err := svc.ChangeBooking(context.Background(), 1, 777, booking.ID)
		require.ErrorIs(t, err, model.ErrRoomNotFound)
	})

	t.Run("fails when target room is full", func(t *testing.T) {
		store := newFakeStore()
		eligibleUser(store, 1)
		eligibleUser(store, 2)
		roomA := store.addRoom(1)
		roomB := store.addRoom(1)
		booking := store.addBooking(1, roomA.ID)
		store.addBooking(2, roomB.ID)
		svc := newBookingService(store)

		_, err := svc.ChangeBooking(context.Background(), 1, roomB.ID, booking.ID)
		require.ErrorIs(t, err, model.ErrRoomFull)
	})

	t.Run("moving to the currently occupied room succeeds", func(t *testing.T) {
		// The caller's own row is excluded from the occupant count, so a
		// same-room change on a capacity-1 room is not rejected.
		store := newFakeStore()
		eligibleUser(store, 1)
		room := store.addRoom(1)
		booking := store.addBooking(1, room.ID)
		svc := newBookingService(store)

		id, err := svc.ChangeBooking(context.Background(), 1, room.ID, booking.ID)
		require.NoError(t, err)
		require.Equal(t, booking.ID, id)
	})
}
