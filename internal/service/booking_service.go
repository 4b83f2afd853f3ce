package service

import (
	"context"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// BookingStore is the persistence the booking arbiter depends on.  The
// write methods are expected to enforce the capacity and
// one-booking-per-user invariants atomically (the MySQL implementation
// locks the room row) and to report violations as model.ErrRoomFull and
// model.ErrAlreadyBooked rather than raw storage errors.
type BookingStore interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.BookingWithRoom, error)
	Create(ctx context.Context, userID, roomID uint64) (uint64, error)
	UpdateRoom(ctx context.Context, bookingID, userID, roomID uint64) (uint64, error)
}

// RoomStore provides the room lookups the arbiter's precondition gates
// read.
type RoomStore interface {
	GetByID(ctx context.Context, roomID uint64) (*model.Room, error)
	CountBookings(ctx context.Context, roomID uint64) (int, error)
}

// BookingService arbitrates room assignments: it owns the sequence of
// domain checks that decides whether a booking may be created or
// re-pointed, and delegates the decisive capacity-checked write to the
// store.
type BookingService struct {
	eligibility *EligibilityChecker
	bookings    BookingStore
	rooms       RoomStore
}

// NewBookingService constructs a BookingService.
func NewBookingService(eligibility *EligibilityChecker, bookings BookingStore, rooms RoomStore) *BookingService {
	if eligibility == nil || bookings == nil || rooms == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{eligibility: eligibility, bookings: bookings, rooms: rooms}
}

// GetBooking returns the user's booking with a snapshot of its room.
// Eligibility is deliberately not re-checked on the read path: a booking
// made while eligible stays visible even if the ticket later changes.
func (s *BookingService) GetBooking(ctx context.Context, userID uint64) (*model.BookingWithRoom, error) {
	booking, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, model.ErrNoBooking
	}
	return booking, nil
}

// CreateBooking reserves a room for the user and returns the new booking
// id.  Gates, in order: eligibility, one booking per user, room
// existence, room vacancy.  The store's Create re-verifies vacancy and
// ownership under a row lock, so concurrent requests for the last slot
// cannot both succeed.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (uint64, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return 0, err
	}

	existing, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, model.ErrAlreadyBooked
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room == nil {
		return 0, model.ErrRoomNotFound
	}

	occupants, err := s.rooms.CountBookings(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if occupants == room.Capacity {
		return 0, model.ErrRoomFull
	}

	return s.bookings.Create(ctx, userID, roomID)
}

// ChangeBooking moves the user's existing booking to another room and
// returns the booking id.  The supplied bookingID must match the user's
// own booking; the check is redundant with the user-keyed lookup but
// guards against acting on someone else's booking id.
func (s *BookingService) ChangeBooking(ctx context.Context, userID, roomID, bookingID uint64) (uint64, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return 0, err
	}

	existing, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, model.ErrNoExistingBooking
	}
	if existing.ID != bookingID {
		return 0, model.ErrBookingMismatch
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room == nil {
		return 0, model.ErrRoomNotFound
	}

	occupants, err := s.rooms.CountBookings(ctx, roomID)
	if err != nil {
		return 0, err
	}
	// The user's own booking does not count against the target room, so
	// moving to the room they already occupy never fails on its own row.
	if existing.Room.ID == roomID {
		occupants--
	}
	if occupants == room.Capacity {
		return 0, model.ErrRoomFull
	}

	return s.bookings.UpdateRoom(ctx, bookingID, userID, roomID)
}
