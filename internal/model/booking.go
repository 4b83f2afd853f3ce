package model

import "time"

// Booking is a user's reservation of a specific room.  At most one
// booking exists per user at any time (unique index on user_id) and the
// number of bookings referencing a room never exceeds that room's
// capacity.  Bookings are created and re-pointed to other rooms; they are
// never deleted.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	RoomID    uint64    // bookings.room_id
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}

// BookingWithRoom is the read-path view of a booking: its id plus a full
// snapshot of the room it points at.
type BookingWithRoom struct {
	ID   uint64 `json:"id"`
	Room Room   `json:"Room"`
}
