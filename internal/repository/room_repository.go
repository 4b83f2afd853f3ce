package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// RoomRepo provides read access to rooms and their occupancy.  Rooms are
// reference data to the booking workflow; only the bookings pointing at
// them change.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// GetByID returns the room or (nil, nil) when it does not exist.
func (r *RoomRepo) GetByID(ctx context.Context, roomID uint64) (*model.Room, error) {
	const q = `SELECT id, hotel_id, name, capacity, created_at, updated_at FROM rooms WHERE id = ? LIMIT 1`
	var room model.Room
	err := r.db.QueryRowContext(ctx, q, roomID).Scan(
		&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt, &room.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// CountBookings returns the number of bookings currently referencing the
// room.  This read is advisory; the decisive count happens under the row
// lock taken by BookingRepo when it writes.
func (r *RoomRepo) CountBookings(ctx context.Context, roomID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = ?`, roomID).Scan(&n)
	return n, err
}
