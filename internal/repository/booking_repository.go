package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// BookingRepo persists bookings.  The write paths are the only place the
// room-capacity invariant is decided, so both run inside a transaction
// that locks the target room row with SELECT ... FOR UPDATE and recounts
// occupants under that lock.  Two concurrent attempts against the last
// free slot therefore serialize on the row lock and the loser sees the
// room full, instead of both passing a stale count.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// FindByUserID returns the user's booking joined with a snapshot of its
// room, or (nil, nil) when the user has no booking.
func (r *BookingRepo) FindByUserID(ctx context.Context, userID uint64) (*model.BookingWithRoom, error) {
	const q = `SELECT b.id, r.id, r.hotel_id, r.name, r.capacity, r.created_at, r.updated_at
	           FROM bookings b JOIN rooms r ON r.id = b.room_id
	           WHERE b.user_id = ? LIMIT 1`
	var bw model.BookingWithRoom
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&bw.ID, &bw.Room.ID, &bw.Room.HotelID, &bw.Room.Name, &bw.Room.Capacity,
		&bw.Room.CreatedAt, &bw.Room.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bw, nil
}

// Create inserts a booking for (userID, roomID) and returns its id.
// Returns model.ErrRoomNotFound when the room does not exist,
// model.ErrRoomFull when the room has no vacancy at commit time, and
// model.ErrAlreadyBooked when the unique index on user_id rejects a
// second booking for the same user.
func (r *BookingRepo) Create(ctx context.Context, userID, roomID uint64) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	capacity, err := lockRoomCapacity(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}
	var occupants int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = ?`, roomID).Scan(&occupants); err != nil {
		return 0, err
	}
	if occupants >= capacity {
		return 0, model.ErrRoomFull
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (user_id, room_id) VALUES (?, ?)`, userID, roomID)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return 0, model.ErrAlreadyBooked
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(id), nil
}

// UpdateRoom re-points the booking at roomID and returns the booking id.
// The occupant count excludes the caller's own booking so that moving to
// the room the user already occupies never fails on its own row.
func (r *BookingRepo) UpdateRoom(ctx context.Context, bookingID, userID, roomID uint64) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	capacity, err := lockRoomCapacity(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}
	var occupants int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = ? AND user_id <> ?`,
		roomID, userID).Scan(&occupants); err != nil {
		return 0, err
	}
	if occupants >= capacity {
		return 0, model.ErrRoomFull
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET room_id = ? WHERE id = ? AND user_id = ?`,
		roomID, bookingID, userID); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return bookingID, nil
}

// lockRoomCapacity acquires an exclusive lock on the room row and returns
// its capacity.  The lock is held until the surrounding transaction
// commits or rolls back, serializing concurrent capacity decisions.
func lockRoomCapacity(ctx context.Context, tx *sql.Tx, roomID uint64) (int, error) {
	var capacity int
	err := tx.QueryRowContext(ctx,
		`SELECT capacity FROM rooms WHERE id = ? FOR UPDATE`, roomID).Scan(&capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, model.ErrRoomNotFound
	}
	if err != nil {
		return 0, err
	}
	return capacity, nil
}
