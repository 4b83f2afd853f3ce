package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelRepo provides read-only access to hotels and their rooms.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo returns a new HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// List returns all hotels ordered by name.
func (r *HotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	const q = `SELECT id, name, image_url, created_at, updated_at FROM hotels ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []model.Hotel
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.ImageURL, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// GetWithRooms returns a hotel and all of its rooms, or (nil, nil) when
// the hotel does not exist.
func (r *HotelRepo) GetWithRooms(ctx context.Context, hotelID uint64) (*model.HotelWithRooms, error) {
	var hw model.HotelWithRooms
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, image_url, created_at, updated_at FROM hotels WHERE id = ? LIMIT 1`,
		hotelID).Scan(&hw.ID, &hw.Name, &hw.ImageURL, &hw.CreatedAt, &hw.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, hotel_id, name, capacity, created_at, updated_at FROM rooms WHERE hotel_id = ? ORDER BY name ASC`,
		hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.Name, &room.Capacity,
			&room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		hw.Rooms = append(hw.Rooms, room)
	}
	return &hw, rows.Err()
}
