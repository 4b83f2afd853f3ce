package model

import "time"

// Hotel groups capacity-bounded rooms offered to in-person attendees.
// Hotels and rooms are marshaled directly in browse responses, so the
// structs carry json tags.
type Hotel struct {
	ID        uint64    `json:"id"`        // hotels.id
	Name      string    `json:"name"`      // hotels.name
	ImageURL  string    `json:"image"`     // hotels.image_url
	CreatedAt time.Time `json:"createdAt"` // hotels.created_at
	UpdatedAt time.Time `json:"updatedAt"` // hotels.updated_at
}

// Room is a lodging unit belonging to a hotel.  Capacity is the maximum
// number of simultaneous bookings the room accepts; it is fixed reference
// data to the booking workflow.
type Room struct {
	ID        uint64    `json:"id"`        // rooms.id
	HotelID   uint64    `json:"hotelId"`   // rooms.hotel_id
	Name      string    `json:"name"`      // rooms.name
	Capacity  int       `json:"capacity"`  // rooms.capacity
	CreatedAt time.Time `json:"createdAt"` // rooms.created_at
	UpdatedAt time.Time `json:"updatedAt"` // rooms.updated_at
}

// HotelWithRooms is the detail view returned for a single hotel.
type HotelWithRooms struct {
	Hotel
	Rooms []Room `json:"Rooms"`
}
