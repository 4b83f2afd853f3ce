// Package queue publishes and consumes booking events over RabbitMQ.
package queue

// Event types carried on the booking.events queue.
const (
	BookingCreated = "booking.created"
	BookingChanged = "booking.changed"
)

// BookingEvent is published after a booking write commits.  It carries
// enough for downstream consumers to log or notify without querying the
// primary database.
type BookingEvent struct {
	Type      string `json:"type"`
	BookingID uint64 `json:"booking_id"`
	UserID    uint64 `json:"user_id"`
	RoomID    uint64 `json:"room_id"`
	At        string `json:"at"`
}
