package model

import "time"

// Ticket lifecycle statuses.  A ticket starts RESERVED when created and
// becomes PAID once payment is processed (outside this service).
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// Ticket is a purchasable event pass.  Each enrollment holds at most one
// ticket (unique index on enrollment_id).
//
// Fields:
//  ID           – primary key identifier.
//  EnrollmentID – owning enrollment (unique).
//  TicketTypeID – reference into ticket_types.
//  Status       – RESERVED or PAID.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Ticket struct {
	ID           uint64    `json:"id"`           // tickets.id
	EnrollmentID uint64    `json:"enrollmentId"` // tickets.enrollment_id
	TicketTypeID uint64    `json:"ticketTypeId"` // tickets.ticket_type_id
	Status       string    `json:"status"`       // tickets.status
	CreatedAt    time.Time `json:"createdAt"`    // tickets.created_at
	UpdatedAt    time.Time `json:"updatedAt"`    // tickets.updated_at
}

// TicketType is read-only reference data describing what a ticket
// entitles its holder to.  IsRemote means remote attendance with no
// physical presence; IncludesHotel entitles the holder to book lodging.
type TicketType struct {
	ID            uint64    `json:"id"`            // ticket_types.id
	Name          string    `json:"name"`          // ticket_types.name
	PriceCents    uint32    `json:"price"`         // ticket_types.price_cents
	IsRemote      bool      `json:"isRemote"`      // ticket_types.is_remote
	IncludesHotel bool      `json:"includesHotel"` // ticket_types.includes_hotel
	CreatedAt     time.Time `json:"createdAt"`     // ticket_types.created_at
	UpdatedAt     time.Time `json:"updatedAt"`     // ticket_types.updated_at
}

// TicketWithType joins a ticket with its type so callers can evaluate
// entitlements in one read.
type TicketWithType struct {
	Ticket
	Type TicketType `json:"TicketType"`
}
