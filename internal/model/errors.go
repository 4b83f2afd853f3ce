// Package model defines the domain entities of the event hotel-booking
// service along with the sentinel error kinds shared by services,
// repositories and handlers.  Handlers compare these values with
// errors.Is to pick HTTP status codes; they are never wrapped into a
// generic error on the way up.
package model

import "errors"

// Eligibility errors returned by the eligibility evaluator.  The three
// ticket sub-conditions (unpaid, remote, no hotel entitlement) collapse
// into the single ErrIneligibleTicket kind; callers cannot tell which
// sub-condition failed.
var (
	ErrNotEnrolled      = errors.New("you must be enrolled to continue")
	ErrNoTicket         = errors.New("you must have a ticket to continue")
	ErrIneligibleTicket = errors.New("you must have a paid in-person ticket with a hotel reservation to continue")
)

// Booking errors.
var (
	ErrNoBooking         = errors.New("booking not found")
	ErrAlreadyBooked     = errors.New("you are only allowed to have one booking")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("this room is up to capacity, choose a room with vacancy")
	ErrNoExistingBooking = errors.New("you do not have a booking to change")
	ErrBookingMismatch   = errors.New("not allowed to change this booking")
)

// Hotel, ticket and enrollment errors.
var (
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrPaymentRequired    = errors.New("a paid in-person ticket including hotel is required")
	ErrTicketExists       = errors.New("there is already a ticket associated with this enrollment")
	ErrInvalidTicketType  = errors.New("invalid ticket type id")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)
