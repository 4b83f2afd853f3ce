package service

import (
	"context"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// TicketCatalog is the persistence the ticket service depends on.
type TicketCatalog interface {
	ListTypes(ctx context.Context) ([]model.TicketType, error)
	TypeExists(ctx context.Context, typeID uint64) (bool, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.TicketWithType, error)
	Create(ctx context.Context, enrollmentID, typeID uint64) (*model.TicketWithType, error)
}

// TicketService serves the ticket catalog and creates tickets for
// enrolled users.  Payment happens elsewhere; tickets are always created
// RESERVED.
type TicketService struct {
	enrollments EnrollmentStore
	tickets     TicketCatalog
}

// NewTicketService constructs a TicketService.
func NewTicketService(enrollments EnrollmentStore, tickets TicketCatalog) *TicketService {
	if enrollments == nil || tickets == nil {
		panic("nil dependency passed to NewTicketService")
	}
	return &TicketService{enrollments: enrollments, tickets: tickets}
}

// GetTicketTypes returns all ticket types.
func (s *TicketService) GetTicketTypes(ctx context.Context) ([]model.TicketType, error) {
	return s.tickets.ListTypes(ctx)
}

// GetUserTicket returns the user's current ticket with its type.
func (s *TicketService) GetUserTicket(ctx context.Context, userID uint64) (*model.TicketWithType, error) {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, model.ErrNotEnrolled
	}
	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, model.ErrNoTicket
	}
	return ticket, nil
}

// CreateTicket creates a RESERVED ticket of the given type for the
// user's enrollment.  An enrollment holds at most one ticket.
func (s *TicketService) CreateTicket(ctx context.Context, userID, typeID uint64) (*model.TicketWithType, error) {
	if typeID == 0 {
		return nil, model.ErrInvalidTicketType
	}
	ok, err := s.tickets.TypeExists(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrInvalidTicketType
	}

	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, model.ErrNotEnrolled
	}

	existing, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrTicketExists
	}

	return s.tickets.Create(ctx, enrollment.ID, typeID)
}
