// Package service holds the business rules of the booking platform.
// Services are stateless: every decision is made from a fresh read of
// storage, so any number of them can run concurrently.  Storage is
// consumed through small store interfaces so the rules can be exercised
// against fakes in tests.
package service

import (
	"context"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// EnrollmentStore is the read access the eligibility gate needs.
type EnrollmentStore interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error)
}

// TicketStore looks up an enrollment's ticket joined with its type.
type TicketStore interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.TicketWithType, error)
}

// EligibilityChecker decides whether a user's ticket entitles them to
// book lodging.  The gates run in order and the first failing one wins;
// later collaborators are never consulted after a failure.
type EligibilityChecker struct {
	enrollments EnrollmentStore
	tickets     TicketStore
}

// NewEligibilityChecker constructs an EligibilityChecker.
func NewEligibilityChecker(enrollments EnrollmentStore, tickets TicketStore) *EligibilityChecker {
	if enrollments == nil || tickets == nil {
		panic("nil store passed to NewEligibilityChecker")
	}
	return &EligibilityChecker{enrollments: enrollments, tickets: tickets}
}

// Check returns nil when the user holds a paid, in-person,
// hotel-inclusive ticket.  The three ticket sub-conditions share the
// single model.ErrIneligibleTicket kind; callers cannot tell which one
// failed.
func (e *EligibilityChecker) Check(ctx context.Context, userID uint64) error {
	enrollment, err := e.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return model.ErrNotEnrolled
	}

	ticket, err := e.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return model.ErrNoTicket
	}

	if ticket.Status != model.TicketStatusPaid || ticket.Type.IsRemote || !ticket.Type.IncludesHotel {
		return model.ErrIneligibleTicket
	}
	return nil
}
