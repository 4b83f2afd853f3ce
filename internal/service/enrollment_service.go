package service

import (
	"context"
	"time"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// EnrollmentWriter is the persistence the enrollment service depends on.
type EnrollmentWriter interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error)
	FindAddress(ctx context.Context, enrollmentID uint64) (*model.Address, error)
	Upsert(ctx context.Context, e model.Enrollment) (uint64, error)
	UpsertAddress(ctx context.Context, a model.Address) error
}

// EnrollmentView is the response shape for the enrollment read path: the
// enrollment's own fields without ownership or timestamps, plus the
// first address when one exists.
type EnrollmentView struct {
	ID       uint64       `json:"id"`
	Name     string       `json:"name"`
	Document string       `json:"document"`
	Birthday time.Time    `json:"birthday"`
	Phone    string       `json:"phone"`
	Address  *AddressView `json:"address,omitempty"`
}

// AddressView mirrors EnrollmentView for the nested address.
type AddressView struct {
	ID         uint64  `json:"id"`
	PostalCode string  `json:"postalCode"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	District   string  `json:"district"`
	Detail     *string `json:"detail,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
}

// UpsertEnrollmentInput carries the fields a user may write.
type UpsertEnrollmentInput struct {
	UserID   uint64
	Name     string
	Document string
	Birthday time.Time
	Phone    string
	Address  AddressView
}

// EnrollmentService reads and upserts a user's enrollment with its
// mailing address.
type EnrollmentService struct {
	enrollments EnrollmentWriter
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(enrollments EnrollmentWriter) *EnrollmentService {
	if enrollments == nil {
		panic("nil store passed to NewEnrollmentService")
	}
	return &EnrollmentService{enrollments: enrollments}
}

// GetEnrollment returns the user's enrollment with its address.
func (s *EnrollmentService) GetEnrollment(ctx context.Context, userID uint64) (*EnrollmentView, error) {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, model.ErrEnrollmentNotFound
	}

	view := &EnrollmentView{
		ID:       enrollment.ID,
		Name:     enrollment.Name,
		Document: enrollment.Document,
		Birthday: enrollment.Birthday,
		Phone:    enrollment.Phone,
	}
	address, err := s.enrollments.FindAddress(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if address != nil {
		view.Address = &AddressView{
			ID:         address.ID,
			PostalCode: address.PostalCode,
			Street:     address.Street,
			Number:     address.Number,
			District:   address.District,
			Detail:     address.Detail,
			City:       address.City,
			State:      address.State,
		}
	}
	return view, nil
}

// UpsertEnrollment creates or updates the user's enrollment and replaces
// its address.
func (s *EnrollmentService) UpsertEnrollment(ctx context.Context, in UpsertEnrollmentInput) error {
	enrollmentID, err := s.enrollments.Upsert(ctx, model.Enrollment{
		UserID:   in.UserID,
		Name:     in.Name,
		Document: in.Document,
		Birthday: in.Birthday,
		Phone:    in.Phone,
	})
	if err != nil {
		return err
	}
	return s.enrollments.UpsertAddress(ctx, model.Address{
		EnrollmentID: enrollmentID,
		PostalCode:   in.Address.PostalCode,
		Street:       in.Address.Street,
		Number:       in.Address.Number,
		District:     in.Address.District,
		Detail:       in.Address.Detail,
		City:         in.Address.City,
		State:        in.Address.State,
	})
}
