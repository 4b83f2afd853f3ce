package service

import (
	"context"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelStore provides read access to the hotel catalog.
type HotelStore interface {
	List(ctx context.Context) ([]model.Hotel, error)
	GetWithRooms(ctx context.Context, hotelID uint64) (*model.HotelWithRooms, error)
}

// HotelService gates the hotel browse endpoints.  Unlike the booking
// path, missing enrollment or ticket surface as not-found here, and the
// three entitlement failures surface as payment-required.
type HotelService struct {
	enrollments EnrollmentStore
	tickets     TicketStore
	hotels      HotelStore
}

// NewHotelService constructs a HotelService.
func NewHotelService(enrollments EnrollmentStore, tickets TicketStore, hotels HotelStore) *HotelService {
	if enrollments == nil || tickets == nil || hotels == nil {
		panic("nil dependency passed to NewHotelService")
	}
	return &HotelService{enrollments: enrollments, tickets: tickets, hotels: hotels}
}

func (s *HotelService) checkAccess(ctx context.Context, userID uint64) error {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return model.ErrNotEnrolled
	}
	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return model.ErrNoTicket
	}
	if !ticket.Type.IncludesHotel || ticket.Status != model.TicketStatusPaid || ticket.Type.IsRemote {
		return model.ErrPaymentRequired
	}
	return nil
}

// ListHotels returns every hotel for a user entitled to lodging.
func (s *HotelService) ListHotels(ctx context.Context, userID uint64) ([]model.Hotel, error) {
	if err := s.checkAccess(ctx, userID); err != nil {
		return nil, err
	}
	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, model.ErrHotelNotFound
	}
	return hotels, nil
}

// GetHotelWithRooms returns a hotel and its rooms for an entitled user.
func (s *HotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID uint64) (*model.HotelWithRooms, error) {
	if err := s.checkAccess(ctx, userID); err != nil {
		return nil, err
	}
	hotel, err := s.hotels.GetWithRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, model.ErrHotelNotFound
	}
	return hotel, nil
}
