package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/queue"
)

// BookingService is the slice of the service layer the booking endpoints
// consume.  Satisfied by *service.BookingService; tests substitute a
// stub.
type BookingService interface {
	GetBooking(ctx context.Context, userID uint64) (*model.BookingWithRoom, error)
	CreateBooking(ctx context.Context, userID, roomID uint64) (uint64, error)
	ChangeBooking(ctx context.Context, userID, roomID, bookingID uint64) (uint64, error)
}

// BookingHandler exposes the booking read, create and change endpoints.
// Publish is invoked after successful writes; a nil Publish disables
// event publishing and failures never affect the response.
type BookingHandler struct {
	Bookings BookingService
	Publish  func(ctx context.Context, ev queue.BookingEvent) error
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings BookingService, publish func(ctx context.Context, ev queue.BookingEvent) error) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Publish: publish}
}

type bookingReq struct {
	RoomID uint64 `json:"roomId"`
}

// GetBooking handles GET /v1/booking.  It returns the caller's booking
// with a snapshot of its room, or 404 when none exists.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	booking, err := h.Bookings.GetBooking(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNoBooking) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": model.ErrNoBooking.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}
	return c.JSON(http.StatusOK, booking)
}

// CreateBooking handles POST /v1/booking.  The body must contain a
// positive roomId.  Domain rejections map to 403 (eligibility, second
// booking, full room) or 404 (unknown room).
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}

	bookingID, err := h.Bookings.CreateBooking(c.Request().Context(), userID, req.RoomID)
	if err != nil {
		return bookingError(c, err)
	}

	h.publish(c, queue.BookingEvent{
		Type:      queue.BookingCreated,
		BookingID: bookingID,
		UserID:    userID,
		RoomID:    req.RoomID,
		At:        time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"bookingId": bookingID})
}

// ChangeBooking handles PUT /v1/booking/:bookingId.  It re-points the
// caller's booking at another room.
func (h *BookingHandler) ChangeBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}

	changedID, err := h.Bookings.ChangeBooking(c.Request().Context(), userID, req.RoomID, bookingID)
	if err != nil {
		return bookingError(c, err)
	}

	h.publish(c, queue.BookingEvent{
		Type:      queue.BookingChanged,
		BookingID: changedID,
		UserID:    userID,
		RoomID:    req.RoomID,
		At:        time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"bookingId": changedID})
}

func (h *BookingHandler) publish(c echo.Context, ev queue.BookingEvent) {
	if h.Publish == nil {
		return
	}
	if err := h.Publish(c.Request().Context(), ev); err != nil {
		log.Printf("booking: publish %s event failed: %v", ev.Type, err)
	}
}

// bookingError maps arbiter rejections onto status codes.  Forbidden and
// not-found are distinct kinds and are never folded into one generic
// error.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrNotEnrolled),
		errors.Is(err, model.ErrNoTicket),
		errors.Is(err, model.ErrIneligibleTicket),
		errors.Is(err, model.ErrAlreadyBooked),
		errors.Is(err, model.ErrRoomFull),
		errors.Is(err, model.ErrNoExistingBooking),
		errors.Is(err, model.ErrBookingMismatch):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
