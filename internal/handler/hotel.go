package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelService is the slice of the service layer the hotel browse
// endpoints consume.
type HotelService interface {
	ListHotels(ctx context.Context, userID uint64) ([]model.Hotel, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID uint64) (*model.HotelWithRooms, error)
}

// HotelHandler exposes the hotel browse endpoints.
type HotelHandler struct {
	Hotels HotelService
}

// NewHotelHandler constructs a HotelHandler.
func NewHotelHandler(hotels HotelService) *HotelHandler {
	if hotels == nil {
		panic("nil service passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels}
}

// ListHotels handles GET /v1/hotels.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	hotels, err := h.Hotels.ListHotels(c.Request().Context(), userID)
	if err != nil {
		return hotelError(c, err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// GetHotel handles GET /v1/hotels/:hotelId, returning the hotel with its
// rooms.
func (h *HotelHandler) GetHotel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	hotelID, ok := pathID(c, "hotelId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	hotel, err := h.Hotels.GetHotelWithRooms(c.Request().Context(), userID, hotelID)
	if err != nil {
		return hotelError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// hotelError keeps the browse contract: missing enrollment/ticket and
// unknown hotels are 404, entitlement failures are 402.
func hotelError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrNotEnrolled),
		errors.Is(err, model.ErrNoTicket),
		errors.Is(err, model.ErrHotelNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrPaymentRequired):
		return c.JSON(http.StatusPaymentRequired, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
