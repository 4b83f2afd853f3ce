package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// TicketService is the slice of the service layer the ticket endpoints
// consume.
type TicketService interface {
	GetTicketTypes(ctx context.Context) ([]model.TicketType, error)
	GetUserTicket(ctx context.Context, userID uint64) (*model.TicketWithType, error)
	CreateTicket(ctx context.Context, userID, typeID uint64) (*model.TicketWithType, error)
}

// TicketHandler exposes the ticket catalog and the user's ticket.
type TicketHandler struct {
	Tickets TicketService
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(tickets TicketService) *TicketHandler {
	if tickets == nil {
		panic("nil service passed to NewTicketHandler")
	}
	return &TicketHandler{Tickets: tickets}
}

type createTicketReq struct {
	TicketTypeID uint64 `json:"ticketTypeId"`
}

// ListTypes handles GET /v1/tickets/types.  The catalog changes rarely,
// so the route sits behind the response cache.
func (h *TicketHandler) ListTypes(c echo.Context) error {
	types, err := h.Tickets.GetTicketTypes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, types)
}

// GetTicket handles GET /v1/tickets, returning the caller's ticket with
// its type.
func (h *TicketHandler) GetTicket(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ticket, err := h.Tickets.GetUserTicket(c.Request().Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotEnrolled), errors.Is(err, model.ErrNoTicket):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	return c.JSON(http.StatusOK, ticket)
}

// CreateTicket handles POST /v1/tickets.  A ticket is created RESERVED
// for the caller's enrollment; payment is settled out of band.
func (h *TicketHandler) CreateTicket(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createTicketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ticket, err := h.Tickets.CreateTicket(c.Request().Context(), userID, req.TicketTypeID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidTicketType):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, model.ErrNotEnrolled):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, model.ErrTicketExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	return c.JSON(http.StatusCreated, ticket)
}
