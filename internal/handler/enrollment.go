package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/service"
)

// EnrollmentService is the slice of the service layer the enrollment
// endpoints consume.
type EnrollmentService interface {
	GetEnrollment(ctx context.Context, userID uint64) (*service.EnrollmentView, error)
	UpsertEnrollment(ctx context.Context, in service.UpsertEnrollmentInput) error
}

// EnrollmentHandler exposes the enrollment read and upsert endpoints.
type EnrollmentHandler struct {
	Enrollments EnrollmentService
}

// NewEnrollmentHandler constructs an EnrollmentHandler.
func NewEnrollmentHandler(enrollments EnrollmentService) *EnrollmentHandler {
	if enrollments == nil {
		panic("nil service passed to NewEnrollmentHandler")
	}
	return &EnrollmentHandler{Enrollments: enrollments}
}

type upsertEnrollmentReq struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
	Address  struct {
		PostalCode string  `json:"postalCode"`
		Street     string  `json:"street"`
		Number     string  `json:"number"`
		District   string  `json:"district"`
		Detail     *string `json:"detail"`
		City       string  `json:"city"`
		State      string  `json:"state"`
	} `json:"address"`
}

// GetEnrollment handles GET /v1/enrollments.
func (h *EnrollmentHandler) GetEnrollment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	view, err := h.Enrollments.GetEnrollment(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrEnrollmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, view)
}

// UpsertEnrollment handles POST /v1/enrollments, creating or replacing
// the caller's enrollment and address in one call.
func (h *EnrollmentHandler) UpsertEnrollment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req upsertEnrollmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Document) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and document are required"})
	}
	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthday must be YYYY-MM-DD"})
	}

	in := service.UpsertEnrollmentInput{
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Document: strings.TrimSpace(req.Document),
		Birthday: birthday,
		Phone:    strings.TrimSpace(req.Phone),
		Address: service.AddressView{
			PostalCode: req.Address.PostalCode,
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			District:   req.Address.District,
			Detail:     req.Address.Detail,
			City:       req.Address.City,
			State:      req.Address.State,
		},
	}
	if err := h.Enrollments.UpsertEnrollment(c.Request().Context(), in); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save enrollment failed"})
	}
	return c.NoContent(http.StatusCreated)
}
