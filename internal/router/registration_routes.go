package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
)

// RegisterRegistration registers the enrollment and ticket endpoints
// under /v1.  The ticket type catalog changes rarely, so its route
// additionally sits behind the Redis response cache when one is
// configured.
func RegisterRegistration(e *echo.Echo, enrollments *handler.EnrollmentHandler, tickets *handler.TicketHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	g.GET("/enrollments", enrollments.GetEnrollment)
	g.POST("/enrollments", enrollments.UpsertEnrollment)

	if cache != nil {
		g.GET("/tickets/types", tickets.ListTypes, cache)
	} else {
		g.GET("/tickets/types", tickets.ListTypes)
	}
	g.GET("/tickets", tickets.GetTicket)
	g.POST("/tickets", tickets.CreateTicket)
}
