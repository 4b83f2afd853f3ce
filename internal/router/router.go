// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes.  Register, login,
// refresh and logout live under /v1/auth without a JWT; /v1/me is
// protected.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}
