package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
)

// RegisterBooking registers the hotel browse and booking endpoints
// under /v1.  All routes require a valid JWT; eligibility is enforced
// by the service layer, not here.
func RegisterBooking(e *echo.Echo, hotels *handler.HotelHandler, bookings *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	g.GET("/hotels", hotels.ListHotels)
	g.GET("/hotels/:hotelId", hotels.GetHotel)

	g.GET("/booking", bookings.GetBooking)
	g.POST("/booking", bookings.CreateBooking)
	g.PUT("/booking/:bookingId", bookings.ChangeBooking)
}
