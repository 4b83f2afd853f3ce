// Package handler implements the HTTP endpoints of the booking service.
// Handlers stay thin: they parse the request, call one service method
// and translate sentinel errors into status codes.  JWT authentication
// has already run by the time a protected handler executes.
package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user id stored in the echo
// context by the JWT middleware.  JSON numbers arrive as float64, so a
// few representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
