package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getDateParam parses an optional date query parameter. Both date-only
// and RFC 3339 values are accepted.
func getDateParam(c echo.Context, name string) (*time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}

	if t, err := time.Parse("2006-01-02", param); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, param)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", param)
	}
	return &t, nil
}
