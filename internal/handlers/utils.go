package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the user id the auth middleware stored
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

// getIntParam parses an optional integer query parameter
func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}

func getBoolParam(c echo.Context, name string) (bool, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(param)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return value, nil
}

func parseCardID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// sendValidationError writes the validator's field errors under code
func sendValidationError(c echo.Context, err error, code errors.ErrorCode) error {
	details, ok := validation.FieldErrors(err)
	if !ok {
		details = []string{err.Error()}
	}
	return SendError(c, code, errors.WithDetails(details...))
}
