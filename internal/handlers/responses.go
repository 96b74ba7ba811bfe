package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and business errors),
// SendServiceError (errors coming back from the service layer) and
// SendSystemError (anything whose details must stay internal).

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError translates a service layer error into its catalogue code.
// Unknown errors become a generic system error.
func SendServiceError(c echo.Context, err error) error {
	code, ok := ServiceErrorCode(err)
	if !ok {
		return SendSystemError(c, err)
	}
	if code == errors.ValidationGeneral {
		return SendError(c, code, errors.WithDetails(err.Error()))
	}
	return SendError(c, code)
}

// ServiceErrorCode maps the service sentinels onto error codes
func ServiceErrorCode(err error) (errors.ErrorCode, bool) {
	switch {
	case err == nil:
		return "", false
	case stderrors.Is(err, services.ErrInvalidInput):
		return errors.ValidationGeneral, true
	case stderrors.Is(err, services.ErrCardNotFound):
		return errors.CardNotFound, true
	case stderrors.Is(err, services.ErrNoCards):
		return errors.CardNoneAvailable, true
	case stderrors.Is(err, services.ErrTransactionNotFound):
		return errors.TransactionNotFound, true
	case stderrors.Is(err, services.ErrTransactionPending):
		return errors.TransactionDuplicate, true
	case stderrors.Is(err, services.ErrUpstreamUnavailable),
		stderrors.Is(err, context.DeadlineExceeded),
		stderrors.Is(err, context.Canceled):
		return errors.SystemServiceUnavailable, true
	default:
		return "", false
	}
}
