package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/handlers"
	"card-rewards-api/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// echo's own failures (routing, body limit, bind) by status
var echoStatusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// NewHTTPErrorHandler renders every error that escapes a handler as the
// standard envelope. 5xx are logged at error, everything else at warn.
func NewHTTPErrorHandler(logger *slog.Logger, reg prometheus.Registerer) echo.HTTPErrorHandler {
	errorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rewards_api_errors_total",
			Help: "Error responses by code, route and status",
		},
		[]string{"code", "route", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		response, status := classify(err, traceID)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "request failed",
			"trace_id", traceID,
			"code", response.Error.Code,
			"status", status,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err.Error(),
		)
		errorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

		if sendErr := c.JSON(status, response); sendErr != nil {
			logger.Error("failed to write error response", "trace_id", traceID, "error", sendErr)
		}
	}
}

// classify turns err into an envelope and the status to send it with.
// echo errors keep their own status.
func classify(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code, ok := echoStatusCodes[echoErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(echoErr.Message))), echoErr.Code
	}

	var response *errors.ErrorResponse
	if details, ok := validation.FieldErrors(err); ok {
		response = errors.NewValidationErrorFromList(details, traceID)
	} else if code, ok := handlers.ServiceErrorCode(err); ok {
		response = errors.NewErrorResponse(code, traceID)
	} else {
		response, _ = errors.WrapSystemError(err, traceID)
	}
	return response, response.GetHTTPStatus()
}
