package middleware

import (
	"regexp"

	"card-rewards-api/internal/handlers"
	"card-rewards-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = handlers.TraceIDContextKey
)

// client supplied ids end up in logs and error bodies
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID gives every request a trace id, reusing a well-formed X-Trace-ID
// from the caller. The id is echoed back and carried on the request context
// for the service logs.
func RequestID() echo.MiddlewareFunc {
	assign := echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		TargetHeader: TraceIDHeader,
		Generator:    uuid.NewString,
		RequestIDHandler: func(c echo.Context, traceID string) {
			c.Set(TraceIDContextKey, traceID)
			req := c.Request()
			c.SetRequest(req.WithContext(services.WithRequestID(req.Context(), traceID)))
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withID := assign(next)
		return func(c echo.Context) error {
			header := c.Request().Header
			if id := header.Get(TraceIDHeader); id != "" && !traceIDPattern.MatchString(id) {
				header.Del(TraceIDHeader)
			}
			return withID(c)
		}
	}
}

// GetTraceID returns the request's trace id, or "" outside RequestID
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
