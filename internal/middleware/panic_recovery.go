package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_recovered_total",
		Help: "Total number of handler panics recovered, by route",
	},
	[]string{"route"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				panicsTotal.WithLabelValues(c.Path()).Inc()

				if c.Response().Committed {
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
