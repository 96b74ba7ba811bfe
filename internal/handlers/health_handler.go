package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"card-rewards-api/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// Ping calls f(ctx)
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthCheckHandler reports whether the service and its stores are reachable
type HealthCheckHandler struct {
	checks map[string]Pinger
	now    func() time.Time
}

// NewHealthCheckHandler creates a health check over the named dependencies
func NewHealthCheckHandler(checks map[string]Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{checks: checks, now: time.Now}
}

// HealthCheck pings every dependency
// @Summary Health check
// @Description Check API, database and cache connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,checks=object} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - A dependency is unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	results := make(map[string]string, len(h.checks))
	var failed []string
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			results[name] = "unavailable"
			failed = append(failed, name+" connection failed")
			continue
		}
		results[name] = "ok"
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails(failed...))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   h.now().UTC().Format(time.RFC3339),
		"checks": results,
	})
}
