package middleware

import (
	"net/http"

	"card-rewards-api/internal/tracing"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts a server span per request, continuing any incoming W3C trace
// context, and hands the span's context down to the handlers
func Tracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			propagator := otel.GetTextMapPropagator()

			ctx := propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))

			route := c.Path()
			if route == "" {
				route = req.URL.Path
			}

			ctx, span := tracing.Tracer().Start(ctx, req.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", req.Method),
					attribute.String("http.route", route),
					attribute.String("http.target", req.URL.RequestURI()),
					attribute.String("http.user_agent", req.UserAgent()),
					attribute.String("net.peer.ip", c.RealIP()),
				),
			)
			defer span.End()

			if traceID := GetTraceID(c); traceID != "" {
				span.SetAttributes(attribute.String("request.trace_id", traceID))
			}

			propagator.Inject(ctx, propagation.HeaderCarrier(c.Response().Header()))
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				tracing.RecordError(span, err)
			}

			status := c.Response().Status
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			return err
		}
	}
}
