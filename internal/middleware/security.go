package middleware

import (
	"github.com/labstack/echo/v4"
)

// card and spending data must never be cached by intermediaries
var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "1; mode=block",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":           "no-referrer",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=(), payment=()",
	"Cache-Control":             "no-store",
	"Pragma":                    "no-cache",
}

// SecurityHeaders adds the API's fixed security headers to every response
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for name, value := range securityHeaders {
				h.Set(name, value)
			}
			return next(c)
		}
	}
}
