package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "card-rewards-api/internal/errors"
	"card-rewards-api/internal/services"
	"card-rewards-api/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	logs     *bytes.Buffer
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.logs = &bytes.Buffer{}
	s.handler = NewHTTPErrorHandler(slog.New(slog.NewJSONHandler(s.logs, nil)), s.registry)
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.handler(err, c)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_EchoHTTPError() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), "test-trace-id")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.SystemRouteNotFound), body.Error.Code)
	s.Equal("Resource not found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_GenericError() {
	rec, body := s.handle(errors.New("generic error"), "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apperrors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "generic error")
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_LogsAndCounts() {
	s.handle(errors.New("db exploded"), "trace-a")
	s.handle(services.ErrCardNotFound, "trace-b")

	s.Contains(s.logs.String(), `"level":"ERROR"`)
	s.Contains(s.logs.String(), `"level":"WARN"`)
	s.Contains(s.logs.String(), "db exploded")
	series, err := testutil.GatherAndCount(s.registry, "rewards_api_errors_total")
	s.Require().NoError(err)
	s.Equal(2, series)
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_NoTraceID() {
	_, body := s.handle(errors.New("test error"), "")

	s.Equal("unknown", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   apperrors.ErrorCode
	}{
		{"invalid input", fmt.Errorf("%w: amount must be positive", services.ErrInvalidInput), http.StatusBadRequest, apperrors.ValidationGeneral},
		{"card not found", services.ErrCardNotFound, http.StatusNotFound, apperrors.CardNotFound},
		{"no cards", services.ErrNoCards, http.StatusNotFound, apperrors.CardNoneAvailable},
		{"pending idempotency key", services.ErrTransactionPending, http.StatusConflict, apperrors.TransactionDuplicate},
		{"upstream unavailable", fmt.Errorf("%w: failed to load cards: boom", services.ErrUpstreamUnavailable), http.StatusServiceUnavailable, apperrors.SystemServiceUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, body := s.handle(tc.err, "trace")

			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.code), body.Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_ValidationErrors() {
	type payload struct {
		Category string `json:"category" validate:"required,category"`
		LastFour string `json:"last_four" validate:"omitempty,last_four"`
	}

	err := validation.GetValidator().GetValidate().Struct(payload{Category: "PETS", LastFour: "12a4"})
	s.Require().Error(err)

	rec, body := s.handle(err, "trace")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), body.Error.Code)
	s.Contains(body.Error.Details, "category: must be a supported spending category")
	s.Contains(body.Error.Details, "last_four: must be exactly 4 digits")
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_CommittedResponse() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_EchoStatuses() {
	testCases := []struct {
		status       int
		expectedCode apperrors.ErrorCode
	}{
		{http.StatusBadRequest, apperrors.ValidationGeneral},
		{http.StatusUnauthorized, apperrors.AuthMissingToken},
		{http.StatusNotFound, apperrors.SystemRouteNotFound},
		{http.StatusMethodNotAllowed, apperrors.ValidationGeneral},
		{http.StatusRequestEntityTooLarge, apperrors.ValidationGeneral},
		{http.StatusTooManyRequests, apperrors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, apperrors.SystemInternalError},
		{http.StatusServiceUnavailable, apperrors.SystemServiceUnavailable},
		{http.StatusTeapot, apperrors.SystemUnexpectedError},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec, body := s.handle(echo.NewHTTPError(tc.status), "test-trace-id")

			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.expectedCode), body.Error.Code)
		})
	}
}
