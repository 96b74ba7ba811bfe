package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-rewards-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("nil map write")
	})

	var err error
	s.NotPanics(func() {
		err = handler(c)
	})
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_CommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("after write")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_DifferentPanicTypes() {
	testCases := []struct {
		name      string
		panicWith interface{}
	}{
		{"String panic", "string panic"},
		{"Int panic", 42},
		{"Error panic", errors.SystemInternalError},
		{"Nil panic", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler := PanicRecovery()(func(c echo.Context) error {
				panic(tc.panicWith)
			})

			s.NotPanics(func() {
				_ = handler(c)
			})
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
