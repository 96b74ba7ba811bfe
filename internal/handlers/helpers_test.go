package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a request context; userID is set unless it is uuid.Nil
func newJSONContext(e *echo.Echo, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	if userID != uuid.Nil {
		c.Set("user_id", userID)
	}
	return c, rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func fakeCard(userID uuid.UUID, categories ...string) *models.Card {
	return &models.Card{
		ID:            uuid.New(),
		UserID:        userID,
		BankName:      gofakeit.Company(),
		CardName:      gofakeit.ProductName(),
		LastFour:      gofakeit.Numerify("####"),
		RewardType:    models.RewardTypePoints,
		RewardRate:    decimal.NewFromInt(int64(gofakeit.IntRange(1, 5))),
		Categories:    models.StringList(categories),
		PointsBalance: int64(gofakeit.IntRange(0, 50000)),
		CreatedAt:     gofakeit.PastDate(),
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, status int, code errors.ErrorCode) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	if code != "" {
		require.Equal(t, string(code), decodeErrorCode(t, rec))
	}
}
