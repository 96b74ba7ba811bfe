package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected errors.ErrorCode
		ok       bool
	}{
		{"nil", nil, "", false},
		{"invalid input", fmt.Errorf("%w: bad date", services.ErrInvalidInput), errors.ValidationGeneral, true},
		{"card not found", services.ErrCardNotFound, errors.CardNotFound, true},
		{"no cards", services.ErrNoCards, errors.CardNoneAvailable, true},
		{"transaction not found", services.ErrTransactionNotFound, errors.TransactionNotFound, true},
		{"pending", services.ErrTransactionPending, errors.TransactionDuplicate, true},
		{"upstream", fmt.Errorf("cards: %w", services.ErrUpstreamUnavailable), errors.SystemServiceUnavailable, true},
		{"deadline", context.DeadlineExceeded, errors.SystemServiceUnavailable, true},
		{"canceled", context.Canceled, errors.SystemServiceUnavailable, true},
		{"unknown", stderrors.New("disk full"), "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := ServiceErrorCode(tc.err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, code)
		})
	}
}

func TestSendServiceError(t *testing.T) {
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/", "", uuid.Nil)
	require.NoError(t, SendServiceError(c, fmt.Errorf("%w: limit cannot be negative", services.ErrInvalidInput)))
	assertStatus(t, rec, http.StatusBadRequest, errors.ValidationGeneral)
	assert.Contains(t, rec.Body.String(), "limit cannot be negative")
	assert.Contains(t, rec.Body.String(), `"trace_id":"trace-test"`)

	c, rec = newJSONContext(e, http.MethodGet, "/", "", uuid.Nil)
	require.NoError(t, SendServiceError(c, stderrors.New("pq: relation does not exist")))
	assertStatus(t, rec, http.StatusInternalServerError, errors.SystemInternalError)
	assert.NotContains(t, rec.Body.String(), "relation")
}
