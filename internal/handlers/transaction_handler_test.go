package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/services"
	"card-rewards-api/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	transactionService *service_mocks.MockTransactionServiceInterface
	handler            *TransactionHandler
	e                  *echo.Echo
	userID             uuid.UUID
	cardID             uuid.UUID
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.transactionService)
	s.e = newTestEcho()
	s.userID = uuid.New()
	s.cardID = uuid.New()
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) recorded(merchant, category string, amount string, points int64) *models.Transaction {
	return &models.Transaction{
		ID:           uuid.New(),
		UserID:       s.userID,
		CardID:       s.cardID,
		Amount:       decimal.RequireFromString(amount),
		Category:     category,
		Merchant:     merchant,
		PointsEarned: points,
		Date:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Created() {
	merchant := gofakeit.Company()
	tx := s.recorded(merchant, models.CategoryDining, "1000", 3000)
	body := fmt.Sprintf(`{"card_id":%q,"amount":"1000","category":"dining","merchant":%q,"date":"2025-05-20"}`, s.cardID, merchant)

	s.transactionService.EXPECT().
		CreateTransaction(gomock.Any(), s.userID, gomock.Any(), "").
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *dto.CreateTransactionRequest, _ string) (*models.Transaction, bool, error) {
			s.Equal(s.cardID.String(), req.CardID)
			s.Equal("dining", req.Category)
			s.True(req.Amount.Equal(decimal.NewFromInt(1000)))
			return tx, false, nil
		})

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusCreated, rec.Code)
	s.Empty(rec.Header().Get(IdempotentReplayHeader))
	var resp dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(3000), resp.PointsEarned)
	s.Equal(models.CategoryDining, resp.Category)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_IdempotentReplay() {
	tx := s.recorded("Netflix", models.CategoryEntertainment, "649", 649)
	body := fmt.Sprintf(`{"card_id":%q,"amount":649,"merchant":"Netflix","mcc_code":"4899"}`, s.cardID)

	s.transactionService.EXPECT().
		CreateTransaction(gomock.Any(), s.userID, gomock.Any(), "order-42").
		Return(tx, true, nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)
	c.Request().Header.Set(IdempotencyKeyHeader, " order-42 ")
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("true", rec.Header().Get(IdempotentReplayHeader))
	s.Contains(rec.Body.String(), tx.ID.String())
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_PendingKey() {
	body := fmt.Sprintf(`{"card_id":%q,"amount":"10","merchant":"Swiggy"}`, s.cardID)
	s.transactionService.EXPECT().
		CreateTransaction(gomock.Any(), s.userID, gomock.Any(), "dup").
		Return(nil, false, services.ErrTransactionPending)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)
	c.Request().Header.Set(IdempotencyKeyHeader, "dup")
	s.NoError(s.handler.CreateTransaction(c))

	assertStatus(s.T(), rec, http.StatusConflict, errors.TransactionDuplicate)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_InvalidAmount() {
	for _, amount := range []string{`"0"`, `"-5"`, `"10.005"`} {
		s.Run(amount, func() {
			body := fmt.Sprintf(`{"card_id":%q,"amount":%s,"merchant":"Swiggy"}`, s.cardID, amount)
			c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)
			s.NoError(s.handler.CreateTransaction(c))
			assertStatus(s.T(), rec, http.StatusBadRequest, errors.TransactionInvalidAmount)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrors() {
	tests := []struct {
		name string
		body string
	}{
		{"missing card", `{"amount":"10","merchant":"Swiggy"}`},
		{"bad card id", `{"card_id":"nope","amount":"10","merchant":"Swiggy"}`},
		{"blank merchant", fmt.Sprintf(`{"card_id":%q,"amount":"10","merchant":"   "}`, s.cardID)},
		{"unknown category", fmt.Sprintf(`{"card_id":%q,"amount":"10","merchant":"Swiggy","category":"PETS"}`, s.cardID)},
		{"bad mcc", fmt.Sprintf(`{"card_id":%q,"amount":"10","merchant":"Swiggy","mcc_code":"58a2"}`, s.cardID)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", tt.body, s.userID)
			s.NoError(s.handler.CreateTransaction(c))
			assertStatus(s.T(), rec, http.StatusBadRequest, errors.ValidationGeneral)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_IdempotencyKeyTooLong() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", `{}`, s.userID)
	c.Request().Header.Set(IdempotencyKeyHeader, strings.Repeat("k", 256))

	s.NoError(s.handler.CreateTransaction(c))
	assertStatus(s.T(), rec, http.StatusBadRequest, errors.ValidationOutOfRange)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_CardNotFound() {
	body := fmt.Sprintf(`{"card_id":%q,"amount":"10","merchant":"Swiggy"}`, s.cardID)
	s.transactionService.EXPECT().
		CreateTransaction(gomock.Any(), s.userID, gomock.Any(), "").
		Return(nil, false, services.ErrCardNotFound)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/transactions", body, s.userID)
	s.NoError(s.handler.CreateTransaction(c))
	assertStatus(s.T(), rec, http.StatusNotFound, errors.CardNotFound)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Filters() {
	txs := []models.Transaction{*s.recorded("Swiggy", models.CategoryDining, "250", 500)}

	s.transactionService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filters models.TransactionFilters) ([]models.Transaction, error) {
			s.Equal(s.userID, filters.UserID)
			s.Require().NotNil(filters.CardID)
			s.Equal(s.cardID, *filters.CardID)
			s.Equal("Food & Dining", filters.Category)
			s.Equal(25, filters.Limit)
			s.Require().NotNil(filters.StartDate)
			s.Require().NotNil(filters.EndDate)
			s.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			s.Equal(time.Date(2025, 5, 31, 23, 59, 59, 999999999, time.UTC), *filters.EndDate)
			return txs, nil
		})

	target := fmt.Sprintf("/api/v1/transactions?card_id=%s&category=Food+%%26+Dining&limit=25&start_date=2025-05-01&end_date=2025-05-31", s.cardID)
	c, rec := newJSONContext(s.e, http.MethodGet, target, "", s.userID)
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_DefaultLimit() {
	s.transactionService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filters models.TransactionFilters) ([]models.Transaction, error) {
			s.Equal(defaultTransactionLimit, filters.Limit)
			s.Nil(filters.CardID)
			return nil, nil
		})

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/transactions", "", s.userID)
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"transactions":[],"total":0}`, rec.Body.String())
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidFilters() {
	targets := []string{
		"/api/v1/transactions?card_id=abc",
		"/api/v1/transactions?limit=ten",
		"/api/v1/transactions?start_date=05-01-2025",
		"/api/v1/transactions?start_date=2025-06-01&end_date=2025-05-01",
	}

	for _, target := range targets {
		s.Run(target, func() {
			c, rec := newJSONContext(s.e, http.MethodGet, target, "", s.userID)
			s.NoError(s.handler.ListTransactions(c))
			assertStatus(s.T(), rec, http.StatusBadRequest, errors.ValidationGeneral)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_UnknownCategory() {
	s.transactionService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: unknown category %q", services.ErrInvalidInput, "PETS"))

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/transactions?category=PETS", "", s.userID)
	s.NoError(s.handler.ListTransactions(c))
	assertStatus(s.T(), rec, http.StatusBadRequest, errors.ValidationGeneral)
}
