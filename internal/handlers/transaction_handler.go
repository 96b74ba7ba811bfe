package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/services"
	"card-rewards-api/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// IdempotencyKeyHeader lets clients retry a purchase without double-crediting points
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotentReplayHeader marks a response served from an earlier request
	IdempotentReplayHeader = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 255
	defaultTransactionLimit = 100
)

// TransactionHandler handles purchase logging and history
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction logs a purchase and credits its points to the card
// @Summary Log a purchase
// @Description Category may be omitted; it is then inferred from mcc_code and merchant.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Retry key"
// @Param request body dto.CreateTransactionRequest true "Purchase"
// @Success 201 {object} dto.TransactionResponse
// @Success 200 {object} dto.TransactionResponse "Replay of an earlier request with the same Idempotency-Key"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid amount or VALIDATION_001 - Invalid purchase"
// @Failure 404 {object} errors.ErrorResponse "CARD_001 - Card not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Same Idempotency-Key still processing"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store unavailable"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	idempotencyKey := strings.TrimSpace(c.Request().Header.Get(IdempotencyKeyHeader))
	if len(idempotencyKey) > maxIdempotencyKeyLength {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Idempotency-Key must be at most 255 characters"))
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Request body must be valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		if validation.HasFieldError(err, "amount") {
			return sendValidationError(c, err, errors.TransactionInvalidAmount)
		}
		return sendValidationError(c, err, errors.ValidationGeneral)
	}

	tx, replayed, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, &req, idempotencyKey)
	if err != nil {
		if stderrors.Is(err, services.ErrTransactionPending) {
			return SendError(c, errors.TransactionDuplicate, errors.WithDetails("A request with this Idempotency-Key is still being processed"))
		}
		return SendServiceError(c, err)
	}

	if replayed {
		c.Response().Header().Set(IdempotentReplayHeader, "true")
		return c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
	}
	return c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// ListTransactions returns the user's purchases, newest first
// @Summary List purchases
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param category query string false "Category code or label"
// @Param card_id query string false "Card ID (UUID)"
// @Param start_date query string false "Earliest date (YYYY-MM-DD)"
// @Param end_date query string false "Latest date (YYYY-MM-DD)"
// @Param limit query int false "Maximum results (max 500)" default(100)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filters"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	filters.UserID = userID

	transactions, err := h.transactionService.ListTransactions(c.Request().Context(), filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		Total:        len(transactions),
	})
}

func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	if raw := strings.TrimSpace(c.QueryParam("card_id")); raw != "" {
		cardID, err := uuid.Parse(raw)
		if err != nil {
			return filters, stderrors.New("card_id must be a valid UUID")
		}
		filters.CardID = &cardID
	}

	filters.Category = strings.TrimSpace(c.QueryParam("category"))

	start, err := parseDateParam(c, "start_date")
	if err != nil {
		return filters, err
	}
	end, err := parseDateParam(c, "end_date")
	if err != nil {
		return filters, err
	}
	if end != nil {
		// the whole end day is included
		inclusive := end.Add(24*time.Hour - time.Nanosecond)
		end = &inclusive
	}
	if start != nil && end != nil && start.After(*end) {
		return filters, stderrors.New("start_date must not be after end_date")
	}
	filters.StartDate = start
	filters.EndDate = end

	limit, err := getIntParam(c, "limit", defaultTransactionLimit)
	if err != nil {
		return filters, err
	}
	filters.Limit = limit

	return filters, nil
}

func parseDateParam(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, stderrors.New(name + " must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}
