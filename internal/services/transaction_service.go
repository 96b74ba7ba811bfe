package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"card-rewards-api/internal/cache"
	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/repositories"
	"card-rewards-api/internal/rewards"
	"card-rewards-api/internal/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrTransactionPending = errors.New("transaction is still processing with this idempotency key")
)

const maxTransactionList = 500

// idempotencyRecord is what the cache holds under an idempotency key. It is
// pending from the first request until the transaction is stored.
type idempotencyRecord struct {
	Status        string    `json:"status"`
	TransactionID uuid.UUID `json:"transaction_id,omitempty"`
}

const (
	idempotencyPending  = "pending"
	idempotencyRecorded = "recorded"
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	cardRepo        repositories.CardRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryService CategoryServiceInterface
	engine          *rewards.Engine
	cache           cache.Cache
	idempotencyTTL  time.Duration
	guard           *upstreamGuard
	logger          RewardsLoggerInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a transaction service. Points are computed by
// engine; the cache holds idempotency keys for idempotencyTTL.
func NewTransactionService(
	cardRepo repositories.CardRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryService CategoryServiceInterface,
	engine *rewards.Engine,
	idempotencyCache cache.Cache,
	idempotencyTTL time.Duration,
	breaker CircuitBreakerInterface,
	logger RewardsLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		cardRepo:        cardRepo,
		transactionRepo: transactionRepo,
		categoryService: categoryService,
		engine:          engine,
		cache:           idempotencyCache,
		idempotencyTTL:  idempotencyTTL,
		guard:           newUpstreamGuard("rewards-store", breaker, logger, metrics),
		logger:          logger,
		metrics:         metrics,
	}
}

// CreateTransaction records a purchase and credits its points to the card
func (s *transactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest, idempotencyKey string) (*models.Transaction, bool, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "TransactionService.CreateTransaction", attribute.String("user.id", userID.String()))
	defer span.End()

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: card_id must be a UUID", ErrInvalidInput)
	}
	if !req.Amount.IsPositive() {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidInput, rewards.ErrInvalidAmount)
	}
	merchant := strings.TrimSpace(req.Merchant)
	if merchant == "" {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidInput, models.ErrInvalidMerchant)
	}

	date := time.Now().UTC()
	if req.Date != "" {
		if date, err = dto.ParseDate(req.Date); err != nil {
			return nil, false, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC3339", ErrInvalidInput)
		}
	}

	category, inferred, err := s.resolveCategory(req.Category, merchant, req.MCCCode)
	if err != nil {
		return nil, false, err
	}

	cacheKey := ""
	if idempotencyKey != "" {
		cacheKey = idempotencyCacheKey(userID, idempotencyKey)
		existing, err := s.reserveIdempotencyKey(ctx, userID, cacheKey)
		if err != nil {
			tracing.RecordError(span, err)
			return nil, false, err
		}
		if existing != nil {
			s.logger.LogIdempotentReplay(ctx, userID, idempotencyKey, existing.ID)
			s.metrics.IncrementCounter("transaction_replayed", nil)
			return existing, true, nil
		}
	}

	tx, err := s.record(ctx, userID, cardID, req, category, merchant, date)
	if err != nil {
		if cacheKey != "" {
			_ = s.cache.Delete(ctx, cacheKey)
		}
		tracing.RecordError(span, err)
		return nil, false, err
	}

	if cacheKey != "" {
		// the transaction exists either way; the key stays pending until its TTL
		record := idempotencyRecord{Status: idempotencyRecorded, TransactionID: tx.ID}
		if err := cache.SetJSON(ctx, s.cache, cacheKey, record, s.idempotencyTTL); err != nil {
			s.logger.LogIdempotencyRecordFailed(ctx, userID, idempotencyKey, tx.ID, err.Error())
		}
	}

	span.SetAttributes(
		attribute.String("transaction.id", tx.ID.String()),
		attribute.String("transaction.category", tx.Category),
		attribute.Int64("transaction.points", tx.PointsEarned),
	)

	s.logger.LogTransactionRecorded(ctx, tx, inferred)
	s.metrics.IncrementCounter("transaction_recorded", map[string]string{"category": tx.Category})
	s.metrics.RecordGauge("points_credited", float64(tx.PointsEarned), nil)
	s.metrics.RecordProcessingTime("transaction_recorded", time.Since(start))

	return tx, false, nil
}

func (s *transactionService) record(ctx context.Context, userID, cardID uuid.UUID, req *dto.CreateTransactionRequest, category, merchant string, date time.Time) (*models.Transaction, error) {
	var card *models.Card
	if err := s.guard.do(ctx, sourceCards, func(ctx context.Context) error {
		var err error
		card, err = s.cardRepo.GetByID(ctx, userID, cardID)
		return err
	}); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:       userID,
		CardID:       card.ID,
		Amount:       req.Amount,
		Category:     category,
		Merchant:     merchant,
		PointsEarned: s.engine.PointsForPurchase(*card, category, req.Amount),
		Date:         date,
	}

	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.guard.do(ctx, sourceTransactions, func(ctx context.Context) error {
		return s.transactionRepo.CreateWithPoints(ctx, tx)
	}); err != nil {
		return nil, err
	}

	return tx, nil
}

// resolveCategory normalizes the requested category or infers one from the
// MCC code and merchant
func (s *transactionService) resolveCategory(requested, merchant, mccCode string) (string, bool, error) {
	if strings.TrimSpace(requested) != "" {
		code, ok := models.NormalizeCategory(requested)
		if !ok {
			return "", false, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, requested)
		}
		return code, false, nil
	}

	suggestion := s.categoryService.Suggest(merchant, mccCode)
	s.metrics.IncrementCounter("category_inferred", map[string]string{"method": suggestion.Method})
	return suggestion.Category, true, nil
}

// reserveIdempotencyKey claims the key for this request. When the key was
// already used it returns the transaction recorded under it.
func (s *transactionService) reserveIdempotencyKey(ctx context.Context, userID uuid.UUID, cacheKey string) (*models.Transaction, error) {
	claimed, err := cache.SetJSONIfAbsent(ctx, s.cache, cacheKey, idempotencyRecord{Status: idempotencyPending}, s.idempotencyTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: idempotency cache: %w", ErrUpstreamUnavailable, err)
	}
	if claimed {
		return nil, nil
	}

	var record idempotencyRecord
	switch err := cache.GetJSON(ctx, s.cache, cacheKey, &record); {
	case errors.Is(err, cache.ErrNotFound):
		// expired or released between the two calls
		return nil, ErrTransactionPending
	case err != nil && !isDecodeError(err):
		return nil, fmt.Errorf("%w: idempotency cache: %w", ErrUpstreamUnavailable, err)
	}
	if record.Status != idempotencyRecorded || record.TransactionID == uuid.Nil {
		return nil, ErrTransactionPending
	}
	txID := record.TransactionID

	var existing *models.Transaction
	if err := s.guard.do(ctx, sourceTransactions, func(ctx context.Context) error {
		var err error
		existing, err = s.transactionRepo.GetByID(ctx, userID, txID)
		return err
	}); err != nil {
		return nil, err
	}

	return existing, nil
}

// ListTransactions returns the user's transactions, newest first
func (s *transactionService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	ctx, span := tracing.StartSpan(ctx, "TransactionService.ListTransactions", attribute.String("user.id", filters.UserID.String()))
	defer span.End()

	if filters.Limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if filters.Limit > maxTransactionList {
		filters.Limit = maxTransactionList
	}
	if filters.Category != "" {
		code, ok := models.NormalizeCategory(filters.Category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, filters.Category)
		}
		filters.Category = code
	}

	var transactions []models.Transaction
	if err := s.guard.do(ctx, sourceTransactions, func(ctx context.Context) error {
		var err error
		transactions, err = s.transactionRepo.List(ctx, filters)
		return err
	}); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	return transactions, nil
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func idempotencyCacheKey(userID uuid.UUID, key string) string {
	return fmt.Sprintf("idempotency:transactions:%s:%s", userID, key)
}
