package services

import (
	"context"
	"errors"
	"fmt"

	"card-rewards-api/internal/models"
	"card-rewards-api/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrCardNotFound        = errors.New("card not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNoCards             = errors.New("no cards available")
	ErrUpstreamUnavailable = errors.New("upstream data source unavailable")
)

const (
	sourceCards        = "cards"
	sourceTransactions = "transactions"
)

// upstreamGuard wraps store calls with a circuit breaker. Store failures come
// back as ErrUpstreamUnavailable; missing records are not failures.
type upstreamGuard struct {
	name    string
	breaker CircuitBreakerInterface
	logger  RewardsLoggerInterface
	metrics MetricsRecorderInterface
}

func newUpstreamGuard(name string, breaker CircuitBreakerInterface, logger RewardsLoggerInterface, metrics MetricsRecorderInterface) *upstreamGuard {
	if breaker == nil {
		breaker = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}
	return &upstreamGuard{
		name:    name,
		breaker: breaker,
		logger:  logger,
		metrics: metrics,
	}
}

func (g *upstreamGuard) do(ctx context.Context, source string, fn func(context.Context) error) error {
	if g.breaker.IsOpen() {
		return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, source, ErrCircuitBreakerOpen)
	}

	err := fn(ctx)
	if err == nil {
		g.breaker.RecordSuccess()
		return nil
	}

	switch {
	case errors.Is(err, repositories.ErrCardNotFound):
		g.breaker.RecordSuccess()
		return ErrCardNotFound
	case errors.Is(err, repositories.ErrTransactionNotFound):
		g.breaker.RecordSuccess()
		return ErrTransactionNotFound
	case errors.Is(err, context.Canceled):
		return err
	}

	before := g.breaker.GetState()
	g.breaker.RecordFailure()
	after := g.breaker.GetState()

	if g.logger != nil {
		g.logger.LogUpstreamFailure(ctx, source, err.Error())
		if before != after {
			g.logger.LogCircuitBreakerStateChange(ctx, g.name, before.String(), after.String())
		}
	}
	if g.metrics != nil {
		g.metrics.IncrementCounter("upstream_failure", map[string]string{"source": source})
		g.metrics.RecordGauge("circuit_breaker_state", float64(after), map[string]string{"service": g.name})
	}

	return fmt.Errorf("%w: failed to load %s: %w", ErrUpstreamUnavailable, source, err)
}

// snapshotLoader reads a user's cards and transactions through the guard
type snapshotLoader struct {
	cardRepo        repositories.CardRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	guard           *upstreamGuard
}

func (l *snapshotLoader) cards(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	var cards []models.Card
	err := l.guard.do(ctx, sourceCards, func(ctx context.Context) error {
		var err error
		cards, err = l.cardRepo.ListByUser(ctx, userID)
		return err
	})
	return cards, err
}

func (l *snapshotLoader) transactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := l.guard.do(ctx, sourceTransactions, func(ctx context.Context) error {
		var err error
		transactions, err = l.transactionRepo.List(ctx, models.TransactionFilters{UserID: userID})
		return err
	})
	return transactions, err
}
