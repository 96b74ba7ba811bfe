package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"card-rewards-api/internal/models"
	"card-rewards-api/internal/repositories"
	"card-rewards-api/internal/rewards"
	"card-rewards-api/internal/tracing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	reportPatterns    = "spending_patterns"
	reportRecurring   = "recurring_bills"
	reportOptimize    = "optimize"
	reportExpiry      = "expiry_alerts"
	reportSchedule    = "expiry_schedule"
	reportRedemptions = "redemption_suggestions"
)

// insightsService implements InsightsServiceInterface. Every call reads fresh
// snapshots; nothing derived is stored.
type insightsService struct {
	loader       *snapshotLoader
	engine       *rewards.Engine
	defaultLimit int
	logger       RewardsLoggerInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time
}

// NewInsightsService creates the service that runs the rewards engine over a
// user's cards and transactions. defaultLimit caps the recurring bill listing
// when the caller does not pass a limit.
func NewInsightsService(
	cardRepo repositories.CardRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	engine *rewards.Engine,
	defaultLimit int,
	breaker CircuitBreakerInterface,
	logger RewardsLoggerInterface,
	metrics MetricsRecorderInterface,
) InsightsServiceInterface {
	return &insightsService{
		loader: &snapshotLoader{
			cardRepo:        cardRepo,
			transactionRepo: transactionRepo,
			guard:           newUpstreamGuard("rewards-store", breaker, logger, metrics),
		},
		engine:       engine,
		defaultLimit: defaultLimit,
		logger:       logger,
		metrics:      metrics,
		now:          time.Now,
	}
}

// Recommend picks the card earning the most points for the purchase
func (s *insightsService) Recommend(ctx context.Context, userID uuid.UUID, category string, amount decimal.Decimal) (*models.Recommendation, error) {
	ctx, span := tracing.StartSpan(ctx, "InsightsService.Recommend",
		attribute.String("user.id", userID.String()),
		attribute.String("category", category),
	)
	defer span.End()

	if !models.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, rewards.ErrInvalidAmount)
	}

	cards, err := s.loader.cards(ctx, userID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	rec, err := s.engine.Recommend(cards, category, amount)
	if err != nil {
		switch {
		case errors.Is(err, rewards.ErrNoCards):
			return nil, ErrNoCards
		case errors.Is(err, rewards.ErrInvalidAmount), errors.Is(err, rewards.ErrInvalidCategory):
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("failed to recommend card: %w", err)
	}

	span.SetAttributes(
		attribute.String("recommendation.card_id", rec.CardID.String()),
		attribute.Int64("recommendation.points", rec.PointsEarned),
	)
	s.logger.LogRecommendationGenerated(ctx, userID, rec)
	s.metrics.IncrementCounter("recommendation_generated", map[string]string{"category": category})

	return rec, nil
}

// AnalyzeSpending totals the user's spend per category and clusters it
func (s *insightsService) AnalyzeSpending(ctx context.Context, userID uuid.UUID) (*models.PatternsReport, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "InsightsService.AnalyzeSpending", attribute.String("user.id", userID.String()))
	defer span.End()

	transactions, err := s.loader.transactions(ctx, userID)
	if err != nil {
		s.reportFailed(reportPatterns, span, err)
		return nil, err
	}

	report := s.engine.Analyze(transactions)
	s.reportDone(ctx, reportPatterns, userID, len(report.CategoryTotals), start)

	return &report, nil
}

// DetectRecurringBills lists merchants charged at least minOccurrences times.
// limit <= 0 falls back to the configured default.
func (s *insightsService) DetectRecurringBills(ctx context.Context, userID uuid.UUID, minOccurrences, limit int) ([]models.RecurringBill, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "InsightsService.DetectRecurringBills", attribute.String("user.id", userID.String()))
	defer span.End()

	if minOccurrences < 0 {
		return nil, fmt.Errorf("%w: min_occurrences cannot be negative", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = s.defaultLimit
	}

	transactions, err := s.loader.transactions(ctx, userID)
	if err != nil {
		s.reportFailed(reportRecurring, span, err)
		return nil, err
	}

	bills := s.engine.DetectRecurring(transactions, minOccurrences)
	if limit > 0 && len(bills) > limit {
		bills = bills[:limit]
	}
	s.reportDone(ctx, reportRecurring, userID, len(bills), start)

	return bills, nil
}

// Optimize checks every recurring bill against the user's cards. All recurring
// bills are considered, not just the listing limit.
func (s *insightsService) Optimize(ctx context.Context, userID uuid.UUID) (*models.OptimizationReport, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "InsightsService.Optimize", attribute.String("user.id", userID.String()))
	defer span.End()

	transactions, err := s.loader.transactions(ctx, userID)
	if err != nil {
		s.reportFailed(reportOptimize, span, err)
		return nil, err
	}
	cards, err := s.loader.cards(ctx, userID)
	if err != nil {
		s.reportFailed(reportOptimize, span, err)
		return nil, err
	}

	bills := s.engine.DetectRecurring(transactions, 0)
	report := s.engine.Optimize(bills, cards)

	span.SetAttributes(attribute.Int64("optimize.total_annual_gain", report.TotalAnnualGain))
	s.reportDone(ctx, reportOptimize, userID, len(report.Optimizations), start)

	return &report, nil
}

// ExpiryAlerts flags balances expiring within thresholdDays
func (s *insightsService) ExpiryAlerts(ctx context.Context, userID uuid.UUID, thresholdDays int) ([]models.ExpiryAlert, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "InsightsService.ExpiryAlerts", attribute.String("user.id", userID.String()))
	defer span.End()

	if thresholdDays < 0 {
		return nil, fmt.Errorf("%w: threshold_days cannot be negative", ErrInvalidInput)
	}

	cards, err := s.loader.cards(ctx, userID)
	if err != nil {
		s.reportFailed(reportExpiry, span, err)
		return nil, err
	}

	alerts := s.engine.ExpiryAlerts(cards, s.now(), thresholdDays)

	var atRisk int64
	for _, alert := range alerts {
		atRisk += alert.PointsBalance
	}
	s.metrics.RecordGauge("expiring_points", float64(atRisk), nil)
	s.reportDone(ctx, reportExpiry, userID, len(alerts), start)

	return alerts, nil
}

// ExpirySchedule lists every card with an expiry date
func (s *insightsService) ExpirySchedule(ctx context.Context, userID uuid.UUID) ([]models.ExpiryAlert, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "InsightsService.ExpirySchedule", attribute.String("user.id", userID.String()))
	defer span.End()

	cards, err := s.loader.cards(ctx, userID)
	if err != nil {
		s.reportFailed(reportSchedule, span, err)
		return nil, err
	}

	schedule := s.engine.ExpirySchedule(cards, s.now())
	s.reportDone(ctx, reportSchedule, userID, len(schedule), start)

	return schedule, nil
}

// RedemptionSuggestions lists redemption options for every card holding points
func (s *insightsService) RedemptionSuggestions(ctx context.Context, userID uuid.UUID) ([]models.RedemptionSuggestion, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "InsightsService.RedemptionSuggestions", attribute.String("user.id", userID.String()))
	defer span.End()

	cards, err := s.loader.cards(ctx, userID)
	if err != nil {
		s.reportFailed(reportRedemptions, span, err)
		return nil, err
	}

	suggestions := s.engine.Redemptions(cards)
	s.reportDone(ctx, reportRedemptions, userID, len(suggestions), start)

	return suggestions, nil
}

func (s *insightsService) reportDone(ctx context.Context, report string, userID uuid.UUID, items int, start time.Time) {
	duration := time.Since(start)
	s.logger.LogReportGenerated(ctx, report, userID, items, duration.Milliseconds())
	s.metrics.IncrementCounter("report_generated", map[string]string{"report": report, "status": "success"})
	s.metrics.RecordProcessingTime(report, duration)
}

func (s *insightsService) reportFailed(report string, span trace.Span, err error) {
	tracing.RecordError(span, err)
	s.metrics.IncrementCounter("report_generated", map[string]string{"report": report, "status": "failed"})
}
