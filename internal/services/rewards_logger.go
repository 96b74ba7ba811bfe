package services

import (
	"context"
	"log/slog"
	"time"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores the request id so service logs can be correlated with access logs
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RewardsLogger provides structured logging for wallet and insight operations
type RewardsLogger struct {
	logger *slog.Logger
}

// NewRewardsLogger creates a new rewards logger
func NewRewardsLogger(logger *slog.Logger) RewardsLoggerInterface {
	return &RewardsLogger{
		logger: logger,
	}
}

// LogCardCreated logs a card being added to a wallet
func (rl *RewardsLogger) LogCardCreated(ctx context.Context, userID, cardID uuid.UUID, bankName, cardName string) {
	rl.logger.InfoContext(ctx, "card created",
		slog.String("event_type", "card_created"),
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.String("bank_name", bankName),
		slog.String("card_name", cardName),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogCardUpdated logs the fields changed on a card
func (rl *RewardsLogger) LogCardUpdated(ctx context.Context, userID, cardID uuid.UUID, updatedFields []string) {
	rl.logger.InfoContext(ctx, "card updated",
		slog.String("event_type", "card_updated"),
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Any("updated_fields", updatedFields),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RewardsLogger) LogCardDeleted(ctx context.Context, userID, cardID uuid.UUID) {
	rl.logger.InfoContext(ctx, "card deleted",
		slog.String("event_type", "card_deleted"),
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogTransactionRecorded logs a purchase and the points it earned. The merchant
// is logged but the amount is not.
func (rl *RewardsLogger) LogTransactionRecorded(ctx context.Context, tx *models.Transaction, categoryInferred bool) {
	rl.logger.InfoContext(ctx, "transaction recorded",
		slog.String("event_type", "transaction_recorded"),
		slog.String("user_id", tx.UserID.String()),
		slog.String("card_id", tx.CardID.String()),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("merchant", tx.Merchant),
		slog.String("category", tx.Category),
		slog.Bool("category_inferred", categoryInferred),
		slog.Int64("points", tx.PointsEarned),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RewardsLogger) LogIdempotentReplay(ctx context.Context, userID uuid.UUID, idempotencyKey string, transactionID uuid.UUID) {
	rl.logger.InfoContext(ctx, "idempotent transaction replayed",
		slog.String("event_type", "transaction_replayed"),
		slog.String("user_id", userID.String()),
		slog.String("idempotency_key", idempotencyKey),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogIdempotencyRecordFailed logs a recorded transaction whose idempotency key
// could not be marked as recorded
func (rl *RewardsLogger) LogIdempotencyRecordFailed(ctx context.Context, userID uuid.UUID, idempotencyKey string, transactionID uuid.UUID, errorMsg string) {
	rl.logger.ErrorContext(ctx, "failed to store idempotency record",
		slog.String("event_type", "idempotency_record_failed"),
		slog.String("user_id", userID.String()),
		slog.String("idempotency_key", idempotencyKey),
		slog.String("transaction_id", transactionID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogRecommendationGenerated logs the winning card for a purchase
func (rl *RewardsLogger) LogRecommendationGenerated(ctx context.Context, userID uuid.UUID, rec *models.Recommendation) {
	rl.logger.InfoContext(ctx, "recommendation generated",
		slog.String("event_type", "recommendation_generated"),
		slog.String("user_id", userID.String()),
		slog.String("category", rec.Category),
		slog.String("card_id", rec.CardID.String()),
		slog.Int64("points_earned", rec.PointsEarned),
		slog.Int("alternatives", len(rec.Alternatives)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogReportGenerated logs the completion of an insight report
func (rl *RewardsLogger) LogReportGenerated(ctx context.Context, report string, userID uuid.UUID, items int, durationMs int64) {
	rl.logger.InfoContext(ctx, "report generated",
		slog.String("event_type", "report_generated"),
		slog.String("report", report),
		slog.String("user_id", userID.String()),
		slog.Int("items", items),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogUpstreamFailure logs a failed read from the card or transaction store
func (rl *RewardsLogger) LogUpstreamFailure(ctx context.Context, source string, errorMsg string) {
	rl.logger.ErrorContext(ctx, "upstream failure",
		slog.String("event_type", "upstream_failure"),
		slog.String("source", source),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RewardsLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	rl.logger.WarnContext(ctx, "circuit breaker state changed",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// RequestIDFromContext returns the request id stored by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
