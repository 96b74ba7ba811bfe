package services

import (
	"context"
	"time"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardServiceInterface manages the cards in a user's wallet
type CardServiceInterface interface {
	CreateCard(ctx context.Context, userID uuid.UUID, req *dto.CreateCardRequest) (*models.Card, error)
	GetCard(ctx context.Context, userID, cardID uuid.UUID) (*models.Card, error)
	ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	UpdateCard(ctx context.Context, userID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
}

// TransactionServiceInterface records purchases and lists them
type TransactionServiceInterface interface {
	// CreateTransaction records a purchase and credits its points to the card.
	// A repeated idempotency key returns the originally recorded transaction
	// and replayed=true.
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest, idempotencyKey string) (tx *models.Transaction, replayed bool, err error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
}

// InsightsServiceInterface runs the rewards computations over a user's data
type InsightsServiceInterface interface {
	Recommend(ctx context.Context, userID uuid.UUID, category string, amount decimal.Decimal) (*models.Recommendation, error)
	AnalyzeSpending(ctx context.Context, userID uuid.UUID) (*models.PatternsReport, error)
	DetectRecurringBills(ctx context.Context, userID uuid.UUID, minOccurrences, limit int) ([]models.RecurringBill, error)
	Optimize(ctx context.Context, userID uuid.UUID) (*models.OptimizationReport, error)
	ExpiryAlerts(ctx context.Context, userID uuid.UUID, thresholdDays int) ([]models.ExpiryAlert, error)
	ExpirySchedule(ctx context.Context, userID uuid.UUID) ([]models.ExpiryAlert, error)
	RedemptionSuggestions(ctx context.Context, userID uuid.UUID) ([]models.RedemptionSuggestion, error)
}

// OfferServiceInterface serves the card offer catalogue
type OfferServiceInterface interface {
	ListOffers(coBrandedOnly bool) []models.CardOffer
	RecommendOffers(ctx context.Context, userID uuid.UUID, limit int) ([]models.CardOffer, map[string]decimal.Decimal, error)
}

// CategoryServiceInterface defines the interface for merchant categorization
type CategoryServiceInterface interface {
	// CategoryFromMCC returns the category for a given MCC code
	CategoryFromMCC(mccCode string) string

	// CategorizeByMerchant categorizes based on merchant name
	CategorizeByMerchant(merchantName string) (string, float64)

	// FuzzyMatchMerchant performs fuzzy string matching on merchant names
	FuzzyMatchMerchant(input string) (string, float64)

	// Suggest picks the best category for a merchant, using the MCC code when known
	Suggest(merchantName, mccCode string) models.CategorySuggestion
}

// DemoDataServiceInterface generates purchase history for development accounts
type DemoDataServiceInterface interface {
	// SeedTransactions records months of generated purchases on the user's cards
	SeedTransactions(ctx context.Context, userID uuid.UUID, months int) (*models.SeedSummary, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	IssueAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type RewardsLoggerInterface interface {
	LogCardCreated(ctx context.Context, userID, cardID uuid.UUID, bankName, cardName string)
	LogCardUpdated(ctx context.Context, userID, cardID uuid.UUID, updatedFields []string)
	LogCardDeleted(ctx context.Context, userID, cardID uuid.UUID)
	LogTransactionRecorded(ctx context.Context, tx *models.Transaction, categoryInferred bool)
	LogIdempotentReplay(ctx context.Context, userID uuid.UUID, idempotencyKey string, transactionID uuid.UUID)
	LogIdempotencyRecordFailed(ctx context.Context, userID uuid.UUID, idempotencyKey string, transactionID uuid.UUID, errorMsg string)
	LogRecommendationGenerated(ctx context.Context, userID uuid.UUID, rec *models.Recommendation)
	LogReportGenerated(ctx context.Context, report string, userID uuid.UUID, items int, durationMs int64)
	LogUpstreamFailure(ctx context.Context, source string, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
