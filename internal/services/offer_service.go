package services

import (
	"context"
	"fmt"

	"card-rewards-api/internal/models"
	"card-rewards-api/internal/repositories"
	"card-rewards-api/internal/rewards"
	"card-rewards-api/internal/tracing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const maxOfferLimit = 20

// offerService implements OfferServiceInterface over a fixed catalogue
type offerService struct {
	catalog      []models.CardOffer
	loader       *snapshotLoader
	defaultLimit int
	metrics      MetricsRecorderInterface
}

// NewOfferService creates an offer service for catalog
func NewOfferService(
	catalog []models.CardOffer,
	cardRepo repositories.CardRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	defaultLimit int,
	breaker CircuitBreakerInterface,
	logger RewardsLoggerInterface,
	metrics MetricsRecorderInterface,
) OfferServiceInterface {
	return &offerService{
		catalog: catalog,
		loader: &snapshotLoader{
			cardRepo:        cardRepo,
			transactionRepo: transactionRepo,
			guard:           newUpstreamGuard("rewards-store", breaker, logger, metrics),
		},
		defaultLimit: defaultLimit,
		metrics:      metrics,
	}
}

// ListOffers returns the catalogue, optionally only the co-branded cards
func (s *offerService) ListOffers(coBrandedOnly bool) []models.CardOffer {
	if coBrandedOnly {
		return rewards.CoBrandedOffers(s.catalog)
	}
	out := make([]models.CardOffer, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// RecommendOffers scores the cards the user does not hold against their
// spending. It also returns the per-category spend used for scoring.
func (s *offerService) RecommendOffers(ctx context.Context, userID uuid.UUID, limit int) ([]models.CardOffer, map[string]decimal.Decimal, error) {
	ctx, span := tracing.StartSpan(ctx, "OfferService.RecommendOffers", attribute.String("user.id", userID.String()))
	defer span.End()

	if limit < 0 {
		return nil, nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > maxOfferLimit {
		limit = maxOfferLimit
	}

	cards, err := s.loader.cards(ctx, userID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, nil, err
	}
	transactions, err := s.loader.transactions(ctx, userID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, nil, err
	}

	offers := rewards.RecommendOffers(s.catalog, cards, transactions, limit)
	s.metrics.IncrementCounter("report_generated", map[string]string{"report": "recommended_offers", "status": "success"})

	return offers, rewards.SpendByCategory(transactions), nil
}
