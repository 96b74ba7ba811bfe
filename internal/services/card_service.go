package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/repositories"
	"card-rewards-api/internal/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// cardService implements CardServiceInterface
type cardService struct {
	cardRepo repositories.CardRepositoryInterface
	guard    *upstreamGuard
	logger   RewardsLoggerInterface
	metrics  MetricsRecorderInterface
}

// NewCardService creates a card service. The breaker is shared with the
// insights service so both see the same store health.
func NewCardService(
	cardRepo repositories.CardRepositoryInterface,
	breaker CircuitBreakerInterface,
	logger RewardsLoggerInterface,
	metrics MetricsRecorderInterface,
) CardServiceInterface {
	return &cardService{
		cardRepo: cardRepo,
		guard:    newUpstreamGuard("rewards-store", breaker, logger, metrics),
		logger:   logger,
		metrics:  metrics,
	}
}

// CreateCard adds a card to the user's wallet
func (s *cardService) CreateCard(ctx context.Context, userID uuid.UUID, req *dto.CreateCardRequest) (*models.Card, error) {
	ctx, span := tracing.StartSpan(ctx, "CardService.CreateCard", attribute.String("user.id", userID.String()))
	defer span.End()

	categories, err := normalizeCategories(req.Categories)
	if err != nil {
		return nil, err
	}

	card := &models.Card{
		UserID:        userID,
		BankName:      strings.TrimSpace(req.BankName),
		CardName:      strings.TrimSpace(req.CardName),
		LastFour:      strings.TrimSpace(req.LastFour),
		RewardType:    strings.ToLower(strings.TrimSpace(req.RewardType)),
		RewardRate:    req.RewardRate,
		Categories:    categories,
		PointsBalance: req.PointsBalance,
	}

	if req.ExpiryDate != "" {
		expiry, err := parseExpiryDate(req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		card.ExpiryDate = &expiry
	}

	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.guard.do(ctx, sourceCards, func(ctx context.Context) error {
		return s.cardRepo.Create(ctx, card)
	}); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	s.logger.LogCardCreated(ctx, userID, card.ID, card.BankName, card.CardName)
	s.metrics.IncrementCounter("card_created", nil)

	return card, nil
}

// GetCard returns one of the user's cards
func (s *cardService) GetCard(ctx context.Context, userID, cardID uuid.UUID) (*models.Card, error) {
	var card *models.Card
	err := s.guard.do(ctx, sourceCards, func(ctx context.Context) error {
		var err error
		card, err = s.cardRepo.GetByID(ctx, userID, cardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ListCards returns the user's cards in the order they were added
func (s *cardService) ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	ctx, span := tracing.StartSpan(ctx, "CardService.ListCards", attribute.String("user.id", userID.String()))
	defer span.End()

	var cards []models.Card
	err := s.guard.do(ctx, sourceCards, func(ctx context.Context) error {
		var err error
		cards, err = s.cardRepo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("cards.count", len(cards)))
	return cards, nil
}

// UpdateCard applies the non-nil fields of req
func (s *cardService) UpdateCard(ctx context.Context, userID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*models.Card, error) {
	ctx, span := tracing.StartSpan(ctx, "CardService.UpdateCard", attribute.String("card.id", cardID.String()))
	defer span.End()

	card, err := s.GetCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	var updated []string

	if req.BankName != nil {
		card.BankName = strings.TrimSpace(*req.BankName)
		updated = append(updated, "bank_name")
	}
	if req.CardName != nil {
		card.CardName = strings.TrimSpace(*req.CardName)
		updated = append(updated, "card_name")
	}
	if req.LastFour != nil {
		card.LastFour = strings.TrimSpace(*req.LastFour)
		updated = append(updated, "last_four")
	}
	if req.RewardType != nil {
		card.RewardType = strings.ToLower(strings.TrimSpace(*req.RewardType))
		updated = append(updated, "reward_type")
	}
	if req.RewardRate != nil {
		card.RewardRate = *req.RewardRate
		updated = append(updated, "reward_rate")
	}
	if req.Categories != nil {
		categories, err := normalizeCategories(req.Categories)
		if err != nil {
			return nil, err
		}
		card.Categories = categories
		updated = append(updated, "categories")
	}
	if req.PointsBalance != nil {
		card.PointsBalance = *req.PointsBalance
		updated = append(updated, "points_balance")
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			card.ExpiryDate = nil
		} else {
			expiry, err := parseExpiryDate(*req.ExpiryDate)
			if err != nil {
				return nil, err
			}
			card.ExpiryDate = &expiry
		}
		updated = append(updated, "expiry_date")
	}

	if len(updated) == 0 {
		return card, nil
	}

	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.guard.do(ctx, sourceCards, func(ctx context.Context) error {
		return s.cardRepo.Update(ctx, card, updated)
	}); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	s.logger.LogCardUpdated(ctx, userID, cardID, updated)
	s.metrics.IncrementCounter("card_updated", nil)

	return card, nil
}

// DeleteCard removes the card. Transactions made with it are kept.
func (s *cardService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	if err := s.guard.do(ctx, sourceCards, func(ctx context.Context) error {
		return s.cardRepo.Delete(ctx, userID, cardID)
	}); err != nil {
		return err
	}

	s.logger.LogCardDeleted(ctx, userID, cardID)
	s.metrics.IncrementCounter("card_deleted", nil)

	return nil
}

// normalizeCategories maps codes and display labels to canonical codes
func normalizeCategories(input []string) (models.StringList, error) {
	out := make(models.StringList, 0, len(input))
	for _, raw := range input {
		code, ok := models.NormalizeCategory(raw)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, raw)
		}
		out = append(out, code)
	}
	return out.Dedupe(), nil
}

func parseExpiryDate(value string) (time.Time, error) {
	expiry, err := dto.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expiry_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return expiry, nil
}
