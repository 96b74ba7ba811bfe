package repositories

import (
	"context"
	"errors"
	"fmt"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound = errors.New("card not found")
)

var (
	ErrNoCardColumns      = errors.New("no card columns to update")
	ErrUnknownCardColumns = errors.New("card column is not updatable")
)

var updatableCardColumns = map[string]bool{
	"bank_name":      true,
	"card_name":      true,
	"last_four":      true,
	"reward_type":    true,
	"reward_rate":    true,
	"categories":     true,
	"points_balance": true,
	"expiry_date":    true,
}

// cardRepository implements CardRepositoryInterface
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) CardRepositoryInterface {
	return &cardRepository{
		db: db,
	}
}

// Create creates a new card
func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

// GetByID retrieves a card owned by the user
func (r *cardRepository) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*models.Card, error) {
	var card models.Card
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, userID).
		First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

// ListByUser retrieves all cards for a user, oldest first
func (r *cardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	cards := []models.Card{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// Update writes only the named columns of card. Columns left out, the points
// balance in particular, keep whatever the row holds now.
func (r *cardRepository) Update(ctx context.Context, card *models.Card, columns []string) error {
	if len(columns) == 0 {
		return ErrNoCardColumns
	}
	selected := make([]string, 0, len(columns)+1)
	for _, column := range columns {
		if !updatableCardColumns[column] {
			return fmt.Errorf("%w: %s", ErrUnknownCardColumns, column)
		}
		selected = append(selected, column)
	}
	selected = append(selected, "updated_at")

	result := r.db.WithContext(ctx).
		Model(card).
		Where("user_id = ?", card.UserID).
		Select(selected).
		Updates(card)
	if result.Error != nil {
		return fmt.Errorf("failed to update card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes the card row only. Its transactions stay as spending history.
func (r *cardRepository) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", cardID, userID).Delete(&models.Card{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
