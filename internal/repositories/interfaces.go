package repositories

import (
	"context"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
)

// CardRepositoryInterface defines the contract for card repository operations.
// Every lookup is scoped to the owning user.
type CardRepositoryInterface interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*models.Card, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	Update(ctx context.Context, card *models.Card, columns []string) error
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	// CreateWithPoints stores the transaction and adds its points to the card
	// balance in one database transaction.
	CreateWithPoints(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
}
