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
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateWithPoints creates the transaction and credits its points to the card.
// The card must belong to the transaction's user.
func (r *transactionRepository) CreateWithPoints(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Card{}).
			Where("id = ? AND user_id = ?", transaction.CardID, transaction.UserID).
			UpdateColumn("points_balance", gorm.Expr("points_balance + ?", transaction.PointsEarned))
		if result.Error != nil {
			return fmt.Errorf("failed to update points balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCardNotFound
		}

		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction owned by the user
func (r *transactionRepository) GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// List retrieves a user's transactions, newest first
func (r *transactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filters.UserID)

	if filters.CardID != nil {
		query = query.Where("card_id = ?", *filters.CardID)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	transactions := []models.Transaction{}
	if err := query.
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
