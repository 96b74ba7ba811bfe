package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount   = errors.New("transaction amount must be positive")
	ErrInvalidMerchant = errors.New("merchant is required")
	ErrNegativePoints  = errors.New("points earned cannot be negative")
)

// Transaction is a purchase made with one of the user's cards. Points earned
// are fixed when the transaction is recorded.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CardID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"card_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category     string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Merchant     string          `gorm:"type:varchar(255);not null" json:"merchant"`
	PointsEarned int64           `gorm:"not null;default:0" json:"points_earned"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.Date.IsZero() {
		t.Date = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.CardID == uuid.Nil {
		return errors.New("card ID is required")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if strings.TrimSpace(t.Merchant) == "" {
		return ErrInvalidMerchant
	}

	if t.PointsEarned < 0 {
		return ErrNegativePoints
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
