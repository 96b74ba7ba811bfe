package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RewardTypeCashback = "cashback"
	RewardTypePoints   = "points"
	RewardTypeMiles    = "miles"
)

var (
	ErrInvalidRewardType = errors.New("invalid reward type")
	ErrInvalidRewardRate = errors.New("reward rate must be positive")
	ErrInvalidLastFour   = errors.New("last four must be exactly 4 digits")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrNegativeBalance   = errors.New("points balance cannot be negative")
)

var lastFourPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Card is a credit card owned by a single user
type Card struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	BankName      string          `gorm:"type:varchar(100);not null" json:"bank_name"`
	CardName      string          `gorm:"type:varchar(150);not null" json:"card_name"`
	LastFour      string          `gorm:"type:varchar(4)" json:"last_four,omitempty"`
	RewardType    string          `gorm:"type:varchar(20);not null" json:"reward_type"`
	RewardRate    decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"reward_rate"`
	Categories    StringList      `gorm:"type:text" json:"categories"`
	PointsBalance int64           `gorm:"not null;default:0" json:"points_balance"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Card
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if c.Categories == nil {
		c.Categories = StringList{}
	}

	return c.Validate()
}

// BeforeUpdate hook for Card
func (c *Card) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now().UTC()
	return c.Validate()
}

// Validate validates the card fields
func (c *Card) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if strings.TrimSpace(c.BankName) == "" {
		return errors.New("bank name is required")
	}

	if strings.TrimSpace(c.CardName) == "" {
		return errors.New("card name is required")
	}

	if c.LastFour != "" && !lastFourPattern.MatchString(c.LastFour) {
		return ErrInvalidLastFour
	}

	if !IsValidRewardType(c.RewardType) {
		return ErrInvalidRewardType
	}

	if !c.RewardRate.IsPositive() {
		return ErrInvalidRewardRate
	}

	for _, category := range c.Categories {
		if !IsValidCategory(category) {
			return ErrInvalidCategory
		}
	}

	if c.PointsBalance < 0 {
		return ErrNegativeBalance
	}

	return nil
}

// HasBonusCategory reports whether the category earns the bonus multiplier on this card.
func (c *Card) HasBonusCategory(category string) bool {
	return c.Categories.Contains(category)
}

// DisplayName returns "Bank Card", the way cards are named in messages.
func (c *Card) DisplayName() string {
	if c.BankName == "" {
		return c.CardName
	}
	if strings.HasPrefix(strings.ToLower(c.CardName), strings.ToLower(c.BankName)) {
		return c.CardName
	}
	return c.BankName + " " + c.CardName
}

// TableName returns the table name for Card
func (c *Card) TableName() string {
	return "cards"
}

// IsValidRewardType checks if the reward type is valid
func IsValidRewardType(rewardType string) bool {
	switch rewardType {
	case RewardTypeCashback, RewardTypePoints, RewardTypeMiles:
		return true
	default:
		return false
	}
}
