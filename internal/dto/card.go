package dto

import (
	"time"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card Request DTOs

// CreateCardRequest represents the request payload for adding a card
type CreateCardRequest struct {
	BankName      string          `json:"bank_name" validate:"required,notblank,max=100"`
	CardName      string          `json:"card_name" validate:"required,notblank,max=150"`
	LastFour      string          `json:"last_four" validate:"last_four"`
	RewardType    string          `json:"reward_type" validate:"required,reward_type"`
	RewardRate    decimal.Decimal `json:"reward_rate" validate:"positive_amount"`
	Categories    []string        `json:"categories" validate:"dive,category"`
	PointsBalance int64           `json:"points_balance" validate:"gte=0"`
	ExpiryDate    string          `json:"expiry_date" validate:"omitempty"`
}

// UpdateCardRequest represents a partial card update. Nil fields are left unchanged.
type UpdateCardRequest struct {
	BankName      *string          `json:"bank_name" validate:"omitempty,notblank,max=100"`
	CardName      *string          `json:"card_name" validate:"omitempty,notblank,max=150"`
	LastFour      *string          `json:"last_four" validate:"omitempty,last_four"`
	RewardType    *string          `json:"reward_type" validate:"omitempty,reward_type"`
	RewardRate    *decimal.Decimal `json:"reward_rate" validate:"omitempty,positive_amount"`
	Categories    []string         `json:"categories" validate:"omitempty,dive,category"`
	PointsBalance *int64           `json:"points_balance" validate:"omitempty,gte=0"`
	ExpiryDate    *string          `json:"expiry_date"`
}

// Card Response DTOs

// CardResponse is the API view of a card
type CardResponse struct {
	ID            uuid.UUID       `json:"id"`
	BankName      string          `json:"bank_name"`
	CardName      string          `json:"card_name"`
	LastFour      string          `json:"last_four,omitempty"`
	RewardType    string          `json:"reward_type"`
	RewardRate    decimal.Decimal `json:"reward_rate"`
	Categories    []string        `json:"categories"`
	PointsBalance int64           `json:"points_balance"`
	ExpiryDate    *string         `json:"expiry_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ListCardsResponse represents the response for listing cards
type ListCardsResponse struct {
	Cards []CardResponse `json:"cards"`
	Total int            `json:"total"`
}

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// ToCardResponse converts a Card model to its response DTO
func ToCardResponse(card *models.Card) CardResponse {
	resp := CardResponse{
		ID:            card.ID,
		BankName:      card.BankName,
		CardName:      card.CardName,
		LastFour:      card.LastFour,
		RewardType:    card.RewardType,
		RewardRate:    card.RewardRate,
		Categories:    []string(card.Categories),
		PointsBalance: card.PointsBalance,
		CreatedAt:     card.CreatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if card.ExpiryDate != nil {
		formatted := card.ExpiryDate.UTC().Format(DateLayout)
		resp.ExpiryDate = &formatted
	}
	return resp
}

// ToCardResponses converts a slice of cards
func ToCardResponses(cards []models.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, ToCardResponse(&cards[i]))
	}
	return out
}

// ParseDate accepts a calendar date or an RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
