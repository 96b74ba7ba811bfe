package dto

import (
	"card-rewards-api/internal/models"

	"github.com/shopspring/decimal"
)

// RecommendationRequest asks which card to use for a purchase
type RecommendationRequest struct {
	Category string          `json:"category" validate:"required,category"`
	Amount   decimal.Decimal `json:"amount" validate:"positive_amount,money"`
}

type RecurringBillsResponse struct {
	RecurringBills []models.RecurringBill `json:"recurring_bills"`
	Total          int                    `json:"total"`
}

type ExpiryAlertsResponse struct {
	Alerts []models.ExpiryAlert `json:"alerts"`
}

type ExpiryScheduleResponse struct {
	ExpiryDates []models.ExpiryAlert `json:"expiry_dates"`
}

type RedemptionSuggestionsResponse struct {
	Suggestions []models.RedemptionSuggestion `json:"suggestions"`
}

type CardOffersResponse struct {
	Cards []models.CardOffer `json:"cards"`
	Total int                `json:"total"`
}

// RecommendedOffersResponse pairs the scored offers with the spend they were scored on
type RecommendedOffersResponse struct {
	RecommendedCards    []models.CardOffer         `json:"recommended_cards"`
	UserSpendingProfile map[string]decimal.Decimal `json:"user_spending_profile"`
}

// CategoryResponse describes one spending category
type CategoryResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CategorySuggestionResponse is the category inferred for a merchant
type CategorySuggestionResponse struct {
	Merchant   string  `json:"merchant"`
	Category   string  `json:"category"`
	Method     string  `json:"method"`
	Confidence float64 `json:"confidence"`
	Matched    string  `json:"matched_pattern,omitempty"`
}

// CategoriesResponse lists the supported spending categories
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
