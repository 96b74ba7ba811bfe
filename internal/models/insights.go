package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Derived values. None of these are persisted; they are recomputed from card
// and transaction snapshots on every request.

const (
	RiskLevelHigh   = "high"
	RiskLevelMedium = "medium"
	RiskLevelLow    = "low"

	ExpiryStatusExpiring = "expiring"
	ExpiryStatusExpired  = "expired"
	ExpiryStatusActive   = "active"

	SpendingLevelHigh   = "High"
	SpendingLevelMedium = "Medium"
	SpendingLevelLow    = "Low"
)

// CardScore is one ranked entry of a recommendation
type CardScore struct {
	CardID        uuid.UUID       `json:"card_id"`
	CardName      string          `json:"card_name"`
	BankName      string          `json:"bank_name"`
	RewardRate    decimal.Decimal `json:"reward_rate"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	BonusApplied  bool            `json:"bonus_applied"`
	PointsEarned  int64           `json:"points_earned"`
}

// Recommendation is the best card for a purchase plus the ranked alternatives
type Recommendation struct {
	CardScore
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	Alternatives []CardScore     `json:"alternatives"`
}

// RecurringBill is a merchant charged at least the minimum number of times
type RecurringBill struct {
	Merchant      string          `json:"merchant"`
	Category      string          `json:"category"`
	Frequency     int             `json:"frequency"`
	AvgAmount     decimal.Decimal `json:"avg_amount"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	FirstSeen     time.Time       `json:"first_seen"`
	LastSeen      time.Time       `json:"last_seen"`
	CurrentCardID uuid.UUID       `json:"current_card_id"`
}

// Optimization suggests moving one recurring bill to a better card
type Optimization struct {
	Merchant           string          `json:"merchant"`
	Category           string          `json:"category"`
	AvgAmount          decimal.Decimal `json:"avg_amount"`
	CurrentCardID      uuid.UUID       `json:"current_card_id"`
	CurrentCard        string          `json:"current_card"`
	CurrentPoints      int64           `json:"current_points"`
	RecommendedCardID  uuid.UUID       `json:"recommended_card_id"`
	RecommendedCard    string          `json:"recommended_card"`
	OptimizedPoints    int64           `json:"optimized_points"`
	PointsGain         int64           `json:"points_gain"`
	AnnualOccurrences  decimal.Decimal `json:"annual_occurrences"`
	AnnualGainEstimate decimal.Decimal `json:"annual_gain_estimate"`
}

type OptimizationReport struct {
	Optimizations   []Optimization `json:"optimizations"`
	TotalAnnualGain int64          `json:"total_annual_gain"`
	Insights        string         `json:"insights"`
}

// SpendingCluster groups categories by relative spend
type SpendingCluster struct {
	Level         string          `json:"level"`
	Categories    []string        `json:"categories"`
	TotalSpending decimal.Decimal `json:"total_spending"`
}

type PatternsReport struct {
	CategoryTotals   map[string]decimal.Decimal `json:"category_totals"`
	Clusters         []SpendingCluster          `json:"clusters"`
	MonthlyAvg       map[string]decimal.Decimal `json:"monthly_avg"`
	TotalSpent       decimal.Decimal            `json:"total_spent"`
	TransactionCount int                        `json:"transaction_count"`
	TopCategory      string                     `json:"top_category,omitempty"`
}

// ExpiryAlert flags a card whose points are about to expire or have expired
type ExpiryAlert struct {
	CardID        uuid.UUID `json:"card_id"`
	CardName      string    `json:"card_name"`
	PointsBalance int64     `json:"points_balance"`
	ExpiryDate    time.Time `json:"expiry_date"`
	DaysRemaining int       `json:"days_remaining"`
	RiskLevel     string    `json:"risk_level"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
}

// RedemptionOption is one way to spend a card's points
type RedemptionOption struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	MinPoints   int64           `json:"min_points"`
	Value       decimal.Decimal `json:"value"`
	Recommended bool            `json:"recommended"`
}

type RedemptionSuggestion struct {
	CardID        uuid.UUID          `json:"card_id"`
	CardName      string             `json:"card_name"`
	PointsBalance int64              `json:"points_balance"`
	CashValue     decimal.Decimal    `json:"cash_value"`
	Options       []RedemptionOption `json:"options"`
}

// CardOffer is a catalogue card the user can apply for
type CardOffer struct {
	ID                 string          `json:"id"`
	BankName           string          `json:"bank_name"`
	CardName           string          `json:"card_name"`
	CardType           string          `json:"card_type"`
	AnnualFee          decimal.Decimal `json:"annual_fee"`
	RewardRate         decimal.Decimal `json:"reward_rate"`
	WelcomeBonus       int64           `json:"welcome_bonus"`
	Categories         []string        `json:"categories"`
	Benefits           []string        `json:"benefits"`
	BestFor            string          `json:"best_for"`
	CoBrand            string          `json:"co_brand,omitempty"`
	ApplicationURL     string          `json:"application_url"`
	RelevanceScore     decimal.Decimal `json:"relevance_score"`
	MatchingCategories []string        `json:"matching_categories,omitempty"`
}

// SeedSummary reports the demo purchases written for a user
type SeedSummary struct {
	Created      int       `json:"created"`
	PointsEarned int64     `json:"points_earned"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}
