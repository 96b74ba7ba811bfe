package rewards

import (
	"sort"

	"card-rewards-api/internal/models"

	"github.com/shopspring/decimal"
)

const (
	RedemptionGiftCard        = "gift_card"
	RedemptionStatementCredit = "statement_credit"
	RedemptionTravel          = "travel"
)

type redemptionRule struct {
	kind        string
	description string
	minPoints   int64
	multiplier  decimal.Decimal
}

var redemptionRules = []redemptionRule{
	{RedemptionTravel, "Book flights or hotels through the card's travel portal", 10000, decimal.NewFromFloat(1.25)},
	{RedemptionStatementCredit, "Redeem points against your card statement", 5000, decimal.NewFromInt(1)},
	{RedemptionGiftCard, "Convert points into partner gift cards", 2500, decimal.NewFromInt(1)},
}

// Redemptions lists the redemption options each card's balance qualifies for.
// Cards with no qualifying option are left out. The option with the highest
// value is marked as recommended.
func (e *Engine) Redemptions(cards []models.Card) []models.RedemptionSuggestion {
	suggestions := make([]models.RedemptionSuggestion, 0)

	for _, card := range cards {
		if card.PointsBalance <= 0 {
			continue
		}

		cash := decimal.NewFromInt(card.PointsBalance).Mul(e.opts.PointValue).Round(2)

		options := make([]models.RedemptionOption, 0, len(redemptionRules))
		for _, rule := range redemptionRules {
			if card.PointsBalance < rule.minPoints {
				continue
			}
			options = append(options, models.RedemptionOption{
				Type:        rule.kind,
				Description: rule.description,
				MinPoints:   rule.minPoints,
				Value:       cash.Mul(rule.multiplier).Round(2),
			})
		}
		if len(options) == 0 {
			continue
		}
		options[0].Recommended = true

		suggestions = append(suggestions, models.RedemptionSuggestion{
			CardID:        card.ID,
			CardName:      card.DisplayName(),
			PointsBalance: card.PointsBalance,
			CashValue:     cash,
			Options:       options,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].PointsBalance != suggestions[j].PointsBalance {
			return suggestions[i].PointsBalance > suggestions[j].PointsBalance
		}
		return suggestions[i].CardName < suggestions[j].CardName
	})

	return suggestions
}
