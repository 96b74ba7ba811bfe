// Package rewards holds the recommendation and optimization rules. Every
// function here is pure over the card and transaction snapshots it is given;
// fetching those snapshots is the caller's job.
package rewards

import (
	"errors"
	"fmt"
	"sort"

	"card-rewards-api/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNoCards         = errors.New("no cards available")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCategory = errors.New("invalid category")
)

// Options tunes the engine. Zero values fall back to DefaultOptions.
type Options struct {
	BonusMultiplier     decimal.Decimal
	MonthsPerYear       decimal.Decimal
	MinWindowMonths     decimal.Decimal
	PointValue          decimal.Decimal
	ExpiryThresholdDays int
	HighRiskDays        int
	MinOccurrences      int
}

func DefaultOptions() Options {
	return Options{
		BonusMultiplier:     decimal.NewFromFloat(1.5),
		MonthsPerYear:       decimal.NewFromInt(12),
		MinWindowMonths:     decimal.NewFromInt(1),
		PointValue:          decimal.NewFromFloat(0.01),
		ExpiryThresholdDays: 60,
		HighRiskDays:        14,
		MinOccurrences:      2,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if !o.BonusMultiplier.IsPositive() {
		o.BonusMultiplier = d.BonusMultiplier
	}
	if !o.MonthsPerYear.IsPositive() {
		o.MonthsPerYear = d.MonthsPerYear
	}
	if !o.MinWindowMonths.IsPositive() {
		o.MinWindowMonths = d.MinWindowMonths
	}
	if !o.PointValue.IsPositive() {
		o.PointValue = d.PointValue
	}
	if o.ExpiryThresholdDays <= 0 {
		o.ExpiryThresholdDays = d.ExpiryThresholdDays
	}
	if o.HighRiskDays <= 0 {
		o.HighRiskDays = d.HighRiskDays
	}
	if o.MinOccurrences < 1 {
		o.MinOccurrences = d.MinOccurrences
	}
	return o
}

type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

func (e *Engine) Options() Options {
	return e.opts
}

// EffectiveRate is the card's base rate, multiplied by the bonus multiplier
// when the category is one of the card's bonus categories.
func (e *Engine) EffectiveRate(card models.Card, category string) (decimal.Decimal, bool) {
	if card.HasBonusCategory(category) {
		return card.RewardRate.Mul(e.opts.BonusMultiplier), true
	}
	return card.RewardRate, false
}

// PointsFor returns amount x rate rounded half away from zero.
func PointsFor(amount, rate decimal.Decimal) int64 {
	return amount.Mul(rate).Round(0).IntPart()
}

// PointsForPurchase is the points a transaction earns when it is recorded.
func (e *Engine) PointsForPurchase(card models.Card, category string, amount decimal.Decimal) int64 {
	rate, _ := e.EffectiveRate(card, category)
	return PointsFor(amount, rate)
}

type scoredCard struct {
	score models.CardScore
	card  models.Card
}

// Rank scores every card for the purchase, best first. Ties on points go to
// the higher effective rate, then the higher base rate, then the earlier
// created card, then the lower id.
func (e *Engine) Rank(cards []models.Card, category string, amount decimal.Decimal) []models.CardScore {
	scored := e.rank(cards, category, amount)
	out := make([]models.CardScore, len(scored))
	for i, s := range scored {
		out[i] = s.score
	}
	return out
}

func (e *Engine) rank(cards []models.Card, category string, amount decimal.Decimal) []scoredCard {
	scored := make([]scoredCard, 0, len(cards))
	for _, card := range cards {
		rate, bonus := e.EffectiveRate(card, category)
		scored = append(scored, scoredCard{
			card: card,
			score: models.CardScore{
				CardID:        card.ID,
				CardName:      card.CardName,
				BankName:      card.BankName,
				RewardRate:    card.RewardRate,
				EffectiveRate: rate,
				BonusApplied:  bonus,
				PointsEarned:  PointsFor(amount, rate),
			},
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.score.PointsEarned != b.score.PointsEarned {
			return a.score.PointsEarned > b.score.PointsEarned
		}
		// rounding can tie points for different rates
		if !a.score.EffectiveRate.Equal(b.score.EffectiveRate) {
			return a.score.EffectiveRate.GreaterThan(b.score.EffectiveRate)
		}
		if !a.card.RewardRate.Equal(b.card.RewardRate) {
			return a.card.RewardRate.GreaterThan(b.card.RewardRate)
		}
		if !a.card.CreatedAt.Equal(b.card.CreatedAt) {
			return a.card.CreatedAt.Before(b.card.CreatedAt)
		}
		return a.card.ID.String() < b.card.ID.String()
	})

	return scored
}

// Recommend picks the card earning the most points for {category, amount}.
func (e *Engine) Recommend(cards []models.Card, category string, amount decimal.Decimal) (*models.Recommendation, error) {
	if !models.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	ranked := e.rank(cards, category, amount)
	best := ranked[0]

	alternatives := make([]models.CardScore, 0, len(ranked)-1)
	for _, s := range ranked[1:] {
		alternatives = append(alternatives, s.score)
	}

	return &models.Recommendation{
		CardScore:    best.score,
		Category:     category,
		Amount:       amount,
		Reason:       e.reason(best, ranked[1:], category),
		Alternatives: alternatives,
	}, nil
}

func (e *Engine) reason(best scoredCard, rest []scoredCard, category string) string {
	name := best.card.DisplayName()
	label := models.CategoryLabel(category)

	var msg string
	if best.score.BonusApplied {
		msg = fmt.Sprintf("%s earns %d points: %s is a bonus category on this card (%sx multiplier), for an effective rate of %s",
			name, best.score.PointsEarned, label, e.opts.BonusMultiplier.String(), best.score.EffectiveRate.StringFixed(2))
	} else {
		msg = fmt.Sprintf("%s earns %d points at its base rate of %s; %s is not a bonus category on this card",
			name, best.score.PointsEarned, best.score.EffectiveRate.StringFixed(2), label)
	}

	if len(rest) == 0 {
		return msg + ". It is your only card."
	}

	runnerUp := rest[0]
	diff := best.score.PointsEarned - runnerUp.score.PointsEarned
	if diff == 0 {
		tieBreak := "was added first"
		switch {
		case !best.score.EffectiveRate.Equal(runnerUp.score.EffectiveRate):
			tieBreak = "has the higher effective rate"
		case !best.card.RewardRate.Equal(runnerUp.card.RewardRate):
			tieBreak = "has the higher base rate"
		}
		return fmt.Sprintf("%s. It ties with %s on points and %s.", msg, runnerUp.card.DisplayName(), tieBreak)
	}

	return fmt.Sprintf("%s. That is %d more points than %s (effective rate %s).",
		msg, diff, runnerUp.card.DisplayName(), runnerUp.score.EffectiveRate.StringFixed(2))
}
