package rewards

import (
	"fmt"
	"sort"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const unknownCardName = "Unknown card"

var (
	daysPerMonth = decimal.NewFromFloat(30.4375)
	hoursPerDay  = decimal.NewFromInt(24)
)

// Optimize checks every recurring bill against all cards and suggests a switch
// when another card's effective rate for the bill's category is strictly
// higher than the card used on the most recent charge. A current card that no
// longer exists is scored at a base rate of 1 with no bonus.
func (e *Engine) Optimize(bills []models.RecurringBill, cards []models.Card) models.OptimizationReport {
	report := models.OptimizationReport{Optimizations: []models.Optimization{}}

	byID := make(map[uuid.UUID]models.Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	total := decimal.Zero
	for _, bill := range bills {
		if len(cards) == 0 || !bill.AvgAmount.IsPositive() {
			continue
		}

		best := e.rank(cards, bill.Category, bill.AvgAmount)[0]

		currentName := unknownCardName
		currentRate := decimal.NewFromInt(1)
		if current, ok := byID[bill.CurrentCardID]; ok {
			currentName = current.DisplayName()
			currentRate, _ = e.EffectiveRate(current, bill.Category)
		}

		if !best.score.EffectiveRate.GreaterThan(currentRate) {
			continue
		}

		currentPoints := PointsFor(bill.AvgAmount, currentRate)
		gain := best.score.PointsEarned - currentPoints
		occurrences := e.AnnualOccurrences(bill)
		annual := decimal.NewFromInt(gain).Mul(occurrences).Round(2)

		report.Optimizations = append(report.Optimizations, models.Optimization{
			Merchant:           bill.Merchant,
			Category:           bill.Category,
			AvgAmount:          bill.AvgAmount,
			CurrentCardID:      bill.CurrentCardID,
			CurrentCard:        currentName,
			CurrentPoints:      currentPoints,
			RecommendedCardID:  best.card.ID,
			RecommendedCard:    best.card.DisplayName(),
			OptimizedPoints:    best.score.PointsEarned,
			PointsGain:         gain,
			AnnualOccurrences:  occurrences,
			AnnualGainEstimate: annual,
		})
		total = total.Add(annual)
	}

	sort.SliceStable(report.Optimizations, func(i, j int) bool {
		a, b := report.Optimizations[i], report.Optimizations[j]
		if !a.AnnualGainEstimate.Equal(b.AnnualGainEstimate) {
			return a.AnnualGainEstimate.GreaterThan(b.AnnualGainEstimate)
		}
		return NormalizeMerchant(a.Merchant) < NormalizeMerchant(b.Merchant)
	})

	report.TotalAnnualGain = total.Round(0).IntPart()
	report.Insights = optimizationInsights(len(report.Optimizations), report.TotalAnnualGain)

	return report
}

// AnnualOccurrences projects a bill's frequency onto a year:
// frequency x (months per year / observed window in months), at least 1.
// The observed window runs from the first charge to one mean billing interval
// past the last, so three monthly charges span three months, not two.
func (e *Engine) AnnualOccurrences(bill models.RecurringBill) decimal.Decimal {
	freq := decimal.NewFromInt(int64(bill.Frequency))

	windowDays := decimal.Zero
	if bill.Frequency >= 2 && bill.LastSeen.After(bill.FirstSeen) {
		spanDays := decimal.NewFromFloat(bill.LastSeen.Sub(bill.FirstSeen).Hours()).Div(hoursPerDay)
		interval := spanDays.Div(decimal.NewFromInt(int64(bill.Frequency - 1)))
		windowDays = spanDays.Add(interval)
	}
	if minDays := e.opts.MinWindowMonths.Mul(daysPerMonth); windowDays.LessThan(minDays) {
		windowDays = minDays
	}

	// months/year x days/month / window days keeps this to one division
	occurrences := freq.Mul(e.opts.MonthsPerYear).Mul(daysPerMonth).Div(windowDays)
	if occurrences.LessThan(decimal.NewFromInt(1)) {
		occurrences = decimal.NewFromInt(1)
	}
	return occurrences.Round(2)
}

func optimizationInsights(count int, total int64) string {
	if count == 0 {
		return "Your recurring bills are already on your best cards."
	}
	noun := "bills"
	if count == 1 {
		noun = "bill"
	}
	return fmt.Sprintf("Moving %d recurring %s to better cards could earn about %s additional points per year.",
		count, noun, formatPoints(total))
}
