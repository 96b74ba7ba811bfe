package rewards

import (
	"sort"

	"card-rewards-api/internal/models"

	"github.com/shopspring/decimal"
)

// Analyze aggregates spend per category and buckets the categories into
// High/Medium/Low tiers. A category is High when its total sits at least half
// a standard deviation above the mean, Low when at least half a standard
// deviation below, Medium otherwise.
func (e *Engine) Analyze(transactions []models.Transaction) models.PatternsReport {
	report := models.PatternsReport{
		CategoryTotals:   map[string]decimal.Decimal{},
		Clusters:         []models.SpendingCluster{},
		MonthlyAvg:       map[string]decimal.Decimal{},
		TotalSpent:       decimal.Zero,
		TransactionCount: len(transactions),
	}
	if len(transactions) == 0 {
		return report
	}

	months := map[string]struct{}{}
	for _, tx := range transactions {
		report.CategoryTotals[tx.Category] = report.CategoryTotals[tx.Category].Add(tx.Amount)
		report.TotalSpent = report.TotalSpent.Add(tx.Amount)
		months[tx.Date.UTC().Format("2006-01")] = struct{}{}
	}

	monthCount := decimal.NewFromInt(int64(len(months)))
	for category, total := range report.CategoryTotals {
		report.CategoryTotals[category] = total.Round(2)
		report.MonthlyAvg[category] = total.Div(monthCount).Round(2)
	}
	report.TotalSpent = report.TotalSpent.Round(2)

	categories := sortedByTotal(report.CategoryTotals)
	report.TopCategory = categories[0]
	report.Clusters = cluster(categories, report.CategoryTotals)

	return report
}

// sortedByTotal returns category codes ordered by total desc, then code.
func sortedByTotal(totals map[string]decimal.Decimal) []string {
	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := totals[categories[i]], totals[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})
	return categories
}

// cluster compares squared deviations against a quarter of the variance so
// no square root is needed and the decimal math stays exact.
func cluster(categories []string, totals map[string]decimal.Decimal) []models.SpendingCluster {
	n := decimal.NewFromInt(int64(len(categories)))

	sum := decimal.Zero
	for _, c := range categories {
		sum = sum.Add(totals[c])
	}
	mean := sum.Div(n)

	variance := decimal.Zero
	for _, c := range categories {
		d := totals[c].Sub(mean)
		variance = variance.Add(d.Mul(d))
	}
	variance = variance.Div(n)
	threshold := variance.Div(decimal.NewFromInt(4))

	tiers := map[string]*models.SpendingCluster{}
	order := []string{models.SpendingLevelHigh, models.SpendingLevelMedium, models.SpendingLevelLow}
	for _, level := range order {
		tiers[level] = &models.SpendingCluster{Level: level, Categories: []string{}, TotalSpending: decimal.Zero}
	}

	for _, c := range categories {
		d := totals[c].Sub(mean)
		level := models.SpendingLevelMedium
		if d.Mul(d).GreaterThanOrEqual(threshold) && variance.IsPositive() {
			if d.IsPositive() {
				level = models.SpendingLevelHigh
			} else if d.IsNegative() {
				level = models.SpendingLevelLow
			}
		}
		tier := tiers[level]
		tier.Categories = append(tier.Categories, c)
		tier.TotalSpending = tier.TotalSpending.Add(totals[c])
	}

	clusters := make([]models.SpendingCluster, 0, len(order))
	for _, level := range order {
		if len(tiers[level].Categories) > 0 {
			clusters = append(clusters, *tiers[level])
		}
	}
	return clusters
}
