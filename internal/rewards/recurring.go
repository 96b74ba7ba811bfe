package rewards

import (
	"sort"
	"strings"

	"card-rewards-api/internal/models"

	"github.com/shopspring/decimal"
)

// NormalizeMerchant trims, collapses inner whitespace and lower-cases a
// merchant name so "NETFLIX " and "netflix" group together.
func NormalizeMerchant(merchant string) string {
	return strings.ToLower(strings.Join(strings.Fields(merchant), " "))
}

// DetectRecurring groups transactions by merchant and keeps the merchants
// charged at least minOccurrences times. minOccurrences below 1 uses the
// engine default. Results are ordered by total spent, highest first.
func (e *Engine) DetectRecurring(transactions []models.Transaction, minOccurrences int) []models.RecurringBill {
	if minOccurrences < 1 {
		minOccurrences = e.opts.MinOccurrences
	}

	groups := map[string][]models.Transaction{}
	for _, tx := range transactions {
		key := NormalizeMerchant(tx.Merchant)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], tx)
	}

	bills := make([]models.RecurringBill, 0)
	for _, group := range groups {
		if len(group) < minOccurrences {
			continue
		}
		bills = append(bills, summarize(group))
	}

	sort.Slice(bills, func(i, j int) bool {
		if !bills[i].TotalSpent.Equal(bills[j].TotalSpent) {
			return bills[i].TotalSpent.GreaterThan(bills[j].TotalSpent)
		}
		return NormalizeMerchant(bills[i].Merchant) < NormalizeMerchant(bills[j].Merchant)
	})

	return bills
}

func summarize(group []models.Transaction) models.RecurringBill {
	sort.SliceStable(group, func(i, j int) bool {
		if !group[i].Date.Equal(group[j].Date) {
			return group[i].Date.Before(group[j].Date)
		}
		return group[i].CreatedAt.Before(group[j].CreatedAt)
	})

	total := decimal.Zero
	for _, tx := range group {
		total = total.Add(tx.Amount)
	}

	latest := group[len(group)-1]
	count := decimal.NewFromInt(int64(len(group)))

	return models.RecurringBill{
		Merchant:      strings.Join(strings.Fields(latest.Merchant), " "),
		Category:      latest.Category,
		Frequency:     len(group),
		AvgAmount:     total.Div(count).Round(2),
		TotalSpent:    total.Round(2),
		FirstSeen:     group[0].Date,
		LastSeen:      latest.Date,
		CurrentCardID: latest.CardID,
	}
}
