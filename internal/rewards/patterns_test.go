package rewards

import (
	"testing"
	"time"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(merchant, category, amount string, date time.Time, cardID uuid.UUID) models.Transaction {
	return models.Transaction{
		ID:        uuid.New(),
		CardID:    cardID,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		Merchant:  merchant,
		Date:      date,
		CreatedAt: date,
	}
}

func TestAnalyze_ExactTotals(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	card := uuid.New()

	txs := []models.Transaction{
		newTx("Cafe", models.CategoryDining, "33.33", baseTime, card),
		newTx("Cafe", models.CategoryDining, "66.67", baseTime, card),
		newTx("Air", models.CategoryTravel, "0.10", baseTime, card),
		newTx("Air", models.CategoryTravel, "199.90", baseTime, card),
	}

	report := engine.Analyze(txs)

	require.Len(t, report.CategoryTotals, 2)
	assert.Equal(t, "100.00", report.CategoryTotals[models.CategoryDining].StringFixed(2))
	assert.True(t, report.CategoryTotals[models.CategoryDining].Equal(decimal.NewFromInt(100)))
	assert.True(t, report.CategoryTotals[models.CategoryTravel].Equal(decimal.NewFromInt(200)))
	assert.True(t, report.TotalSpent.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 4, report.TransactionCount)
	assert.Equal(t, models.CategoryTravel, report.TopCategory)

	require.Len(t, report.Clusters, 2)
	assert.Equal(t, models.SpendingLevelHigh, report.Clusters[0].Level)
	assert.Equal(t, []string{models.CategoryTravel}, report.Clusters[0].Categories)
	assert.Equal(t, models.SpendingLevelLow, report.Clusters[1].Level)
	assert.Equal(t, []string{models.CategoryDining}, report.Clusters[1].Categories)
}

func TestAnalyze_ThreeTiers(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	card := uuid.New()

	txs := []models.Transaction{
		newTx("Air", models.CategoryTravel, "100", baseTime, card),
		newTx("Mart", models.CategoryGroceries, "50", baseTime, card),
		newTx("Shell", models.CategoryFuel, "10", baseTime, card),
	}

	report := engine.Analyze(txs)

	require.Len(t, report.Clusters, 3)
	assert.Equal(t, []string{models.CategoryTravel}, report.Clusters[0].Categories)
	assert.Equal(t, models.SpendingLevelMedium, report.Clusters[1].Level)
	assert.Equal(t, []string{models.CategoryGroceries}, report.Clusters[1].Categories)
	assert.Equal(t, []string{models.CategoryFuel}, report.Clusters[2].Categories)
	assert.True(t, report.Clusters[1].TotalSpending.Equal(decimal.NewFromInt(50)))
}

func TestAnalyze_EveryCategoryInExactlyOneCluster(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	card := uuid.New()

	var txs []models.Transaction
	for i, category := range models.AllCategories() {
		txs = append(txs, newTx("M", category, decimal.NewFromInt(int64((i+1)*37%11+1)).String(), baseTime, card))
	}

	report := engine.Analyze(txs)

	seen := map[string]int{}
	for _, c := range report.Clusters {
		for _, category := range c.Categories {
			seen[category]++
		}
	}
	assert.Len(t, seen, len(models.AllCategories()))
	for category, n := range seen {
		assert.Equal(t, 1, n, category)
	}

	again := engine.Analyze(txs)
	assert.Equal(t, report.Clusters, again.Clusters)
}

func TestAnalyze_EqualTotalsAreMedium(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	card := uuid.New()

	report := engine.Analyze([]models.Transaction{
		newTx("A", models.CategoryFuel, "20", baseTime, card),
		newTx("B", models.CategoryDining, "20", baseTime, card),
	})

	require.Len(t, report.Clusters, 1)
	assert.Equal(t, models.SpendingLevelMedium, report.Clusters[0].Level)
	assert.Equal(t, []string{models.CategoryDining, models.CategoryFuel}, report.Clusters[0].Categories)
}

func TestAnalyze_MonthlyAverage(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	card := uuid.New()

	report := engine.Analyze([]models.Transaction{
		newTx("A", models.CategoryDining, "100", baseTime, card),
		newTx("A", models.CategoryDining, "50", baseTime.AddDate(0, 1, 0), card),
		newTx("B", models.CategoryFuel, "30", baseTime.AddDate(0, 2, 0), card),
	})

	assert.Equal(t, "50.00", report.MonthlyAvg[models.CategoryDining].StringFixed(2))
	assert.Equal(t, "10.00", report.MonthlyAvg[models.CategoryFuel].StringFixed(2))
}

func TestAnalyze_Empty(t *testing.T) {
	report := NewEngine(DefaultOptions()).Analyze(nil)

	assert.NotNil(t, report.CategoryTotals)
	assert.Empty(t, report.CategoryTotals)
	assert.Empty(t, report.Clusters)
	assert.True(t, report.TotalSpent.IsZero())
	assert.Equal(t, "", report.TopCategory)
}
