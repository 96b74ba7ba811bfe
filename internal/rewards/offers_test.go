package rewards

import (
	"testing"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendOffers(t *testing.T) {
	catalog := DefaultOfferCatalog()
	owned := []models.Card{newCard("hdfc bank", "Swiggy  HDFC Bank Credit Card", 1)}
	card := uuid.New()
	txs := []models.Transaction{
		newTx("Zomato", models.CategoryDining, "1000", baseTime, card),
		newTx("Indigo", models.CategoryTravel, "500", baseTime, card),
	}

	offers := RecommendOffers(catalog, owned, txs, 3)

	require.Len(t, offers, 3)
	for _, o := range offers {
		assert.NotEqual(t, "hdfc_swiggy", o.ID)
	}

	// sbi 1000*5, vistara 500*6, regalia 500*4
	assert.Equal(t, "sbi_simplyclick", offers[0].ID)
	assert.Equal(t, "5000.00", offers[0].RelevanceScore.StringFixed(2))
	assert.Equal(t, []string{models.CategoryDining}, offers[0].MatchingCategories)
	assert.Equal(t, "axis_vistara", offers[1].ID)
	assert.Equal(t, "hdfc_regalia", offers[2].ID)
}

func TestRecommendOffers_NoSpendKeepsCatalogueOrderById(t *testing.T) {
	offers := RecommendOffers(DefaultOfferCatalog(), nil, nil, 0)

	require.Len(t, offers, len(DefaultOfferCatalog()))
	assert.Equal(t, "axis_flipkart", offers[0].ID)
	for _, o := range offers {
		assert.True(t, o.RelevanceScore.IsZero())
	}
}

func TestCoBrandedOffers(t *testing.T) {
	offers := CoBrandedOffers(DefaultOfferCatalog())

	assert.Len(t, offers, 4)
	for _, o := range offers {
		assert.NotEmpty(t, o.CoBrand)
	}
}

func TestSpendByCategory(t *testing.T) {
	card := uuid.New()
	spend := SpendByCategory([]models.Transaction{
		newTx("a", models.CategoryFuel, "10.10", baseTime, card),
		newTx("b", models.CategoryFuel, "0.905", baseTime, card),
	})

	assert.Equal(t, "11.01", spend[models.CategoryFuel].StringFixed(2))
}
