package rewards

import (
	"sort"

	"card-rewards-api/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultOfferCatalog is the list of cards users can be pointed to.
func DefaultOfferCatalog() []models.CardOffer {
	return []models.CardOffer{
		{
			ID:           "hdfc_regalia",
			BankName:     "HDFC Bank",
			CardName:     "Regalia Credit Card",
			CardType:     "premium",
			AnnualFee:    decimal.NewFromInt(2500),
			RewardRate:   decimal.NewFromInt(4),
			WelcomeBonus: 10000,
			Categories:   []string{models.CategoryTravel, models.CategoryShopping, models.CategoryOnlineShopping},
			Benefits: []string{
				"4 reward points per 150 spent",
				"10,000 bonus points on 5L annual spend",
				"Airport lounge access",
			},
			BestFor:        "Travel & Shopping",
			ApplicationURL: "https://www.hdfcbank.com/personal/pay/cards/credit-cards/regalia-credit-card",
		},
		{
			ID:           "sbi_simplyclick",
			BankName:     "SBI Card",
			CardName:     "SimplyCLICK Credit Card",
			CardType:     "rewards",
			AnnualFee:    decimal.NewFromInt(499),
			RewardRate:   decimal.NewFromInt(5),
			WelcomeBonus: 2000,
			Categories:   []string{models.CategoryOnlineShopping, models.CategoryDining},
			Benefits: []string{
				"10x reward points on partner brands",
				"5x on other online spends",
				"1% fuel surcharge waiver",
			},
			BestFor:        "Online Shopping",
			ApplicationURL: "https://www.sbicard.com/en/personal/credit-cards/shopping/simplyclick-advantage-credit-card.page",
		},
		{
			ID:           "icici_amazon",
			BankName:     "ICICI Bank",
			CardName:     "Amazon Pay ICICI Credit Card",
			CardType:     "cashback",
			AnnualFee:    decimal.Zero,
			RewardRate:   decimal.NewFromInt(5),
			WelcomeBonus: 2000,
			Categories:   []string{models.CategoryOnlineShopping},
			Benefits: []string{
				"5% cashback on Amazon for Prime members",
				"2% on Amazon without Prime",
				"1% on other spends",
			},
			BestFor:        "Amazon Shopping",
			CoBrand:        "Amazon",
			ApplicationURL: "https://www.icicibank.com/Personal-Banking/cards/credit-cards/amazon-pay-credit-card",
		},
		{
			ID:           "axis_flipkart",
			BankName:     "Axis Bank",
			CardName:     "Flipkart Axis Bank Credit Card",
			CardType:     "cashback",
			AnnualFee:    decimal.NewFromInt(500),
			RewardRate:   decimal.NewFromInt(4),
			WelcomeBonus: 500,
			Categories:   []string{models.CategoryOnlineShopping},
			Benefits: []string{
				"4% unlimited cashback on Flipkart",
				"1.5% on groceries and bill payments",
				"1% on other spends",
			},
			BestFor:        "Flipkart Shopping",
			CoBrand:        "Flipkart",
			ApplicationURL: "https://www.axisbank.com/retail/cards/credit-card/flipkart-axis-bank-credit-card",
		},
		{
			ID:           "axis_vistara",
			BankName:     "Axis Bank",
			CardName:     "Vistara Infinite Credit Card",
			CardType:     "travel",
			AnnualFee:    decimal.NewFromInt(10000),
			RewardRate:   decimal.NewFromInt(6),
			WelcomeBonus: 15000,
			Categories:   []string{models.CategoryTravel},
			Benefits: []string{
				"15,000 Club Vistara points annually",
				"2 complimentary tickets on renewal",
				"Unlimited lounge access",
			},
			BestFor:        "Frequent Flyers",
			CoBrand:        "Vistara",
			ApplicationURL: "https://www.axisbank.com/retail/cards/credit-card/vistara-credit-card",
		},
		{
			ID:           "hdfc_swiggy",
			BankName:     "HDFC Bank",
			CardName:     "Swiggy HDFC Bank Credit Card",
			CardType:     "cashback",
			AnnualFee:    decimal.NewFromInt(500),
			RewardRate:   decimal.NewFromInt(10),
			WelcomeBonus: 250,
			Categories:   []string{models.CategoryDining},
			Benefits: []string{
				"10% cashback on Swiggy",
				"5% cashback on partner food and ride apps",
				"1% on other spends",
			},
			BestFor:        "Food Delivery",
			CoBrand:        "Swiggy",
			ApplicationURL: "https://www.hdfcbank.com/personal/pay/cards/credit-cards/swiggy-hdfc-bank-credit-card",
		},
	}
}

// CoBrandedOffers returns the catalogue entries tied to a partner brand.
func CoBrandedOffers(catalog []models.CardOffer) []models.CardOffer {
	out := make([]models.CardOffer, 0)
	for _, offer := range catalog {
		if offer.CoBrand != "" {
			out = append(out, offer)
		}
	}
	return out
}

// RecommendOffers scores catalogue cards the user does not already hold by
// summing, over each offer category, the user's spend there times the
// offer's reward rate. Highest score first, at most limit entries.
func RecommendOffers(catalog []models.CardOffer, owned []models.Card, transactions []models.Transaction, limit int) []models.CardOffer {
	spend := SpendByCategory(transactions)

	held := map[string]struct{}{}
	for _, card := range owned {
		held[offerKey(card.BankName, card.CardName)] = struct{}{}
	}

	scored := make([]models.CardOffer, 0, len(catalog))
	for _, offer := range catalog {
		if _, ok := held[offerKey(offer.BankName, offer.CardName)]; ok {
			continue
		}

		score := decimal.Zero
		matching := make([]string, 0)
		for _, category := range offer.Categories {
			amount, ok := spend[category]
			if !ok {
				continue
			}
			score = score.Add(amount.Mul(offer.RewardRate))
			matching = append(matching, category)
		}

		offer.RelevanceScore = score.Round(2)
		offer.MatchingCategories = matching
		scored = append(scored, offer)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if !scored[i].RelevanceScore.Equal(scored[j].RelevanceScore) {
			return scored[i].RelevanceScore.GreaterThan(scored[j].RelevanceScore)
		}
		return scored[i].ID < scored[j].ID
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func offerKey(bank, name string) string {
	return NormalizeMerchant(bank) + "|" + NormalizeMerchant(name)
}

// SpendByCategory sums amounts per category, rounded to 2 places.
func SpendByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		out[tx.Category] = out[tx.Category].Add(tx.Amount)
	}
	for k, v := range out {
		out[k] = v.Round(2)
	}
	return out
}
