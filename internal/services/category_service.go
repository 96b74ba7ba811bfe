package services

import (
	"sort"
	"strings"

	"card-rewards-api/internal/models"
)

const (
	mccConfidence   = 0.95
	fuzzyMatchFloor = 0.7
)

type categoryService struct {
	mccMapping       map[string]string
	merchantPatterns []merchantPattern
}

type merchantPattern struct {
	pattern    string
	normalized string
	category   string
	confidence float64
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		mccMapping:       initMCCMapping(),
		merchantPatterns: initMerchantPatterns(),
	}
}

// CategoryFromMCC returns the category for a given MCC code
func (s *categoryService) CategoryFromMCC(mccCode string) string {
	if category, exists := s.mccMapping[strings.TrimSpace(mccCode)]; exists {
		return category
	}
	return models.CategoryOther
}

// CategorizeByMerchant categorizes based on merchant name. Longer patterns are
// tried first so "Amazon Prime" wins over "Amazon".
func (s *categoryService) CategorizeByMerchant(merchantName string) (string, float64) {
	normalized := normalizeForMatching(merchantName)
	if normalized == "" {
		return models.CategoryOther, 0.0
	}

	for _, p := range s.merchantPatterns {
		if strings.Contains(normalized, p.normalized) {
			return p.category, p.confidence
		}
	}

	fuzzyMerchant, score := s.FuzzyMatchMerchant(merchantName)
	if fuzzyMerchant != "" {
		for _, p := range s.merchantPatterns {
			if p.pattern == fuzzyMerchant {
				return p.category, score * p.confidence
			}
		}
	}

	return models.CategoryOther, 0.0
}

// FuzzyMatchMerchant performs fuzzy string matching on merchant names
func (s *categoryService) FuzzyMatchMerchant(input string) (string, float64) {
	input = normalizeForMatching(input)
	if input == "" {
		return "", 0.0
	}

	var bestMatch string
	var bestScore float64

	for _, p := range s.merchantPatterns {
		score := calculateSimilarity(input, p.normalized)
		if score > bestScore && score > fuzzyMatchFloor {
			bestScore = score
			bestMatch = p.pattern
		}
	}

	return bestMatch, bestScore
}

// Suggest picks a category from the MCC code when it is known, then the merchant name
func (s *categoryService) Suggest(merchantName, mccCode string) models.CategorySuggestion {
	if mccCode != "" {
		if category := s.CategoryFromMCC(mccCode); category != models.CategoryOther {
			return models.CategorySuggestion{
				Category:       category,
				Method:         models.CategorizationMethodMCC,
				Confidence:     mccConfidence,
				MatchedPattern: "MCC:" + mccCode,
			}
		}
	}

	normalized := normalizeForMatching(merchantName)
	for _, p := range s.merchantPatterns {
		if normalized != "" && strings.Contains(normalized, p.normalized) {
			return models.CategorySuggestion{
				Category:       p.category,
				Method:         models.CategorizationMethodMerchant,
				Confidence:     p.confidence,
				MatchedPattern: p.pattern,
			}
		}
	}

	if match, score := s.FuzzyMatchMerchant(merchantName); match != "" {
		for _, p := range s.merchantPatterns {
			if p.pattern == match {
				return models.CategorySuggestion{
					Category:       p.category,
					Method:         models.CategorizationMethodFuzzy,
					Confidence:     score * p.confidence,
					MatchedPattern: p.pattern,
				}
			}
		}
	}

	return models.CategorySuggestion{
		Category:   models.CategoryOther,
		Method:     models.CategorizationMethodFallback,
		Confidence: 0.0,
	}
}

// initMCCMapping initializes the MCC code to category mapping
func initMCCMapping() map[string]string {
	mapping := map[string]string{
		// Groceries
		"5411": models.CategoryGroceries,
		"5422": models.CategoryGroceries,
		"5441": models.CategoryGroceries,
		"5451": models.CategoryGroceries,
		"5462": models.CategoryGroceries,
		"5499": models.CategoryGroceries,

		// Dining
		"5811": models.CategoryDining,
		"5812": models.CategoryDining,
		"5813": models.CategoryDining,
		"5814": models.CategoryDining,

		// Fuel
		"5541": models.CategoryFuel,
		"5542": models.CategoryFuel,
		"5552": models.CategoryFuel,
		"5983": models.CategoryFuel,

		// Travel
		"4111": models.CategoryTravel,
		"4112": models.CategoryTravel,
		"4121": models.CategoryTravel,
		"4131": models.CategoryTravel,
		"4411": models.CategoryTravel,
		"4511": models.CategoryTravel,
		"4722": models.CategoryTravel,
		"7011": models.CategoryTravel,
		"7012": models.CategoryTravel,
		"7512": models.CategoryTravel,

		// Entertainment
		"5815": models.CategoryEntertainment,
		"5816": models.CategoryEntertainment,
		"5817": models.CategoryEntertainment,
		"5818": models.CategoryEntertainment,
		"7832": models.CategoryEntertainment,
		"7841": models.CategoryEntertainment,
		"7922": models.CategoryEntertainment,
		"7941": models.CategoryEntertainment,
		"7991": models.CategoryEntertainment,
		"7996": models.CategoryEntertainment,

		// Shopping
		"5311": models.CategoryShopping,
		"5331": models.CategoryShopping,
		"5399": models.CategoryShopping,
		"5611": models.CategoryShopping,
		"5621": models.CategoryShopping,
		"5651": models.CategoryShopping,
		"5661": models.CategoryShopping,
		"5691": models.CategoryShopping,
		"5712": models.CategoryShopping,
		"5732": models.CategoryShopping,
		"5944": models.CategoryShopping,
		"5945": models.CategoryShopping,
		"5999": models.CategoryShopping,

		// Online shopping
		"5964": models.CategoryOnlineShopping,
		"5965": models.CategoryOnlineShopping,
		"5966": models.CategoryOnlineShopping,
		"5967": models.CategoryOnlineShopping,
		"5968": models.CategoryOnlineShopping,
		"5969": models.CategoryOnlineShopping,

		// Bills & Utilities
		"4812": models.CategoryBillsUtilities,
		"4814": models.CategoryBillsUtilities,
		"4816": models.CategoryBillsUtilities,
		"4899": models.CategoryBillsUtilities,
		"4900": models.CategoryBillsUtilities,
		"6300": models.CategoryBillsUtilities,
	}

	// airline MCCs 3000-3299
	for code := 3000; code <= 3299; code++ {
		mapping[itoa4(code)] = models.CategoryTravel
	}

	return mapping
}

// initMerchantPatterns initializes common merchant patterns, longest first
func initMerchantPatterns() []merchantPattern {
	raw := map[string]struct {
		category   string
		confidence float64
	}{
		// Dining
		"Swiggy":    {models.CategoryDining, 0.95},
		"Zomato":    {models.CategoryDining, 0.95},
		"Starbucks": {models.CategoryDining, 0.95},
		"McDonald":  {models.CategoryDining, 0.95},
		"Domino":    {models.CategoryDining, 0.95},
		"Pizza Hut": {models.CategoryDining, 0.95},
		"KFC":       {models.CategoryDining, 0.90},
		"Haldiram":  {models.CategoryDining, 0.90},

		// Groceries
		"BigBasket":       {models.CategoryGroceries, 0.95},
		"Blinkit":         {models.CategoryGroceries, 0.95},
		"Zepto":           {models.CategoryGroceries, 0.95},
		"DMart":           {models.CategoryGroceries, 0.95},
		"Reliance Fresh":  {models.CategoryGroceries, 0.95},
		"Nature's Basket": {models.CategoryGroceries, 0.95},

		// Fuel
		"Indian Oil":       {models.CategoryFuel, 0.95},
		"HPCL":             {models.CategoryFuel, 0.95},
		"Bharat Petroleum": {models.CategoryFuel, 0.95},
		"BPCL":             {models.CategoryFuel, 0.95},
		"Shell":            {models.CategoryFuel, 0.90},

		// Travel
		"MakeMyTrip": {models.CategoryTravel, 0.95},
		"Goibibo":    {models.CategoryTravel, 0.95},
		"Cleartrip":  {models.CategoryTravel, 0.95},
		"IndiGo":     {models.CategoryTravel, 0.95},
		"Air India":  {models.CategoryTravel, 0.95},
		"Vistara":    {models.CategoryTravel, 0.95},
		"IRCTC":      {models.CategoryTravel, 0.95},
		"Uber":       {models.CategoryTravel, 0.85},
		"Ola":        {models.CategoryTravel, 0.80},
		"Marriott":   {models.CategoryTravel, 0.95},
		"Taj Hotels": {models.CategoryTravel, 0.95},

		// Entertainment
		"Netflix":         {models.CategoryEntertainment, 0.95},
		"Spotify":         {models.CategoryEntertainment, 0.95},
		"Hotstar":         {models.CategoryEntertainment, 0.95},
		"BookMyShow":      {models.CategoryEntertainment, 0.95},
		"PVR":             {models.CategoryEntertainment, 0.90},
		"Amazon Prime":    {models.CategoryEntertainment, 0.90},
		"YouTube Premium": {models.CategoryEntertainment, 0.95},

		// Online shopping
		"Amazon":   {models.CategoryOnlineShopping, 0.90},
		"Flipkart": {models.CategoryOnlineShopping, 0.95},
		"Myntra":   {models.CategoryOnlineShopping, 0.95},
		"Ajio":     {models.CategoryOnlineShopping, 0.95},
		"Nykaa":    {models.CategoryOnlineShopping, 0.95},
		"Meesho":   {models.CategoryOnlineShopping, 0.95},

		// Shopping
		"Lifestyle":        {models.CategoryShopping, 0.85},
		"Shoppers Stop":    {models.CategoryShopping, 0.95},
		"Croma":            {models.CategoryShopping, 0.95},
		"Reliance Digital": {models.CategoryShopping, 0.95},
		"Ikea":             {models.CategoryShopping, 0.95},
		"Decathlon":        {models.CategoryShopping, 0.95},

		// Bills & Utilities
		"Airtel":            {models.CategoryBillsUtilities, 0.95},
		"Jio":               {models.CategoryBillsUtilities, 0.90},
		"Vodafone":          {models.CategoryBillsUtilities, 0.95},
		"BSNL":              {models.CategoryBillsUtilities, 0.95},
		"Tata Power":        {models.CategoryBillsUtilities, 0.95},
		"Adani Electricity": {models.CategoryBillsUtilities, 0.95},
		"BESCOM":            {models.CategoryBillsUtilities, 0.95},
		"Electricity":       {models.CategoryBillsUtilities, 0.85},
		"Broadband":         {models.CategoryBillsUtilities, 0.85},
		"Insurance":         {models.CategoryBillsUtilities, 0.80},
	}

	patterns := make([]merchantPattern, 0, len(raw))
	for pattern, mapping := range raw {
		patterns = append(patterns, merchantPattern{
			pattern:    pattern,
			normalized: normalizeForMatching(pattern),
			category:   mapping.category,
			confidence: mapping.confidence,
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i].normalized) != len(patterns[j].normalized) {
			return len(patterns[i].normalized) > len(patterns[j].normalized)
		}
		return patterns[i].normalized < patterns[j].normalized
	})

	return patterns
}

func itoa4(n int) string {
	digits := []byte{'0', '0', '0', '0'}
	for i := 3; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
// using two rolling rows.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer("-", "", "_", "", " ", "", "'", "", ".", "", "*", "")
	return replacer.Replace(s)
}
