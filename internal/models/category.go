package models

import "strings"

// Spending categories shared by card bonus categories and transactions
const (
	CategoryDining         = "DINING"
	CategoryTravel         = "TRAVEL"
	CategoryGroceries      = "GROCERIES"
	CategoryFuel           = "FUEL"
	CategoryShopping       = "SHOPPING"
	CategoryOnlineShopping = "ONLINE_SHOPPING"
	CategoryEntertainment  = "ENTERTAINMENT"
	CategoryBillsUtilities = "BILLS_UTILITIES"
	CategoryOther          = "OTHER"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryDining,
		CategoryTravel,
		CategoryGroceries,
		CategoryFuel,
		CategoryShopping,
		CategoryOnlineShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryOther,
	}
}

var categoryLabels = map[string]string{
	CategoryDining:         "Food & Dining",
	CategoryTravel:         "Travel",
	CategoryGroceries:      "Groceries",
	CategoryFuel:           "Fuel",
	CategoryShopping:       "Shopping",
	CategoryOnlineShopping: "Online Shopping",
	CategoryEntertainment:  "Entertainment",
	CategoryBillsUtilities: "Bills & Utilities",
	CategoryOther:          "Other",
}

// IsValidCategory checks if a category string is a canonical category code
func IsValidCategory(category string) bool {
	_, ok := categoryLabels[category]
	return ok
}

// CategoryLabel returns the display label for a category code.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// NormalizeCategory maps a code or display label, in any case, to its
// canonical code. "Food & Dining", "food_&_dining" and "dining" all map to DINING.
func NormalizeCategory(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	code := strings.ToUpper(strings.Join(strings.Fields(trimmed), "_"))
	if IsValidCategory(code) {
		return code, true
	}

	for c, label := range categoryLabels {
		if strings.EqualFold(label, trimmed) {
			return c, true
		}
	}

	switch code {
	case "FOOD_&_DINING", "FOOD", "RESTAURANTS":
		return CategoryDining, true
	case "BILLS_&_UTILITIES", "BILLS", "UTILITIES":
		return CategoryBillsUtilities, true
	case "ONLINE":
		return CategoryOnlineShopping, true
	}

	return "", false
}

// Categorization methods, most to least reliable
const (
	CategorizationMethodMCC      = "mcc"
	CategorizationMethodMerchant = "merchant"
	CategorizationMethodFuzzy    = "fuzzy"
	CategorizationMethodFallback = "fallback"
)

// CategorySuggestion is the category inferred for a merchant
type CategorySuggestion struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matched_pattern,omitempty"`
}
