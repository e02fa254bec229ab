package recipes

import "strings"

// Category is one of the fixed top-level recipe buckets.
type Category string

const (
	CategoryBreakfast           Category = "breakfast"
	CategoryLunch               Category = "lunch"
	CategoryDinner              Category = "dinner"
	CategorySnacksAndAppetizers Category = "snacksAndAppetizers"
	CategoryDesserts            Category = "desserts"
	CategoryHealthyAndDietary   Category = "healthyAndDietary"
	CategoryQuickAndEasy        Category = "quickAndEasy"
	CategorySpecialOccasion     Category = "specialOccasion"
	CategoryOther               Category = "other"
)

type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules is evaluated in order; the first rule with any matching
// keyword wins. Keywords overlap across rules, so the order is the
// tie-break and must not be reshuffled.
var categoryRules = []categoryRule{
	{CategoryBreakfast, []string{"breakfast", "morning meal", "brunch"}},
	{CategoryLunch, []string{"lunch", "midday meal"}},
	{CategoryDinner, []string{"dinner", "supper", "evening meal"}},
	{CategorySnacksAndAppetizers, []string{"snack", "appetizer", "finger food", "small bites"}},
	{CategoryDesserts, []string{"dessert", "sweets", "pastry"}},
	{CategoryHealthyAndDietary, []string{"vegan", "vegetarian", "gluten-free", "low-calorie", "low-carb", "paleo", "keto", "healthy"}},
	{CategoryQuickAndEasy, []string{"quick", "easy", "fast", "one-pot", "simple"}},
	{CategorySpecialOccasion, []string{"holiday", "christmas", "thanksgiving", "party", "celebration", "seasonal", "special"}},
}

// Classify buckets a free-text sub-category label into exactly one
// Category. Matching is case-insensitive substring containment, not
// whole-word: "desserts" hits the "dessert" keyword. Inputs matching no
// rule fall through to CategoryOther.
func Classify(subCategory string) Category {
	lower := strings.ToLower(subCategory)

	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}

	return CategoryOther
}

// AllCategories returns the canonical category keys in rule order, with
// the fallback bucket last.
func AllCategories() []Category {
	all := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		all = append(all, rule.category)
	}
	return append(all, CategoryOther)
}

// IsValidCategory reports whether key is one of the canonical categories.
func IsValidCategory(key string) bool {
	for _, c := range AllCategories() {
		if string(c) == key {
			return true
		}
	}
	return false
}
