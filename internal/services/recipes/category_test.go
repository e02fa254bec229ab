package recipes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected Category
	}{
		{"breakfast keyword wins over later rules", "Quick Vegan Breakfast Bowl", CategoryBreakfast},
		{"brunch maps to breakfast", "Sunday brunch ideas", CategoryBreakfast},
		{"lunch", "Packed lunch wraps", CategoryLunch},
		{"supper maps to dinner", "Hearty family supper", CategoryDinner},
		{"appetizer", "Cheese appetizer board", CategorySnacksAndAppetizers},
		{"containment matches plural desserts", "Summer desserts", CategoryDesserts},
		{"keto is dietary", "Keto friendly meal prep", CategoryHealthyAndDietary},
		{"dietary rule beats quick rule", "quick vegan stir fry", CategoryHealthyAndDietary},
		{"one-pot", "One-pot pasta", CategoryQuickAndEasy},
		{"christmas", "Christmas roast", CategorySpecialOccasion},
		{"case insensitive", "SUPPER CLUB", CategoryDinner},
		{"no keyword falls through", "Grandma's Secret Stew", CategoryOther},
		{"empty input", "", CategoryOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Classify(tc.input))
		})
	}
}

func TestAllCategories(t *testing.T) {
	all := AllCategories()

	require.Len(t, all, 9)
	require.Equal(t, CategoryBreakfast, all[0])
	require.Equal(t, CategoryOther, all[len(all)-1])
}

func TestIsValidCategory(t *testing.T) {
	require.True(t, IsValidCategory("breakfast"))
	require.True(t, IsValidCategory("other"))
	require.False(t, IsValidCategory("Breakfast"))
	require.False(t, IsValidCategory("mainDishes"))
	require.False(t, IsValidCategory(""))
}
