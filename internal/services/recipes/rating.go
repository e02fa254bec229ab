package recipes

import (
	"context"
	"fmt"
	"math"

	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
)

/*
Rate records one user's rating for a recipe and refreshes the recipe's
denormalized average.

Order of effects:
 1. Upsert the rating keyed by (recipeId, userId). A repeat call from the
    same user overwrites the previous value, so the operation is
    idempotent per user.
 2. Read back every rating for the recipe and recompute the average,
    rounded half-up to one decimal.
 3. Write the average onto the recipe document.

The upsert is atomic per document. Steps 2-3 can race with concurrent
ratings from other users; the stored average then converges on the next
successful Rate call. A failure after the upsert commits is reported as
ErrRatingAggregation so callers can retry the recompute without
re-submitting the rating.
*/
func Rate(db *mongodb.DB, ctx context.Context, recipeId, userId string, value int) (Recipe, error) {
	if value < MinRatingValue || value > MaxRatingValue {
		return Recipe{}, ErrInvalidRatingValue
	}

	recipeDb, err := db.GetRecipeById(ctx, recipeId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Recipe{}, ErrRecipeNotFound
		}
		return Recipe{}, err
	}

	if recipeDb.CreatedBy == userId {
		return Recipe{}, ErrOwnRecipeRating
	}

	if _, err := db.UpsertRating(ctx, recipeId, userId, value); err != nil {
		return Recipe{}, fmt.Errorf("upserting rating: %w", err)
	}

	// The rating is committed from here on; any failure below must keep it.
	allRatings, err := db.GetRatingsByRecipeId(ctx, recipeId)
	if err != nil {
		return Recipe{}, fmt.Errorf("%w: %v", ErrRatingAggregation, err)
	}

	// The upsert guarantees at least one rating, but never recompute from
	// an empty set regardless.
	if len(allRatings) == 0 {
		return MapDbRecipeToApiRecipe(recipeDb), nil
	}

	average := averageRating(allRatings)
	if err := db.SetRecipeRating(ctx, recipeId, average); err != nil {
		return Recipe{}, fmt.Errorf("%w: %v", ErrRatingAggregation, err)
	}

	recipeDb.Rating = average
	return MapDbRecipeToApiRecipe(recipeDb), nil
}

func averageRating(ratings []mongodb.RatingDb) float64 {
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	return roundHalfUp(float64(sum)/float64(len(ratings)), 1)
}

// roundHalfUp rounds x half-up at the given number of decimals, so an
// average of 3.666... is displayed as 3.7 and 3.25 as 3.3 (math.Round
// would also work at one decimal, but half-up is the contract for
// displayed averages).
func roundHalfUp(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Floor(x*shift+0.5) / shift
}
