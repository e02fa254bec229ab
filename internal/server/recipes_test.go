package server_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/floydfdes/api-fridge-chef/internal/api"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"github.com/floydfdes/api-fridge-chef/internal/services/recipes"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRecipeCrud(t *testing.T) {
	resetDB(t)

	owner := signupUser(t, "Recipe Owner", "owner@example.com")
	other := signupUser(t, "Other User", "other@example.com")

	t.Run("Adding a recipe classifies the sub-category and bumps recipesCount", func(t *testing.T) {
		recipe := addRecipe(t, newRecipeRequest("Shakshuka", "Savory breakfast skillet"), owner.Token)

		require.Equal(t, "Shakshuka", recipe.Name)
		require.Equal(t, recipes.CategoryBreakfast, recipe.Category)
		require.Equal(t, float64(0), recipe.Rating)
		require.Equal(t, owner.Id, recipe.CreatedBy)
		require.Len(t, recipe.Ingredients, 2)

		ownerDb := getUserFromDb(t, owner.Id)
		require.Equal(t, 1, ownerDb.RecipesCount)

		// Ingredient names were added to the catalog
		require.Equal(t, int64(2), countDocs(t, mongodb.IngredientsCollection, bson.M{}))
	})

	t.Run("Adding a recipe with an explicit category keeps it", func(t *testing.T) {
		req := newRecipeRequest("Midnight Toast", "")
		req.Category = string(recipes.CategorySnacksAndAppetizers)

		recipe := addRecipe(t, req, owner.Token)
		require.Equal(t, recipes.CategorySnacksAndAppetizers, recipe.Category)
	})

	t.Run("Adding a recipe with an unknown category key should return 400", func(t *testing.T) {
		req := newRecipeRequest("Mystery Dish", "")
		req.Category = "mainDishes"

		resp := doJSON(t, http.MethodPost, "/recipes", owner.Token, req)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var respBody api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Contains(t, respBody.ErrorMessage, recipes.ErrInvalidCategory.Error()[1:])
	})

	t.Run("Adding a recipe with neither category nor subCategory should return 400", func(t *testing.T) {
		req := newRecipeRequest("Uncategorized Dish", "")

		resp := doJSON(t, http.MethodPost, "/recipes", owner.Token, req)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Getting a recipe by id", func(t *testing.T) {
		created := addRecipe(t, newRecipeRequest("Carbonara", "Quick weeknight dinner"), owner.Token)

		fetched := getRecipe(t, created.Id, other.Token)
		require.Equal(t, created.Id, fetched.Id)
		require.Equal(t, "Carbonara", fetched.Name)
	})

	t.Run("Getting an unknown recipe should return 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/recipes/000000000000000000000000", other.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Updating a recipe as the owner", func(t *testing.T) {
		created := addRecipe(t, newRecipeRequest("Plain Salad", "Light lunch bowl"), owner.Token)

		newName := "Caesar Salad"
		newDifficulty := "Medium"
		resp := doJSON(t, http.MethodPut, "/recipes/"+created.Id, owner.Token, recipes.UpdateRecipeRequest{
			Name:       &newName,
			Difficulty: &newDifficulty,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated recipes.Recipe
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
		require.Equal(t, "Caesar Salad", updated.Name)
		require.Equal(t, "Medium", updated.Difficulty)
		// Untouched fields survive the partial update
		require.Equal(t, recipes.CategoryLunch, updated.Category)
		require.Equal(t, "Italian", updated.Cuisine)
	})

	t.Run("Updating someone else's recipe should return 403", func(t *testing.T) {
		created := addRecipe(t, newRecipeRequest("Owner Only", "Family dinner classic"), owner.Token)

		newName := "Hijacked"
		resp := doJSON(t, http.MethodPut, "/recipes/"+created.Id, other.Token, recipes.UpdateRecipeRequest{
			Name: &newName,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		var respBody api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Contains(t, respBody.ErrorMessage, recipes.ErrNotRecipeOwner.Error()[1:])
	})

	t.Run("Deleting someone else's recipe should return 403", func(t *testing.T) {
		created := addRecipe(t, newRecipeRequest("Not Yours", "Weekend brunch treat"), owner.Token)

		resp := doJSON(t, http.MethodDelete, "/recipes/"+created.Id, other.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Deleting a recipe removes its ratings and decrements recipesCount", func(t *testing.T) {
		created := addRecipe(t, newRecipeRequest("Doomed Dish", "Holiday party dessert"), owner.Token)

		rateResp := rateRecipe(t, created.Id, 5, other.Token)
		rateResp.Body.Close()
		require.Equal(t, http.StatusOK, rateResp.StatusCode)
		require.Equal(t, int64(1), countDocs(t, mongodb.RatingsCollection, bson.M{"recipeId": created.Id}))

		countBefore := getUserFromDb(t, owner.Id).RecipesCount

		resp := doJSON(t, http.MethodDelete, "/recipes/"+created.Id, owner.Token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		require.Equal(t, int64(0), countDocs(t, mongodb.RecipesCollection, bson.M{"_id": created.Id}))
		require.Equal(t, int64(0), countDocs(t, mongodb.RatingsCollection, bson.M{"recipeId": created.Id}))
		require.Equal(t, countBefore-1, getUserFromDb(t, owner.Id).RecipesCount)
	})
}

func TestRateRecipe(t *testing.T) {
	resetDB(t)

	owner := signupUser(t, "Recipe Owner", "owner@example.com")
	firstRater := signupUser(t, "First Rater", "first@example.com")
	secondRater := signupUser(t, "Second Rater", "second@example.com")

	recipe := addRecipe(t, newRecipeRequest("Lentil Curry", "Quick vegan dinner"), owner.Token)

	t.Run("Rating your own recipe should return 403", func(t *testing.T) {
		resp := rateRecipe(t, recipe.Id, 5, owner.Token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		var respBody api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Contains(t, respBody.ErrorMessage, recipes.ErrOwnRecipeRating.Error()[1:])
	})

	t.Run("Rating outside 1..5 should return 400", func(t *testing.T) {
		for _, value := range []int{0, 6, -1} {
			resp := rateRecipe(t, recipe.Id, value, firstRater.Token)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var respBody api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
			require.Contains(t, respBody.ErrorMessage, recipes.ErrInvalidRatingValue.Error()[1:])
		}

		// No rating document was written
		require.Equal(t, int64(0), countDocs(t, mongodb.RatingsCollection, bson.M{"recipeId": recipe.Id}))
	})

	t.Run("Boundary values 1 and 5 are accepted", func(t *testing.T) {
		resp := rateRecipe(t, recipe.Id, 1, firstRater.Token)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = rateRecipe(t, recipe.Id, 5, firstRater.Token)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Rating an unknown recipe should return 404", func(t *testing.T) {
		resp := rateRecipe(t, "000000000000000000000000", 4, firstRater.Token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Average is recomputed over all ratings", func(t *testing.T) {
		resp := rateRecipe(t, recipe.Id, 4, firstRater.Token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rated recipes.Recipe
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rated))
		require.Equal(t, 4.0, rated.Rating)

		resp2 := rateRecipe(t, recipe.Id, 5, secondRater.Token)
		defer resp2.Body.Close()
		require.Equal(t, http.StatusOK, resp2.StatusCode)

		var ratedAgain recipes.Recipe
		require.NoError(t, json.NewDecoder(resp2.Body).Decode(&ratedAgain))
		require.Equal(t, 4.5, ratedAgain.Rating)

		// Stored average matches the response
		require.Equal(t, 4.5, getRecipe(t, recipe.Id, firstRater.Token).Rating)
	})

	t.Run("Re-rating replaces the previous value instead of adding a row", func(t *testing.T) {
		resp := rateRecipe(t, recipe.Id, 3, firstRater.Token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rated recipes.Recipe
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rated))
		// (3 + 5) / 2
		require.Equal(t, 4.0, rated.Rating)

		require.Equal(t, int64(2), countDocs(t, mongodb.RatingsCollection, bson.M{"recipeId": recipe.Id}))
		require.Equal(t, int64(1), countDocs(t, mongodb.RatingsCollection, bson.M{
			"recipeId": recipe.Id,
			"userId":   firstRater.Id,
		}))
	})

	t.Run("Repeating the same value is a no-op for the average", func(t *testing.T) {
		before := getRecipe(t, recipe.Id, firstRater.Token).Rating

		resp := rateRecipe(t, recipe.Id, 3, firstRater.Token)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.Equal(t, before, getRecipe(t, recipe.Id, firstRater.Token).Rating)
	})
}

func TestBrowseRecipes(t *testing.T) {
	resetDB(t)

	owner := signupUser(t, "Browse Owner", "browse@example.com")

	pancakes := newRecipeRequest("Blueberry Pancakes", "Sweet breakfast stack")
	pancakes.Cuisine = "American"
	pancakes.Ingredients = []recipes.IngredientAmountReq{
		{Name: "Flour", Amount: "200g"},
		{Name: "Blueberries", Amount: "100g"},
	}
	addRecipe(t, pancakes, owner.Token)

	curry := newRecipeRequest("Chickpea Curry", "Quick vegan dinner")
	curry.Cuisine = "Indian"
	curry.Ingredients = []recipes.IngredientAmountReq{
		{Name: "Chickpeas", Amount: "400g"},
		{Name: "Coconut milk", Amount: "400ml"},
	}
	addRecipe(t, curry, owner.Token)

	t.Run("Listing recipes returns a page", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/recipes?page=1&limit=10", owner.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page recipes.RecipesPageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		require.Equal(t, 1, page.Page)
		require.Equal(t, 2, page.TotalResults)
		require.Len(t, page.Content, 2)
	})

	t.Run("Listing categories returns the full taxonomy", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/recipes/categories", owner.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody recipes.CategoriesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Len(t, respBody.Categories, 9)
		require.Contains(t, respBody.Categories, recipes.CategoryBreakfast)
		require.Contains(t, respBody.Categories, recipes.CategoryOther)
	})

	t.Run("Filtering by category", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/recipes/category/breakfast", owner.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody recipes.AllRecipesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Len(t, respBody.Recipes, 1)
		require.Equal(t, "Blueberry Pancakes", respBody.Recipes[0].Name)
	})

	t.Run("Filtering by an unknown category should return 400", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/recipes/category/nonsense", owner.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Search matches names and cuisines case-insensitively", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/recipes/search?searchTerm=indian", owner.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody recipes.AllRecipesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Len(t, respBody.Recipes, 1)
		require.Equal(t, "Chickpea Curry", respBody.Recipes[0].Name)
	})

	t.Run("Search without a term should return 400", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/recipes/search", owner.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Matching recipes by ingredient names", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/recipes/by-ingredients", owner.Token, recipes.ByIngredientsRequest{
			Ingredients: []string{"Chickpeas", "Flour"},
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody recipes.AllRecipesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Len(t, respBody.Recipes, 2)
	})

	t.Run("Unknown ingredient names match nothing", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/recipes/by-ingredients", owner.Token, recipes.ByIngredientsRequest{
			Ingredients: []string{"Dragonfruit"},
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody recipes.AllRecipesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Empty(t, respBody.Recipes)
	})
}
