package recipes

import "github.com/floydfdes/api-fridge-chef/internal/mongodb"

func MapDbRecipeToApiRecipe(dbRecipe mongodb.RecipeDb) Recipe {
	ingredients := make([]RecipeIngredient, 0, len(dbRecipe.Ingredients))
	for _, ing := range dbRecipe.Ingredients {
		ingredients = append(ingredients, RecipeIngredient{
			IngredientId: ing.IngredientId,
			Amount:       ing.Amount,
		})
	}

	return Recipe{
		Id:           dbRecipe.Id,
		Name:         dbRecipe.Name,
		Cuisine:      dbRecipe.Cuisine,
		Category:     Category(dbRecipe.Category),
		Rating:       dbRecipe.Rating,
		ImageUrl:     dbRecipe.ImageUrl,
		Difficulty:   dbRecipe.Difficulty,
		Ingredients:  ingredients,
		Instructions: dbRecipe.Instructions,
		CreatedBy:    dbRecipe.CreatedBy,
		CreatedAt:    dbRecipe.CreatedAt,
		UpdatedAt:    dbRecipe.UpdatedAt,
	}
}

func mapDbRecipesToApiRecipes(dbRecipes []mongodb.RecipeDb) []Recipe {
	recipes := make([]Recipe, 0, len(dbRecipes))
	for _, dbRecipe := range dbRecipes {
		recipes = append(recipes, MapDbRecipeToApiRecipe(dbRecipe))
	}
	return recipes
}
