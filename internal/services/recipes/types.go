package recipes

import (
	"time"

	"github.com/floydfdes/api-fridge-chef/internal/generics"
)

type Recipe struct {
	Id           string             `json:"id"`
	Name         string             `json:"name"`
	Cuisine      string             `json:"cuisine"`
	Category     Category           `json:"category"`
	Rating       float64            `json:"rating"`
	ImageUrl     string             `json:"imageUrl"`
	Difficulty   string             `json:"difficulty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions string             `json:"instructions"`
	CreatedBy    string             `json:"createdBy"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type RecipeIngredient struct {
	IngredientId string `json:"ingredientId"`
	Name         string `json:"name,omitempty"`
	Amount       string `json:"amount"`
}

type NewRecipeRequest struct {
	Name    string `json:"name" validate:"required"`
	Cuisine string `json:"cuisine" validate:"required"`
	// Either a canonical category key or free-text subCategory must be set;
	// the sub-category is classified into a canonical key.
	Category     string                `json:"category"`
	SubCategory  string                `json:"subCategory"`
	ImageUrl     string                `json:"imageUrl" validate:"required"`
	Difficulty   string                `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Ingredients  []IngredientAmountReq `json:"ingredients" validate:"required,min=1,dive"`
	Instructions string                `json:"instructions" validate:"required"`
}

type UpdateRecipeRequest struct {
	Name         *string               `json:"name,omitempty"`
	Cuisine      *string               `json:"cuisine,omitempty"`
	Category     *string               `json:"category,omitempty"`
	SubCategory  *string               `json:"subCategory,omitempty"`
	ImageUrl     *string               `json:"imageUrl,omitempty"`
	Difficulty   *string               `json:"difficulty,omitempty"`
	Ingredients  []IngredientAmountReq `json:"ingredients,omitempty"`
	Instructions *string               `json:"instructions,omitempty"`
}

type IngredientAmountReq struct {
	Name   string `json:"name" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

type RateRecipeRequest struct {
	Rating int `json:"rating"`
}

type ByIngredientsRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
}

type RecipesPageResponse = generics.Page[Recipe]

type AllRecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
