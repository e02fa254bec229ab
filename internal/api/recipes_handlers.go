package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/floydfdes/api-fridge-chef/internal/auth"
	"github.com/floydfdes/api-fridge-chef/internal/generics"
	"github.com/floydfdes/api-fridge-chef/internal/images"
	"github.com/floydfdes/api-fridge-chef/internal/logx"
	"github.com/floydfdes/api-fridge-chef/internal/services/recipes"
)

func (api *API) GetRecipes(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	page := generics.StringToInt(r.URL.Query().Get("page"))
	limit := generics.StringToInt(r.URL.Query().Get("limit"))

	recipesPage, err := recipes.GetRecipesPage(api.Db, r.Context(), page, limit)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, recipesPage)
}

func (api *API) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	term := strings.TrimSpace(r.URL.Query().Get("searchTerm"))
	if term == "" {
		respondWithError(w, http.StatusBadRequest, "Search term is required")
		return
	}

	found, err := recipes.Search(api.Db, r.Context(), term)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, recipes.AllRecipesResponse{Recipes: found})
}

func (api *API) GetRecipesByIngredients(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req recipes.ByIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := api.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	found, err := recipes.GetByIngredients(api.Db, r.Context(), req.Ingredients)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, recipes.AllRecipesResponse{Recipes: found})
}

func (api *API) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, recipes.CategoriesResponse{Categories: recipes.AllCategories()})
}

func (api *API) GetRecipesByCategory(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	category := r.PathValue("category")
	if category == "" {
		respondWithError(w, http.StatusBadRequest, "Category is required")
		return
	}

	found, err := recipes.GetByCategory(api.Db, r.Context(), category)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(recipes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, recipes.AllRecipesResponse{Recipes: found})
}

func (api *API) GetRecipeById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	recipeId := r.PathValue("id")
	if recipeId == "" {
		respondWithError(w, http.StatusBadRequest, "Recipe id is required")
		return
	}

	recipe, err := recipes.GetRecipeById(api.Db, r.Context(), recipeId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(recipes.ErrorMap, err); ok {
			respondWithError(w, statusCode, fmt.Sprintf("Recipe with id %s not found", recipeId))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting recipe")
		return
	}

	respondWithJSON(w, http.StatusOK, recipe)
}

func (api *API) AddRecipe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	var req recipes.NewRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := api.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	newRecipe, err := recipes.AddRecipe(api.Db, r.Context(), req, currentUser.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(recipes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		if statusCode, ok := getErrorStatusCode(images.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding recipe")
		return
	}

	respondWithJSON(w, http.StatusCreated, newRecipe)
}

func (api *API) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	recipeId := r.PathValue("id")
	if recipeId == "" {
		respondWithError(w, http.StatusBadRequest, "Recipe id is required")
		return
	}

	var req recipes.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	updatedRecipe, err := recipes.UpdateRecipe(api.Db, r.Context(), recipeId, currentUser.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(recipes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		if statusCode, ok := getErrorStatusCode(images.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update recipe")
		return
	}

	respondWithJSON(w, http.StatusOK, updatedRecipe)
}

func (api *API) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	recipeId := r.PathValue("id")
	if recipeId == "" {
		respondWithError(w, http.StatusBadRequest, "Recipe id is required")
		return
	}

	if err := recipes.DeleteRecipe(api.Db, r.Context(), recipeId, currentUser.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(recipes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting recipe")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api *API) RateRecipe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	recipeId := r.PathValue("id")
	if recipeId == "" {
		respondWithError(w, http.StatusBadRequest, "Recipe id is required")
		return
	}

	var req recipes.RateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	ratedRecipe, err := recipes.Rate(api.Db, r.Context(), recipeId, currentUser.Id, req.Rating)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(recipes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while rating recipe")
		return
	}

	respondWithJSON(w, http.StatusOK, ratedRecipe)
}
