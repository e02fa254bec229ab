package api

import (
	"encoding/json"
	"net/http"

	"github.com/floydfdes/api-fridge-chef/internal/logx"
	"github.com/floydfdes/api-fridge-chef/internal/services/ingredients"
)

func (api *API) GetIngredients(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	all, err := ingredients.GetAll(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, ingredients.AllIngredientsResponse{Ingredients: all})
}

func (api *API) AddIngredient(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req ingredients.NewIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := api.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	saved, err := ingredients.Add(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(ingredients.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding ingredient")
		return
	}

	respondWithJSON(w, http.StatusCreated, saved)
}
