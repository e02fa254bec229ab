package ingredients

import (
	"errors"
	"net/http"
)

type Ingredient struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type NewIngredientRequest struct {
	Name string `json:"name" validate:"required"`
}

type AllIngredientsResponse struct {
	Ingredients []Ingredient `json:"ingredients"`
}

var ErrAlreadyExists = errors.New("ingredient already exists")

var ErrorMap = map[error]int{
	ErrAlreadyExists: http.StatusConflict,
}
