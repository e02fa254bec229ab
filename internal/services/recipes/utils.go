package recipes

import (
	"errors"
	"net/http"
)

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidRatingValue = errors.New("rating must be an integer between 1 and 5")
	ErrOwnRecipeRating    = errors.New("you cannot rate your own recipe")
	ErrRatingAggregation  = errors.New("rating stored but average update failed, retry the rating to refresh it")
	ErrNotRecipeOwner     = errors.New("you do not own this recipe")
	ErrInvalidCategory    = errors.New("unknown category key")
	ErrMissingCategory    = errors.New("one of category or subCategory is required")
)

var ErrorMap = map[error]int{
	ErrRecipeNotFound:     http.StatusNotFound,
	ErrInvalidRatingValue: http.StatusBadRequest,
	ErrOwnRecipeRating:    http.StatusForbidden,
	ErrRatingAggregation:  http.StatusInternalServerError,
	ErrNotRecipeOwner:     http.StatusForbidden,
	ErrInvalidCategory:    http.StatusBadRequest,
	ErrMissingCategory:    http.StatusBadRequest,
}
