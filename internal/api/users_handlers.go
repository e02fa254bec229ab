package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/floydfdes/api-fridge-chef/internal/auth"
	"github.com/floydfdes/api-fridge-chef/internal/logx"
	"github.com/floydfdes/api-fridge-chef/internal/services/users"
)

func (api *API) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	allUsers, err := users.GetAllUsers(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, users.AllUsersResponse{Users: allUsers})
}

func (api *API) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	userId := r.PathValue("id")
	if userId == "" {
		respondWithError(w, http.StatusBadRequest, "User id is required")
		return
	}

	user, err := users.GetUserById(api.Db, r.Context(), userId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, fmt.Sprintf("User with id %s not found", userId))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting user")
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

func (api *API) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	userId := r.PathValue("id")
	if userId == "" {
		respondWithError(w, http.StatusBadRequest, "User id is required")
		return
	}

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	updatedUser, err := users.UpdateProfile(api.Db, r.Context(), userId, currentUser.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update user profile")
		return
	}

	respondWithJSON(w, http.StatusOK, updatedUser)
}

func (api *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	userId := r.PathValue("id")
	if userId == "" {
		respondWithError(w, http.StatusBadRequest, "User id is required")
		return
	}

	if err := users.DeleteAccount(api.Db, r.Context(), userId, currentUser.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api *API) FollowUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	followeeId := r.PathValue("id")
	if followeeId == "" {
		respondWithError(w, http.StatusBadRequest, "User id is required")
		return
	}

	if err := users.Follow(api.Db, r.Context(), currentUser.Id, followeeId); err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while following user")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Now following user %s", followeeId)})
}

func (api *API) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	followeeId := r.PathValue("id")
	if followeeId == "" {
		respondWithError(w, http.StatusBadRequest, "User id is required")
		return
	}

	if err := users.Unfollow(api.Db, r.Context(), currentUser.Id, followeeId); err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while unfollowing user")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Unfollowed user %s", followeeId)})
}
