package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/floydfdes/api-fridge-chef/internal/auth"
	"github.com/floydfdes/api-fridge-chef/internal/logx"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"github.com/floydfdes/api-fridge-chef/internal/services/users"
)

const defaultExpiresAt = time.Hour

func (api *API) SignupHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req auth.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := api.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := users.CreateAccount(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while creating user")
		return
	}

	token, err := auth.MakeJWT(user.Id, *api.Secret, defaultExpiresAt)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusCreated, auth.LoginResponse{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

func (api *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := api.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	userDb, err := api.Db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusUnauthorized, formatErrorMessage(auth.ErrInvalidCredentials))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while looking for user")
		return
	}

	if err := auth.CheckPasswordHash(userDb.PasswordHash, req.Password); err != nil {
		if statusCode, ok := getErrorStatusCode(auth.ErrorsMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	token, err := auth.MakeJWT(userDb.Id, *api.Secret, defaultExpiresAt)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusOK, auth.LoginResponse{
		Id:    userDb.Id,
		Name:  userDb.Name,
		Email: userDb.Email,
		Token: token,
	})
}

// LogoutHandler exists for API symmetry; with stateless JWTs the client
// just drops the token.
func (api *API) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Logged out successfully"})
}

func (api *API) RequestPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req auth.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := api.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	userDb, err := api.Db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, formatErrorMessage(users.ErrUserNotFound))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while looking for user")
		return
	}

	token, expires := auth.NewResetToken()
	if err := api.Db.SetResetToken(r.Context(), userDb.Id, token, expires); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while storing reset token")
		return
	}

	if err := api.Mailer.SendPasswordReset(userDb.Email, token); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error requesting password reset")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Password reset link sent to your email"})
}

func (api *API) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req auth.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := api.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	userDb, err := api.Db.GetUserByResetToken(r.Context(), req.Token)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusBadRequest, formatErrorMessage(auth.ErrInvalidResetToken))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while validating reset token")
		return
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	if err := api.Db.ResetPassword(r.Context(), userDb.Id, passwordHash); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error resetting password")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Password has been reset successfully"})
}
