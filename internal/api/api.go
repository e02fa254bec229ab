package api

import (
	"github.com/floydfdes/api-fridge-chef/internal/mailer"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"github.com/go-playground/validator/v10"
)

type API struct {
	Db       *mongodb.DB
	Secret   *string
	Mailer   *mailer.Mailer
	validate *validator.Validate
}

func NewAPI(db *mongodb.DB, secret string, m *mailer.Mailer) *API {
	return &API{
		Db:       db,
		Secret:   &secret,
		Mailer:   m,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// PublicPaths lists "METHOD PATH" routes the auth middleware lets through
// without a token.
var PublicPaths = map[string]bool{
	"GET /":                             true,
	"POST /auth/signup":                 true,
	"POST /auth/login":                  true,
	"POST /auth/logout":                 true,
	"POST /auth/request-password-reset": true,
	"POST /auth/reset-password":         true,
}
