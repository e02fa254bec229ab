package server

import (
	"log"
	"net/http"

	"github.com/floydfdes/api-fridge-chef/internal/api"
	"github.com/floydfdes/api-fridge-chef/internal/config"
	"github.com/floydfdes/api-fridge-chef/internal/mailer"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer wires the full handler chain: routes, auth, request logging.
func NewServer(client *mongo.Client, cfg config.Config) http.Handler {
	db := mongodb.NewDB(client)
	apiHandlers := api.NewAPI(db, cfg.JWTSecret, mailer.New(cfg.SMTP))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", apiHandlers.RootHandler)

	mux.HandleFunc("POST /auth/signup", apiHandlers.SignupHandler)
	mux.HandleFunc("POST /auth/login", apiHandlers.LoginHandler)
	mux.HandleFunc("POST /auth/logout", apiHandlers.LogoutHandler)
	mux.HandleFunc("POST /auth/request-password-reset", apiHandlers.RequestPasswordResetHandler)
	mux.HandleFunc("POST /auth/reset-password", apiHandlers.ResetPasswordHandler)

	mux.HandleFunc("GET /recipes", apiHandlers.GetRecipes)
	mux.HandleFunc("GET /recipes/search", apiHandlers.SearchRecipes)
	mux.HandleFunc("POST /recipes/by-ingredients", apiHandlers.GetRecipesByIngredients)
	mux.HandleFunc("GET /recipes/categories", apiHandlers.GetCategories)
	mux.HandleFunc("GET /recipes/category/{category}", apiHandlers.GetRecipesByCategory)
	mux.HandleFunc("GET /recipes/{id}", apiHandlers.GetRecipeById)
	mux.HandleFunc("POST /recipes", apiHandlers.AddRecipe)
	mux.HandleFunc("PUT /recipes/{id}", apiHandlers.UpdateRecipe)
	mux.HandleFunc("DELETE /recipes/{id}", apiHandlers.DeleteRecipe)
	mux.HandleFunc("POST /recipes/{id}/rate", apiHandlers.RateRecipe)

	mux.HandleFunc("GET /users", apiHandlers.GetUsers)
	mux.HandleFunc("GET /users/{id}", apiHandlers.GetUserProfile)
	mux.HandleFunc("PUT /users/{id}", apiHandlers.UpdateUserProfile)
	mux.HandleFunc("DELETE /users/{id}", apiHandlers.DeleteUser)
	mux.HandleFunc("POST /users/{id}/follow", apiHandlers.FollowUser)
	mux.HandleFunc("POST /users/{id}/unfollow", apiHandlers.UnfollowUser)

	mux.HandleFunc("GET /ingredients", apiHandlers.GetIngredients)
	mux.HandleFunc("POST /ingredients", apiHandlers.AddIngredient)

	mux.HandleFunc("POST /upload", apiHandlers.UploadFridgeImage)

	authMiddleware := AuthMiddleware(cfg.JWTSecret, db)
	return RequestIdMiddleware(authMiddleware(mux))
}

// ListenAndServe starts the HTTP server on the configured port.
func ListenAndServe(handler http.Handler, port string) error {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	log.Printf("Server is running on port %s", port)
	return server.ListenAndServe()
}
