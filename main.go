package main

import (
	"context"
	"log"

	"github.com/floydfdes/api-fridge-chef/internal/config"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"github.com/floydfdes/api-fridge-chef/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := mongodb.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	handler := server.NewServer(client, cfg)
	if err := server.ListenAndServe(handler, cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
