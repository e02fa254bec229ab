package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	reset := flag.Bool("reset", false, "drop and recreate existing indexes")
	flag.Parse()

	ctx := context.Background()
	dbClient, err := mongodb.ConnectMongo(ctx, os.Getenv("MONGODB_URI"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)

	if err := mongodb.CreateAllIndexes(ctx, db.Database(), *reset); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	fmt.Println("All indexes created successfully!")
}
