package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAllIndexes creates all indexes for the users, ingredients, ratings
// and follows collections.
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateUserIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	if err := CreateIngredientIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create ingredient indexes: %w", err)
	}

	if err := CreateRatingIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create rating indexes: %w", err)
	}

	if err := CreateFollowIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create follow indexes: %w", err)
	}

	return nil
}

// CreateUserIndexes creates indexes for the users collection
func CreateUserIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(UsersCollection)
	usersEmailIndexName := "email_unique"

	// Create unique index on email (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(usersEmailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"email": bson.M{"$type": "string"}},
					{"email": bson.M{"$gt": ""}},
				},
			}),
	}
	return createIndexIfNotExists(ctx, coll, emailIndex, usersEmailIndexName, reset)
}

// CreateIngredientIndexes creates indexes for the ingredients collection
func CreateIngredientIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(IngredientsCollection)
	ingredientsIndexName := "name_unique"

	nameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(ingredientsIndexName),
	}
	return createIndexIfNotExists(ctx, coll, nameIndex, ingredientsIndexName, reset)
}

// CreateRatingIndexes creates indexes for the ratings collection.
// The unique (recipeId, userId) index is what enforces one rating per user
// per recipe; the upsert in UpsertRating relies on it.
func CreateRatingIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(RatingsCollection)
	ratingsIndexName := "recipeId_and_userId_unique"

	ratingsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "recipeId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(ratingsIndexName),
	}
	return createIndexIfNotExists(ctx, coll, ratingsIndex, ratingsIndexName, reset)
}

// CreateFollowIndexes creates indexes for the follows collection
func CreateFollowIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(FollowsCollection)
	followsIndexName := "followerId_and_followeeId_unique"

	followsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "followerId", Value: 1}, {Key: "followeeId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(followsIndexName),
	}
	return createIndexIfNotExists(ctx, coll, followsIndex, followsIndexName, reset)
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	// List existing indexes
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	// Check if index already exists
	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		if !reset {
			fmt.Printf("Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
			return nil
		}
		// Delete the existing index
		_, err := coll.Indexes().DropOne(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		fmt.Printf("Deleted index '%s' on collection '%s'\n", indexName, coll.Name())
	}

	// Create the index
	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
