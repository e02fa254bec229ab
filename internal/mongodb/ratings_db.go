package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type RatingDb struct {
	Id        string    `json:"id" bson:"_id"`
	RecipeId  string    `json:"recipeId" bson:"recipeId"`
	UserId    string    `json:"userId" bson:"userId"`
	Value     int       `json:"value" bson:"value"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

// UpsertRating creates or overwrites the single rating a user holds for a
// recipe. The write is one UpdateOne with upsert, so it is atomic for the
// (recipeId, userId) pair and idempotent for repeated values.
func (db *DB) UpsertRating(ctx context.Context, recipeId, userId string, value int) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"recipeId": recipeId, "userId": userId}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"value":     value,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"recipeId":  recipeId,
			"userId":    userId,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return RatingDb{}, err
	}

	var rating RatingDb
	if err := coll.FindOne(ctx, filter).Decode(&rating); err != nil {
		return RatingDb{}, err
	}

	return rating, nil
}

func (db *DB) GetRatingsByRecipeId(ctx context.Context, recipeId string) ([]RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"recipeId": recipeId}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return []RatingDb{}, err
	}
	defer cursor.Close(ctx)

	var ratingsDb []RatingDb
	if err = cursor.All(ctx, &ratingsDb); err != nil {
		return []RatingDb{}, err
	}

	return ratingsDb, nil
}

func (db *DB) GetRatingByUserIdAndRecipeId(ctx context.Context, userId, recipeId string) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"userId": userId, "recipeId": recipeId}

	var rating RatingDb
	err := coll.FindOne(ctx, filter).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RatingDb{}, ErrRecordNotFound
		}
		return RatingDb{}, err
	}

	return rating, nil
}

func (db *DB) DeleteRatingsByRecipeId(ctx context.Context, recipeId string) (int64, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"recipeId": recipeId}

	result, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (db *DB) DeleteRatingsByUserId(ctx context.Context, userId string) (int64, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"userId": userId}

	result, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
