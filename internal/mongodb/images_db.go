package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ----- Types for the database -----

type FridgeImageDb struct {
	Id        string    `json:"id" bson:"_id"`
	UserId    string    `json:"userId" bson:"userId"`
	ImageData string    `json:"imageData" bson:"imageData"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) AddFridgeImage(ctx context.Context, userId, imageData string) (FridgeImageDb, error) {
	coll := db.Collection(FridgeImagesCollection)

	image := FridgeImageDb{
		Id:        primitive.NewObjectID().Hex(),
		UserId:    userId,
		ImageData: imageData,
		CreatedAt: time.Now(),
	}

	if _, err := coll.InsertOne(ctx, image); err != nil {
		return FridgeImageDb{}, err
	}

	return image, nil
}

func (db *DB) DeleteFridgeImagesByUserId(ctx context.Context, userId string) (int64, error) {
	coll := db.Collection(FridgeImagesCollection)

	result, err := coll.DeleteMany(ctx, bson.M{"userId": userId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
