package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

type FollowDb struct {
	Id         string    `json:"id" bson:"_id"`
	FollowerId string    `json:"followerId" bson:"followerId"`
	FolloweeId string    `json:"followeeId" bson:"followeeId"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

// AddFollow inserts a follow edge. The unique (followerId, followeeId)
// index turns duplicate follows into a duplicate key error for the caller.
func (db *DB) AddFollow(ctx context.Context, followerId, followeeId string) (FollowDb, error) {
	coll := db.Collection(FollowsCollection)

	follow := FollowDb{
		Id:         primitive.NewObjectID().Hex(),
		FollowerId: followerId,
		FolloweeId: followeeId,
		CreatedAt:  time.Now(),
	}

	if _, err := coll.InsertOne(ctx, follow); err != nil {
		return FollowDb{}, err
	}

	return follow, nil
}

func (db *DB) DeleteFollow(ctx context.Context, followerId, followeeId string) (bool, error) {
	coll := db.Collection(FollowsCollection)

	filter := bson.M{"followerId": followerId, "followeeId": followeeId}

	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (db *DB) GetFollow(ctx context.Context, followerId, followeeId string) (FollowDb, error) {
	coll := db.Collection(FollowsCollection)

	filter := bson.M{"followerId": followerId, "followeeId": followeeId}

	var follow FollowDb
	if err := coll.FindOne(ctx, filter).Decode(&follow); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return FollowDb{}, ErrRecordNotFound
		}
		return FollowDb{}, err
	}

	return follow, nil
}

// DeleteFollowsForUser removes every edge touching the user, in either
// direction. Used when an account is deleted.
func (db *DB) DeleteFollowsForUser(ctx context.Context, userId string) (int64, error) {
	coll := db.Collection(FollowsCollection)

	filter := bson.M{"$or": []bson.M{
		{"followerId": userId},
		{"followeeId": userId},
	}}

	result, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
