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

type UserDb struct {
	Id                   string     `json:"id" bson:"_id"`
	Name                 string     `json:"name" bson:"name"`
	Email                string     `json:"email" bson:"email"`
	PasswordHash         string     `json:"-" bson:"passwordHash"`
	ProfilePicture       string     `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Bio                  string     `json:"bio,omitempty" bson:"bio,omitempty"`
	RecipesCount         int        `json:"recipesCount" bson:"recipesCount"`
	FollowersCount       int        `json:"followersCount" bson:"followersCount"`
	FollowingCount       int        `json:"followingCount" bson:"followingCount"`
	ResetPasswordToken   string     `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpires *time.Time `json:"-" bson:"resetPasswordExpires,omitempty"`
	CreatedAt            time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) AddUser(ctx context.Context, user UserDb) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	user.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, user); err != nil {
		return UserDb{}, err
	}

	return user, nil
}

func (db *DB) GetUserById(ctx context.Context, id string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	// The email index is case-insensitive (collation strength 2)
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) GetUserByResetToken(ctx context.Context, token string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	filter := bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": time.Now()},
	}

	var userDb UserDb
	if err := coll.FindOne(ctx, filter).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) GetAllUsers(ctx context.Context, args ...any) ([]UserDb, error) {
	coll := db.Collection(UsersCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return []UserDb{}, err
	}
	defer cursor.Close(ctx)

	var allUsers []UserDb
	if err := cursor.All(ctx, &allUsers); err != nil {
		return []UserDb{}, err
	}
	return allUsers, nil
}

func (db *DB) UserExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(UsersCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdateUserFields sets the provided fields on a user document and bumps
// updatedAt. Callers build the field map; empty maps are rejected.
func (db *DB) UpdateUserFields(ctx context.Context, id string, fields bson.M) error {
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}

	coll := db.Collection(UsersCollection)

	fields["updatedAt"] = time.Now()
	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// IncrementUserCounter applies a single atomic $inc to one of the
// denormalized counters (recipesCount, followersCount, followingCount).
func (db *DB) IncrementUserCounter(ctx context.Context, id, counter string, delta int) error {
	coll := db.Collection(UsersCollection)

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{counter: delta}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (db *DB) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	coll := db.Collection(UsersCollection)

	update := bson.M{
		"$set": bson.M{
			"resetPasswordToken":   token,
			"resetPasswordExpires": expires,
			"updatedAt":            time.Now(),
		},
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// ResetPassword swaps the password hash and clears the reset token fields
// in a single update.
func (db *DB) ResetPassword(ctx context.Context, id, passwordHash string) error {
	coll := db.Collection(UsersCollection)

	update := bson.M{
		"$set": bson.M{
			"passwordHash": passwordHash,
			"updatedAt":    time.Now(),
		},
		"$unset": bson.M{
			"resetPasswordToken":   "",
			"resetPasswordExpires": "",
		},
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (db *DB) DeleteUser(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(UsersCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
