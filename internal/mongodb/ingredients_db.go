package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

type IngredientDb struct {
	Id   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// ----- Methods for the database -----

func (db *DB) AddIngredient(ctx context.Context, ingredient IngredientDb) (IngredientDb, error) {
	coll := db.Collection(IngredientsCollection)

	ingredient.Id = primitive.NewObjectID().Hex()
	if _, err := coll.InsertOne(ctx, ingredient); err != nil {
		return IngredientDb{}, err
	}

	return ingredient, nil
}

func (db *DB) GetIngredientByName(ctx context.Context, name string) (IngredientDb, error) {
	coll := db.Collection(IngredientsCollection)

	var ingredient IngredientDb
	if err := coll.FindOne(ctx, bson.M{"name": name}).Decode(&ingredient); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return IngredientDb{}, ErrRecordNotFound
		}
		return IngredientDb{}, err
	}

	return ingredient, nil
}

func (db *DB) GetIngredientsByNames(ctx context.Context, names []string) ([]IngredientDb, error) {
	coll := db.Collection(IngredientsCollection)

	filter := bson.M{"name": bson.M{"$in": names}}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return []IngredientDb{}, err
	}
	defer cursor.Close(ctx)

	var ingredients []IngredientDb
	if err := cursor.All(ctx, &ingredients); err != nil {
		return []IngredientDb{}, err
	}

	return ingredients, nil
}

func (db *DB) GetAllIngredients(ctx context.Context) ([]IngredientDb, error) {
	coll := db.Collection(IngredientsCollection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return []IngredientDb{}, err
	}
	defer cursor.Close(ctx)

	var ingredients []IngredientDb
	if err := cursor.All(ctx, &ingredients); err != nil {
		return []IngredientDb{}, err
	}

	return ingredients, nil
}
