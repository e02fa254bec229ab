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

type RecipeDb struct {
	Id           string               `json:"id" bson:"_id"`
	Name         string               `json:"name" bson:"name"`
	Cuisine      string               `json:"cuisine" bson:"cuisine"`
	Category     string               `json:"category" bson:"category"`
	Rating       float64              `json:"rating" bson:"rating"`
	ImageUrl     string               `json:"imageUrl" bson:"imageUrl"`
	Difficulty   string               `json:"difficulty" bson:"difficulty"`
	Ingredients  []RecipeIngredientDb `json:"ingredients" bson:"ingredients"`
	Instructions string               `json:"instructions" bson:"instructions"`
	CreatedBy    string               `json:"createdBy" bson:"createdBy"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type RecipeIngredientDb struct {
	IngredientId string `json:"ingredientId" bson:"ingredientId"`
	Amount       string `json:"amount" bson:"amount"`
}

// ----- Methods for the database -----

func (db *DB) AddRecipe(ctx context.Context, recipe RecipeDb) (RecipeDb, error) {
	coll := db.Collection(RecipesCollection)

	recipe.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, recipe); err != nil {
		return RecipeDb{}, err
	}

	return recipe, nil
}

func (db *DB) GetRecipeById(ctx context.Context, id string) (RecipeDb, error) {
	coll := db.Collection(RecipesCollection)

	var recipe RecipeDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RecipeDb{}, ErrRecordNotFound
		}
		return RecipeDb{}, err
	}

	return recipe, nil
}

func (db *DB) GetRecipes(ctx context.Context, args ...any) ([]RecipeDb, error) {
	coll := db.Collection(RecipesCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return []RecipeDb{}, err
	}
	defer cursor.Close(ctx)

	var recipes []RecipeDb
	if err := cursor.All(ctx, &recipes); err != nil {
		return []RecipeDb{}, err
	}

	return recipes, nil
}

func (db *DB) CountTotalRecipes(ctx context.Context, args ...any) (int, error) {
	coll := db.Collection(RecipesCollection)

	filter, _ := ResolveFilterAndOptionsSearch(args...)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(total), nil
}

// UpdateRecipeFields sets the provided fields on a recipe document and
// bumps updatedAt.
func (db *DB) UpdateRecipeFields(ctx context.Context, id string, fields bson.M) error {
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}

	coll := db.Collection(RecipesCollection)

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

// SetRecipeRating writes the denormalized average onto the recipe document.
// It intentionally does not touch updatedAt: a new rating is not an edit of
// the recipe content.
func (db *DB) SetRecipeRating(ctx context.Context, id string, average float64) error {
	coll := db.Collection(RecipesCollection)

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"rating": average}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (db *DB) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(RecipesCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
