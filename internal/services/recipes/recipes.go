package recipes

import (
	"context"
	"fmt"

	"github.com/floydfdes/api-fridge-chef/internal/generics"
	"github.com/floydfdes/api-fridge-chef/internal/images"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// GetRecipesPage returns one page of recipes, newest first.
func GetRecipesPage(db *mongodb.DB, ctx context.Context, page, size int) (generics.Page[Recipe], error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	total, err := db.CountTotalRecipes(ctx)
	if err != nil {
		return generics.Page[Recipe]{}, err
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	dbRecipes, err := db.GetRecipes(ctx, opts)
	if err != nil {
		return generics.Page[Recipe]{}, err
	}

	totalPages := (total + size - 1) / size
	return generics.Page[Recipe]{
		Page:         page,
		Size:         len(dbRecipes),
		TotalPages:   totalPages,
		TotalResults: total,
		Content:      mapDbRecipesToApiRecipes(dbRecipes),
	}, nil
}

// Search matches the term case-insensitively against recipe names and
// cuisines.
func Search(db *mongodb.DB, ctx context.Context, term string) ([]Recipe, error) {
	filter := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": term, "$options": "i"}},
		{"cuisine": bson.M{"$regex": term, "$options": "i"}},
	}}

	dbRecipes, err := db.GetRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapDbRecipesToApiRecipes(dbRecipes), nil
}

// GetByIngredients resolves ingredient names to catalog ids and returns
// every recipe using any of them. Unknown names are simply ignored.
func GetByIngredients(db *mongodb.DB, ctx context.Context, names []string) ([]Recipe, error) {
	ingredients, err := db.GetIngredientsByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	if len(ingredients) == 0 {
		return []Recipe{}, nil
	}

	ids := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ids = append(ids, ing.Id)
	}

	filter := bson.M{"ingredients.ingredientId": bson.M{"$in": ids}}
	dbRecipes, err := db.GetRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapDbRecipesToApiRecipes(dbRecipes), nil
}

func GetByCategory(db *mongodb.DB, ctx context.Context, category string) ([]Recipe, error) {
	if !IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	dbRecipes, err := db.GetRecipes(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}

	return mapDbRecipesToApiRecipes(dbRecipes), nil
}

func GetRecipeById(db *mongodb.DB, ctx context.Context, recipeId string) (Recipe, error) {
	dbRecipe, err := db.GetRecipeById(ctx, recipeId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Recipe{}, ErrRecipeNotFound
		}
		return Recipe{}, err
	}

	return MapDbRecipeToApiRecipe(dbRecipe), nil
}

// AddRecipe creates a recipe owned by userId. Ingredient names are
// resolved against the catalog, creating entries on first use. The
// owner's recipesCount is bumped with a separate atomic increment.
func AddRecipe(db *mongodb.DB, ctx context.Context, req NewRecipeRequest, userId string) (Recipe, error) {
	category, err := resolveCategory(req.Category, req.SubCategory)
	if err != nil {
		return Recipe{}, err
	}

	imageData, err := images.Process(ctx, req.ImageUrl)
	if err != nil {
		return Recipe{}, err
	}

	recipeIngredients, err := resolveIngredients(db, ctx, req.Ingredients)
	if err != nil {
		return Recipe{}, err
	}

	newRecipe := mongodb.RecipeDb{
		Name:         req.Name,
		Cuisine:      req.Cuisine,
		Category:     string(category),
		Rating:       0,
		ImageUrl:     imageData,
		Difficulty:   req.Difficulty,
		Ingredients:  recipeIngredients,
		Instructions: req.Instructions,
		CreatedBy:    userId,
	}

	savedRecipe, err := db.AddRecipe(ctx, newRecipe)
	if err != nil {
		return Recipe{}, err
	}

	if err := db.IncrementUserCounter(ctx, userId, "recipesCount", 1); err != nil {
		return Recipe{}, fmt.Errorf("incrementing recipes count: %w", err)
	}

	return MapDbRecipeToApiRecipe(savedRecipe), nil
}

// UpdateRecipe applies a partial update. Only the owner may edit.
func UpdateRecipe(db *mongodb.DB, ctx context.Context, recipeId, userId string, req UpdateRecipeRequest) (Recipe, error) {
	dbRecipe, err := db.GetRecipeById(ctx, recipeId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Recipe{}, ErrRecipeNotFound
		}
		return Recipe{}, err
	}

	if dbRecipe.CreatedBy != userId {
		return Recipe{}, ErrNotRecipeOwner
	}

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Cuisine != nil {
		fields["cuisine"] = *req.Cuisine
	}
	if req.Category != nil || req.SubCategory != nil {
		var categoryKey, subCategory string
		if req.Category != nil {
			categoryKey = *req.Category
		}
		if req.SubCategory != nil {
			subCategory = *req.SubCategory
		}
		category, err := resolveCategory(categoryKey, subCategory)
		if err != nil {
			return Recipe{}, err
		}
		fields["category"] = string(category)
	}
	if req.ImageUrl != nil {
		imageData, err := images.Process(ctx, *req.ImageUrl)
		if err != nil {
			return Recipe{}, err
		}
		fields["imageUrl"] = imageData
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.Ingredients != nil {
		recipeIngredients, err := resolveIngredients(db, ctx, req.Ingredients)
		if err != nil {
			return Recipe{}, err
		}
		fields["ingredients"] = recipeIngredients
	}
	if req.Instructions != nil {
		fields["instructions"] = *req.Instructions
	}

	if len(fields) > 0 {
		if err := db.UpdateRecipeFields(ctx, recipeId, fields); err != nil {
			return Recipe{}, err
		}
	}

	updatedRecipe, err := db.GetRecipeById(ctx, recipeId)
	if err != nil {
		return Recipe{}, err
	}

	return MapDbRecipeToApiRecipe(updatedRecipe), nil
}

// DeleteRecipe removes a recipe, its ratings, and decrements the owner's
// recipesCount. Only the owner may delete.
func DeleteRecipe(db *mongodb.DB, ctx context.Context, recipeId, userId string) error {
	dbRecipe, err := db.GetRecipeById(ctx, recipeId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrRecipeNotFound
		}
		return err
	}

	if dbRecipe.CreatedBy != userId {
		return ErrNotRecipeOwner
	}

	if _, err := db.DeleteRecipe(ctx, recipeId); err != nil {
		return err
	}

	if _, err := db.DeleteRatingsByRecipeId(ctx, recipeId); err != nil {
		return fmt.Errorf("deleting ratings for recipe %s: %w", recipeId, err)
	}

	if err := db.IncrementUserCounter(ctx, userId, "recipesCount", -1); err != nil {
		return fmt.Errorf("decrementing recipes count: %w", err)
	}

	return nil
}

// resolveCategory picks the stored category: an explicit canonical key
// wins, otherwise the free-text sub-category is classified.
func resolveCategory(categoryKey, subCategory string) (Category, error) {
	if categoryKey != "" {
		if !IsValidCategory(categoryKey) {
			return "", ErrInvalidCategory
		}
		return Category(categoryKey), nil
	}

	if subCategory != "" {
		return Classify(subCategory), nil
	}

	return "", ErrMissingCategory
}

// resolveIngredients maps ingredient names to catalog ids, creating
// catalog entries for names seen for the first time.
func resolveIngredients(db *mongodb.DB, ctx context.Context, reqs []IngredientAmountReq) ([]mongodb.RecipeIngredientDb, error) {
	resolved := make([]mongodb.RecipeIngredientDb, 0, len(reqs))
	for _, req := range reqs {
		ingredient, err := db.GetIngredientByName(ctx, req.Name)
		if err == mongodb.ErrRecordNotFound {
			ingredient, err = db.AddIngredient(ctx, mongodb.IngredientDb{Name: req.Name})
			if mongo.IsDuplicateKeyError(err) {
				// Lost the insert race; the entry exists now.
				ingredient, err = db.GetIngredientByName(ctx, req.Name)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("resolving ingredient %q: %w", req.Name, err)
		}

		resolved = append(resolved, mongodb.RecipeIngredientDb{
			IngredientId: ingredient.Id,
			Amount:       req.Amount,
		})
	}

	return resolved, nil
}
