package ingredients

import (
	"context"

	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetAll lists the global ingredient catalog.
func GetAll(db *mongodb.DB, ctx context.Context) ([]Ingredient, error) {
	dbIngredients, err := db.GetAllIngredients(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]Ingredient, 0, len(dbIngredients))
	for _, dbIng := range dbIngredients {
		all = append(all, Ingredient{Id: dbIng.Id, Name: dbIng.Name})
	}
	return all, nil
}

// Add creates a catalog entry; duplicate names map to ErrAlreadyExists via
// the unique name index.
func Add(db *mongodb.DB, ctx context.Context, req NewIngredientRequest) (Ingredient, error) {
	saved, err := db.AddIngredient(ctx, mongodb.IngredientDb{Name: req.Name})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Ingredient{}, ErrAlreadyExists
		}
		return Ingredient{}, err
	}

	return Ingredient{Id: saved.Id, Name: saved.Name}, nil
}
