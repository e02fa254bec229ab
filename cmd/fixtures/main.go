// Seeds a handful of demo users, ingredients and recipes for local
// development.
package main

import (
	"context"
	"log"
	"os"

	"github.com/floydfdes/api-fridge-chef/internal/auth"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"github.com/floydfdes/api-fridge-chef/internal/services/recipes"
	"github.com/joho/godotenv"
)

type demoRecipe struct {
	name         string
	cuisine      string
	subCategory  string
	difficulty   string
	instructions string
	ingredients  map[string]string
}

var demoRecipes = []demoRecipe{
	{
		name:         "Shakshuka",
		cuisine:      "Middle Eastern",
		subCategory:  "Savory breakfast skillet",
		difficulty:   "Easy",
		instructions: "1. Soften onions and peppers\n2. Add tomatoes and spices\n3. Poach the eggs in the sauce",
		ingredients:  map[string]string{"Eggs": "4", "Canned tomatoes": "400g", "Red pepper": "1", "Onion": "1"},
	},
	{
		name:         "One-Pot Lentil Curry",
		cuisine:      "Indian",
		subCategory:  "Quick vegan dinner",
		difficulty:   "Medium",
		instructions: "1. Fry the aromatics\n2. Add lentils, coconut milk and stock\n3. Simmer until thick",
		ingredients:  map[string]string{"Red lentils": "250g", "Coconut milk": "400ml", "Curry paste": "2 tbsp"},
	},
	{
		name:         "Apple Galette",
		cuisine:      "French",
		subCategory:  "Rustic pastry dessert",
		difficulty:   "Hard",
		instructions: "1. Rest the dough\n2. Arrange the apples\n3. Bake until golden",
		ingredients:  map[string]string{"Apples": "4", "Flour": "250g", "Butter": "180g", "Sugar": "80g"},
	},
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.ConnectMongo(ctx, os.Getenv("MONGODB_URI"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)

	passwordHash, err := auth.HashPassword("demo-password")
	if err != nil {
		log.Fatal(err)
	}

	demoUser, err := db.AddUser(ctx, mongodb.UserDb{
		Name:         "Demo Chef",
		Email:        "demo@fridgechef.local",
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	for _, demo := range demoRecipes {
		var recipeIngredients []mongodb.RecipeIngredientDb
		for name, amount := range demo.ingredients {
			ingredient, err := db.GetIngredientByName(ctx, name)
			if err == mongodb.ErrRecordNotFound {
				ingredient, err = db.AddIngredient(ctx, mongodb.IngredientDb{Name: name})
			}
			if err != nil {
				log.Fatalf("Failed to seed ingredient %q: %v", name, err)
			}
			recipeIngredients = append(recipeIngredients, mongodb.RecipeIngredientDb{
				IngredientId: ingredient.Id,
				Amount:       amount,
			})
		}

		_, err := db.AddRecipe(ctx, mongodb.RecipeDb{
			Name:         demo.name,
			Cuisine:      demo.cuisine,
			Category:     string(recipes.Classify(demo.subCategory)),
			ImageUrl:     "ZGVtbw==", // placeholder image payload
			Difficulty:   demo.difficulty,
			Ingredients:  recipeIngredients,
			Instructions: demo.instructions,
			CreatedBy:    demoUser.Id,
		})
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", demo.name, err)
		}
	}

	log.Printf("Seeded %d recipes for user %s", len(demoRecipes), demoUser.Id)
}
