package mongodb

import (
	"os"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	UsersCollection        = "users"
	RecipesCollection      = "recipes"
	IngredientsCollection  = "ingredients"
	RatingsCollection      = "ratings"
	FollowsCollection      = "follows"
	FridgeImagesCollection = "fridgeImages"
)

type DB struct {
	client *mongo.Client
	name   string
}

func NewDB(client *mongo.Client) *DB {
	return &DB{client: client, name: getDatabaseName()}
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.client.Database(db.name).Collection(name)
}

func (db *DB) Database() *mongo.Database {
	return db.client.Database(db.name)
}

func getDatabaseName() string {
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "fridgechef"
	}
	return name
}
