package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database holds the connected client and the collections the controllers
// work with. It is built once at startup and passed to each controller.
type Database struct {
	Client *mongo.Client

	Products      *mongo.Collection
	Orders        *mongo.Collection
	FacebookPages *mongo.Collection
	Users         *mongo.Collection
	RedxAreas     *mongo.Collection
	PathaowAreas  *mongo.Collection
}

func Connect(cfg *Config) (*Database, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.DatabaseName)
	return &Database{
		Client:        client,
		Products:      db.Collection("Product"),
		Orders:        db.Collection("OrderManagement"),
		FacebookPages: db.Collection("FacebookPages"),
		Users:         db.Collection("Users"),
		RedxAreas:     db.Collection("RedxArea"),
		PathaowAreas:  db.Collection("PathaowArea"),
	}, nil
}
