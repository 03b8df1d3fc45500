package db

import (
	"context"
	"fmt"

	"restring/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client   *mongo.Client
	database *mongo.Database

	BookingsCollection     *mongo.Collection
	StringsCollection      *mongo.Collection
	AvailabilityCollection *mongo.Collection
)

// Init connects the shared client and binds the three collections.
// The client is safe for concurrent reuse; pooling is left to the driver.
func Init(ctx context.Context, cfg config.Config) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	Client = client
	database = client.Database(cfg.MongoDB)

	BookingsCollection = database.Collection("bookings")
	StringsCollection = database.Collection("strings")
	AvailabilityCollection = database.Collection("availability")
	return nil
}

// Collection returns a handle by name for callers that address the
// store generically (seed, tooling).
func Collection(name string) *mongo.Collection {
	return database.Collection(name)
}

func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
