package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// Collection names
const (
	Users      = "users"
	Pets       = "pets"
	Categories = "categorys"
	Donations  = "donations"
)

// ConnectMongoDB opens a client and pings the deployment before returning it.
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Println("✅ Connected to MongoDB")
	return client, nil
}

// EnsureIndexes creates the indexes the server relies on. The unique email
// index keeps registrations from producing duplicate users.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		Users: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		Pets: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("owner_email"),
		},
		Donations: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("owner_email"),
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	for name, model := range indexes {
		name, model := name, model
		g.Go(func() error {
			return ensureIndex(ctx, database.Collection(name), model)
		})
	}
	return g.Wait()
}

// ensureIndex creates model on coll. Existing duplicate documents keep a
// unique index from being built; that is logged and the server starts
// without it, so the duplicates must be merged before the index applies.
func ensureIndex(ctx context.Context, coll *mongo.Collection, model mongo.IndexModel) error {
	_, err := coll.Indexes().CreateOne(ctx, model)
	if mongo.IsDuplicateKeyError(err) {
		log.Printf("Warning: index on %s not created, collection holds duplicates: %v", coll.Name(), err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create index on %s: %w", coll.Name(), err)
	}
	return nil
}
