package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kabarett-api/internal/logger"
	"kabarett-api/internal/models"
)

const (
	maxRetries    = 5
	retryInterval = 2 * time.Second
)

// Connect dials MongoDB and verifies the connection with a ping,
// retrying so the service survives a database that is still starting.
func Connect(ctx context.Context, uri string, log *logger.Logger) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Connecting to MongoDB (attempt %d/%d)", i+1, maxRetries))

		client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				break
			}
			_ = client.Disconnect(ctx)
		}

		log.Error("DATABASE", fmt.Sprintf("MongoDB not reachable: %v", err))
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB after %d attempts: %w", maxRetries, err)
	}

	log.Info("DATABASE", "✅ MongoDB connection successful")
	return client, nil
}

// EnsureIndexes creates the indexes the query paths rely on. Safe to
// run on every startup since identical index definitions are no-ops.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	indexes := map[string][]mongo.IndexModel{
		models.EventCollection: {
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
		models.ReservationCollection: {
			{Keys: bson.D{{Key: "event_id", Value: 1}}},
		},
		models.TheaterCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		models.VideoCollection: {
			{Keys: bson.D{{Key: "month_key", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for coll, idx := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
		log.LogDatabase("INDEX", coll, "indexes ensured")
	}

	return nil
}
