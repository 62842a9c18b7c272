package database

import (
	"context"
	"time"

	"house-hunter-server/pkg/logger"
	"house-hunter-server/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the query surface: unique user
// emails, the house filter fields and sort order, and the renter lookup on
// bookings.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"houses": {
			{Keys: bson.D{{Key: "city", Value: 1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		"bookings": {
			{Keys: bson.D{{Key: "R_email", Value: 1}}},
		},
	}

	for name, models := range indexes {
		collection := db.Collection(name)
		start := time.Now()
		_, err := collection.Indexes().CreateMany(ctx, models)
		metrics.MongoOperationDuration.WithLabelValues("create_indexes", name).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("create_indexes", name).Inc()
			logger.GlobalLogger.Errorf("Failed to create indexes on %s: %v", name, err)
			return err
		}
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
