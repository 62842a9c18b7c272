package database

import (
	"context"
	"fmt"
	"time"

	"house-hunter-server/pkg/config"
	"house-hunter-server/pkg/logger"
	"house-hunter-server/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes the MongoDB connection pool. The returned client is
// owned by the caller and passed explicitly to whoever needs it; nothing in
// this package keeps ambient state.
func Connect(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	start = time.Now()
	err = client.Ping(ctx, nil)
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
		client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	db := client.Database(cfg.Database.DBName)
	logger.GlobalLogger.Println("MongoDB connected successfully.")
	return client, db, nil
}

// Close disconnects the MongoDB client.
func Close(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
	} else {
		logger.GlobalLogger.Println("MongoDB connection closed")
	}
}
