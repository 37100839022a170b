package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brieflyhq/briefly-backend/internal/logger"
	"github.com/brieflyhq/briefly-backend/internal/utils"
)

// MongoService owns the process-wide document store client. Lesson batches
// live in a single collection selected by environment.
type MongoService struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *logger.Logger
}

func NewMongoService(log *logger.Logger) (*MongoService, error) {
	serviceLog := log.With("service", "MongoService")

	mongoURL := utils.GetEnv("MONGODB_URL", "mongodb://localhost:27017", log)
	databaseName := utils.GetEnv("MONGODB_DATABASE", "briefly", log)
	collectionName := utils.GetEnv("MONGODB_COLLECTION", "lessons", log)

	serviceLog.Info("Connecting to MongoDB...", "database", databaseName, "collection", collectionName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		serviceLog.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		serviceLog.Error("Failed to ping MongoDB", "error", err)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	collection := client.Database(databaseName).Collection(collectionName)
	return &MongoService{client: client, collection: collection, log: serviceLog}, nil
}

func (s *MongoService) Collection() *mongo.Collection {
	return s.collection
}

func (s *MongoService) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
