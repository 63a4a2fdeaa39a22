// Package mongo implements the TrainingStore against MongoDB. Training
// records live in a single collection of documents keyed by store-assigned
// ObjectIDs; record ids are derived from the ObjectID on read and never
// written into the document body.
package mongo

import (
	"context"
	"time"

	"github.com/intentd/intentd/internal"
	"github.com/intentd/intentd/pkg/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var log = internal.GetLogger()

const DefaultCollection = "training_data"

const connectTimeout = 10 * time.Second

// NewMongoConn connects to MongoDB and pings the server to surface
// connection problems at startup rather than on first request.
func NewMongoConn(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// NewTrainingStore returns a Mongo-backed TrainingStore using the given
// database and collection names.
func NewTrainingStore(client *mongo.Client, database, collection string) *TrainingStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &TrainingStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}
}

var _ models.TrainingStore = &TrainingStore{}

// TrainingStore is the MongoDB implementation of models.TrainingStore.
type TrainingStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func (s *TrainingStore) Close(ctx context.Context) error {
	log.Info("Closing MongoDB connection")
	return s.client.Disconnect(ctx)
}
