// Package mongo stores documents in a MongoDB collection, one record per document key.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"menumaster/config"
	"menumaster/internal/domain/lifecycle"
	"menumaster/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	defaultDatabase   = "menumaster"
	defaultCollection = "documents"
)

// documentRecord keeps the JSON body as a string so it round-trips byte for byte.
type documentRecord struct {
	Key       string    `bson:"_id"`
	Body      string    `bson:"body"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type documentStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// New connects to MongoDB. The server is pinged on start and disconnected on stop.
func New(params Params) (repository.DocumentStore, error) {
	cfg := params.Config.Storage.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("storage.mongo.uri is required for the mongo driver")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	database := cfg.Database
	if database == "" {
		database = defaultDatabase
	}
	collection := cfg.Collection
	if collection == "" {
		collection = defaultCollection
	}

	store := &documentStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", database),
				slog.String("collection", collection),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return store, nil
}

func (s *documentStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record documentRecord
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", key)
	}

	return []byte(record.Body), nil
}

func (s *documentStore) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		newRecord(key, body),
		options.Replace().SetUpsert(true),
	)

	return errors.Wrapf(err, "failed to write document %s", key)
}

// PutBatch sends every document in one ordered bulk write.
func (s *documentStore) PutBatch(ctx context.Context, docs map[string][]byte) error {
	if len(docs) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(docs))
	for key, body := range docs {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": key}).
			SetReplacement(newRecord(key, body)).
			SetUpsert(true))
	}

	_, err := s.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))

	return errors.Wrap(err, "failed to write document batch")
}

// Close is a no-op; the client is disconnected by the lifecycle hook.
func (s *documentStore) Close() error {
	return nil
}

func newRecord(key string, body []byte) documentRecord {
	return documentRecord{Key: key, Body: string(body), UpdatedAt: time.Now().UTC()}
}
