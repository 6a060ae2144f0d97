// Package persistence selects the document store backend and provides the transaction manager.
package persistence

import (
	"log/slog"

	"menumaster/config"
	"menumaster/internal/domain/constants"
	"menumaster/internal/domain/repository"
	"menumaster/internal/infra/persistence/blob"
	"menumaster/internal/infra/persistence/document"
	"menumaster/internal/infra/persistence/mongo"
	"menumaster/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the DocumentStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentStore creates a DocumentStore based on storage.driver.
func NewDocumentStore(params StoreParams) (repository.DocumentStore, error) {
	driver := params.Config.Storage.Driver
	params.Logger.Info("Using document store", slog.String("driver", driver))

	switch driver {
	case "", constants.StorageDriverBlob:
		return blob.New(blob.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})

	case constants.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres config is required for the postgres driver")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewDocumentStore(postgres.StoreParams{
			Lifecycle: params.Lc,
			DB:        db,
		}), nil

	case constants.StorageDriverMongo:
		return mongo.New(mongo.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})

	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewDocumentStore,
		document.NewTransactionManager,
	),
)
