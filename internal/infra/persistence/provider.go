// Package persistence selects the entitlement store backend.
package persistence

import (
	"log/slog"

	"vidgate/config"
	"vidgate/internal/domain/constants"
	"vidgate/internal/domain/repository"
	"vidgate/internal/infra/persistence/memory"
	"vidgate/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the store handed to the usecases.
type Repositories struct {
	fx.Out

	AccountRepo repository.AccountRepository
	CatalogRepo repository.CatalogRepository
	TxManager   repository.TransactionManager
}

// New builds the repositories of the configured store driver.
func New(params Params) (Repositories, error) {
	driver := constants.StoreDriverPostgres
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	switch driver {
	case constants.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")

		store := memory.NewStore()

		return Repositories{
			AccountRepo: memory.NewAccountRepository(store),
			CatalogRepo: memory.NewCatalogRepository(store),
			TxManager:   memory.NewTransactionManager(store),
		}, nil

	case constants.StoreDriverPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres config is required for the postgres store")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			AccountRepo: postgres.NewAccountRepository(db),
			CatalogRepo: postgres.NewCatalogRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported store driver: %s", driver)
	}
}
