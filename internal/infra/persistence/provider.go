// Package persistence selects the repository backend named by storage.driver.
package persistence

import (
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"
	"lostfound/internal/infra/persistence/postgres"
	"lostfound/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the repository set shared by every use case
type Repositories struct {
	fx.Out

	ItemRepo  repository.ItemRepository
	MatchRepo repository.MatchRepository
	NotifRepo repository.NotificationRepository
	TxManager repository.TransactionManager
}

// NewRepositories opens the configured store and builds its repositories.
func NewRepositories(params Params) (Repositories, error) {
	driver := constants.StorageDriverSQLite
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ItemRepo:  postgres.NewItemRepository(db),
			MatchRepo: postgres.NewMatchRepository(db),
			NotifRepo: postgres.NewNotificationRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	case constants.StorageDriverSQLite:
		db, err := sqlite.New(sqlite.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ItemRepo:  sqlite.NewItemRepository(db),
			MatchRepo: sqlite.NewMatchRepository(db),
			NotifRepo: sqlite.NewNotificationRepository(db),
			TxManager: sqlite.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}
