package postgres

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/lifecycle"
	"lostfound/internal/errors"
	"lostfound/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool. The schema is migrated once the lifecycle starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required when storage.driver is postgres")
	}

	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager, so gorm's implicit per-statement transaction is off.
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := Migrate(db.WithContext(ctx)); err != nil {
				return err
			}

			stats := sqlDB.Stats()
			params.Logger.Info("PostgreSQL ready",
				slog.Int("maxOpenConns", stats.MaxOpenConnections),
				slog.Int("openConns", stats.OpenConnections),
			)

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

// Migrate creates or updates the item, match and notification job tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.ItemModel{},
		&model.MatchModel{},
		&model.NotificationJobModel{},
	)

	return errors.Wrap(err, "failed to migrate PostgreSQL schema")
}
