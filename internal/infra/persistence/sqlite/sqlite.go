// Package sqlite implements the persistence layer on modernc.org/sqlite for
// local development and tests. It mirrors the PostgreSQL repositories.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/lifecycle"
	"lostfound/internal/errors"

	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

// MemoryPath opens an ephemeral database.
const MemoryPath = ":memory:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured SQLite database and applies the schema on start.
func New(params Params) (*sql.DB, error) {
	path := MemoryPath
	if params.Config.SQLite != nil && params.Config.SQLite.Path != "" {
		path = params.Config.SQLite.Path
	}

	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			if err := EnsureSchema(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("SQLite store ready", slog.String("path", path))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Open opens a SQLite database connection and configures pragmas.
// The pool is pinned to one connection: SQLite serializes writers anyway, and
// an in-memory database only lives as long as its connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL")
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()

			return nil, errors.Wrapf(err, "setting pragma %q", p)
		}
	}

	return db, nil
}
