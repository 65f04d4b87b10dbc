// Package sqlitetest opens throwaway in-memory SQLite stores for tests outside the sqlite package.
package sqlitetest

import (
	"context"
	"database/sql"
	"testing"

	"lostfound/internal/infra/persistence/sqlite"
)

// NewDB creates a fresh in-memory SQLite database with the schema applied.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := sqlite.EnsureSchema(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
