package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB returns a postgres-dialect gorm handle that never dials.
// Tests replace the callbacks they exercise.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=127.0.0.1 port=1 user=lostfound dbname=lostfound sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

// stubUpdateStatus makes UPDATE report updated rows and COUNT report existing rows.
func stubUpdateStatus(t *testing.T, db *gorm.DB, updated, existing int64) {
	t.Helper()

	require.NoError(t, db.Callback().Update().Replace("gorm:update", func(tx *gorm.DB) {
		tx.RowsAffected = updated
	}))
	require.NoError(t, db.Callback().Query().Replace("gorm:query", func(tx *gorm.DB) {
		if count, ok := tx.Statement.Dest.(*int64); ok {
			*count = existing
		}
		tx.RowsAffected = 1
	}))
}
