package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/entity"
	"lostfound/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories_SQLite(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{
		Storage: &config.StorageConfig{Driver: constants.StorageDriverSQLite},
		SQLite:  &config.SQLiteConfig{Path: sqlite.MemoryPath},
	}

	repos, err := NewRepositories(Params{Lc: lc, Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	item := &entity.ItemReport{
		ID:            uuid.New(),
		Type:          entity.ItemTypeFound,
		Title:         "Water bottle",
		Description:   "blue hydro flask",
		Category:      entity.CategoryWaterBottle,
		Location:      entity.ResolveLocation(entity.Location{Building: "CRC"}),
		ReporterEmail: "finder@gatech.edu",
		Status:        entity.ItemStatusOpen,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repos.ItemRepo.Create(context.Background(), item))

	got, err := repos.ItemRepo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Title, got.Title)
	assert.NotNil(t, repos.MatchRepo)
	assert.NotNil(t, repos.NotifRepo)
	assert.NotNil(t, repos.TxManager)
}

func TestNewRepositories_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewRepositories(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Storage: &config.StorageConfig{Driver: "mongodb"}},
		Logger: logger,
	})
	require.Error(t, err)

	_, err = NewRepositories(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Storage: &config.StorageConfig{Driver: constants.StorageDriverPostgres}},
		Logger: logger,
	})
	require.Error(t, err, "postgres without configuration")
}
