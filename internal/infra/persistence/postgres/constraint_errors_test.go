package postgres

import (
	"context"
	"testing"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "translated gorm error", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm error", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert match"), want: true},
		{
			name: "pgx message",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_matches_pair_key" (SQLSTATE 23505)`),
			want: true,
		},
		{name: "sqlstate only", err: errors.New("insert failed (SQLSTATE 23505)"), want: true},
		{name: "not null violation", err: errors.New(`ERROR: null value in column "title" (SQLSTATE 23502)`), want: false},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "pgx message", err: errors.New(`ERROR: null value in column "title" violates not-null constraint (SQLSTATE 23502)`), want: true},
		{name: "sqlstate only", err: errors.New("insert failed: 23502"), want: true},
		{name: "unique violation", err: errors.New(`ERROR: duplicate key value (SQLSTATE 23505)`), want: false},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotNullConstraintViolation(tt.err))
		})
	}
}

// duplicateKeyDB fails every insert the way a translated unique violation does.
func duplicateKeyDB(t *testing.T, err error) *gorm.DB {
	t.Helper()

	db := newDryRunDB(t)
	require.NoError(t, db.Callback().Create().Replace("gorm:create", func(tx *gorm.DB) {
		_ = tx.AddError(err)
	}))

	return db
}

func TestMatchRepository_CreateDuplicate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "translated", err: gorm.ErrDuplicatedKey, wantErr: repository.ErrDuplicateMatch},
		{name: "driver message", err: errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"), wantErr: repository.ErrDuplicateMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMatchRepository(duplicateKeyDB(t, tt.err))

			err := repo.Create(context.Background(), &entity.MatchRecord{
				ID:          uuid.New(),
				LostItemID:  uuid.New(),
				FoundItemID: uuid.New(),
				Score:       0.9,
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("other errors are not duplicates", func(t *testing.T) {
		repo := NewMatchRepository(duplicateKeyDB(t, errors.New("connection reset")))

		err := repo.Create(context.Background(), &entity.MatchRecord{ID: uuid.New(), LostItemID: uuid.New(), FoundItemID: uuid.New()})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrDuplicateMatch)
	})
}
