package postgres

import (
	"context"
	"testing"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestItemRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		updated  int64
		existing int64
		wantErr  error
	}{
		{name: "updated", updated: 1, existing: 1, wantErr: nil},
		{name: "unknown item", updated: 0, existing: 0, wantErr: repository.ErrItemNotFound},
		{name: "closed item", updated: 0, existing: 1, wantErr: repository.ErrItemClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDryRunDB(t)
			stubUpdateStatus(t, db, tt.updated, tt.existing)
			repo := NewItemRepository(db)

			err := repo.UpdateStatus(context.Background(), uuid.New(), entity.ItemStatusClaimed)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
