package repository

import (
	"context"
	"errors"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateMatch is returned when a match for the same lost/found pair already exists.
var ErrDuplicateMatch = errors.New("match already recorded")

// MatchRepository defines the interface for match record persistence.
type MatchRepository interface {
	// Create inserts a match record. The pair key is unique; a second insert for the
	// same pair returns ErrDuplicateMatch.
	Create(ctx context.Context, match *entity.MatchRecord) error

	// FindByItem returns every match that involves the given item, oldest first.
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.MatchRecord, error)
}
