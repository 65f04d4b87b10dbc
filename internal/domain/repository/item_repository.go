// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for item persistence.
var (
	// ErrItemNotFound is returned when an item report is not found.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemClosed is returned when a status update targets a closed item.
	ErrItemClosed = errors.New("item is closed")
)

// ItemFilter narrows a ListByType query. Zero values disable a condition.
type ItemFilter struct {
	Category entity.Category
	Statuses []entity.ItemStatus
	Since    time.Time
	Limit    int
}

// ItemRepository defines the interface for item report persistence.
// The item type partitions the store: every query is scoped to exactly one type.
type ItemRepository interface {
	// Create persists a new item report. The report must already be validated.
	Create(ctx context.Context, item *entity.ItemReport) error

	// FindByID retrieves an item report by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error)

	// ListByType returns reports of one type, newest first with ties broken by ID.
	ListByType(ctx context.Context, itemType entity.ItemType, filter ItemFilter) ([]*entity.ItemReport, error)

	// UpdateStatus changes the status of an item. Closed items are never updated.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error
}
