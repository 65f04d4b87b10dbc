// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create persists a new item report.
func (repo *itemRepository) Create(ctx context.Context, item *entity.ItemReport) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	return nil
}

// FindByID retrieves an item report by its ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// ListByType returns reports of one type, newest first.
func (repo *itemRepository) ListByType(ctx context.Context, itemType entity.ItemType, filter repository.ItemFilter) ([]*entity.ItemReport, error) {
	var itemModels []*model.ItemModel

	query := repo.db.WithContext(ctx).
		Where("item_type = ?", string(itemType)).
		Order("created_at DESC").
		Order("id ASC")

	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		query = query.Where("status IN ?", statuses)
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items by type")
	}

	items := make([]*entity.ItemReport, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// UpdateStatus changes the status of an item unless it is closed.
func (repo *itemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ? AND status <> ?", id, string(entity.ItemStatusClosed)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update item status")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing changed: tell a missing item apart from a closed one.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check item existence")
	}
	if count == 0 {
		return repository.ErrItemNotFound
	}

	return repository.ErrItemClosed
}

func toItemDomain(data *model.ItemModel) *entity.ItemReport {
	if data == nil {
		return nil
	}

	return &entity.ItemReport{
		ID:          data.ID,
		Type:        entity.ItemType(data.ItemType),
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Category:    entity.Category(data.Category),
		Location: entity.Location{
			Building:  data.Building,
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		PhotoURL:      data.PhotoURL,
		ReporterEmail: data.ReporterEmail,
		ReporterName:  data.ReporterName,
		PushToken:     data.PushToken,
		Status:        entity.ItemStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.ItemReport) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:            data.ID,
		ItemType:      string(data.Type),
		UserID:        data.UserID,
		Title:         data.Title,
		Description:   data.Description,
		Category:      string(data.Category),
		Building:      data.Location.Building,
		Latitude:      data.Location.Latitude,
		Longitude:     data.Location.Longitude,
		PhotoURL:      data.PhotoURL,
		ReporterEmail: data.ReporterEmail,
		ReporterName:  data.ReporterName,
		PushToken:     data.PushToken,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
