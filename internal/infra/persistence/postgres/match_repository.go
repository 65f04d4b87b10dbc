package postgres

import (
	"context"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// Create inserts a match record, relying on the unique pair_key index.
func (repo *matchRepository) Create(ctx context.Context, match *entity.MatchRecord) error {
	matchM := fromMatchDomain(match)

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMatch
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	return nil
}

// FindByItem returns every match that involves the item, oldest first.
func (repo *matchRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.MatchRecord, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("lost_item_id = ? OR found_item_id = ?", itemID, itemID).
		Order("decided_at ASC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by item")
	}

	matches := make([]*entity.MatchRecord, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

func toMatchDomain(data *model.MatchModel) *entity.MatchRecord {
	if data == nil {
		return nil
	}

	return &entity.MatchRecord{
		ID:          data.ID,
		LostItemID:  data.LostItemID,
		FoundItemID: data.FoundItemID,
		Score:       data.Score,
		DecidedAt:   data.DecidedAt,
	}
}

func fromMatchDomain(data *entity.MatchRecord) *model.MatchModel {
	if data == nil {
		return nil
	}

	return &model.MatchModel{
		ID:          data.ID,
		LostItemID:  data.LostItemID,
		FoundItemID: data.FoundItemID,
		PairKey:     data.PairKey(),
		Score:       data.Score,
		DecidedAt:   data.DecidedAt,
	}
}
