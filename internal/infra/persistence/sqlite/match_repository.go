package sqlite

import (
	"context"
	"database/sql"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"

	"github.com/google/uuid"
)

type matchRepository struct {
	db querier
}

// NewMatchRepository returns a MatchRepository backed by db.
func NewMatchRepository(db *sql.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (repo *matchRepository) Create(ctx context.Context, match *entity.MatchRecord) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO matches (id, lost_item_id, found_item_id, pair_key, score, decided_at) VALUES (?, ?, ?, ?, ?, ?)`,
		match.ID.String(), match.LostItemID.String(), match.FoundItemID.String(), match.PairKey(),
		match.Score, toMicros(match.DecidedAt),
	)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMatch
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	return nil
}

func (repo *matchRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.MatchRecord, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT id, lost_item_id, found_item_id, score, decided_at FROM matches
		 WHERE lost_item_id = ? OR found_item_id = ? ORDER BY decided_at ASC, id ASC`,
		itemID.String(), itemID.String(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches by item")
	}
	defer rows.Close()

	matches := make([]*entity.MatchRecord, 0)
	for rows.Next() {
		var (
			id, lostID, foundID string
			match               entity.MatchRecord
			decidedAt           int64
		)
		if err := rows.Scan(&id, &lostID, &foundID, &match.Score, &decidedAt); err != nil {
			return nil, errors.Wrap(err, "scanning match")
		}

		if match.ID, err = uuid.Parse(id); err != nil {
			return nil, errors.Wrapf(err, "parsing match id %q", id)
		}
		if match.LostItemID, err = uuid.Parse(lostID); err != nil {
			return nil, errors.Wrapf(err, "parsing lost item id %q", lostID)
		}
		if match.FoundItemID, err = uuid.Parse(foundID); err != nil {
			return nil, errors.Wrapf(err, "parsing found item id %q", foundID)
		}
		match.DecidedAt = fromMicros(decidedAt)

		matches = append(matches, &match)
	}

	return matches, errors.WithStack(rows.Err())
}
