package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"

	"github.com/google/uuid"
)

const itemColumns = `id, item_type, user_id, title, description, category, building, latitude, longitude,
	photo_url, reporter_email, reporter_name, push_token, status, created_at, updated_at`

type itemRepository struct {
	db querier
}

// NewItemRepository returns an ItemRepository backed by db.
func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (repo *itemRepository) Create(ctx context.Context, item *entity.ItemReport) error {
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID.String(), string(item.Type), item.UserID, item.Title, item.Description,
		string(item.Category), item.Location.Building, item.Location.Latitude, item.Location.Longitude,
		item.PhotoURL, item.ReporterEmail, item.ReporterName, item.PushToken, string(item.Status),
		toMicros(item.CreatedAt), toMicros(item.UpdatedAt),
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	return nil
}

func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id.String())

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return item, nil
}

func (repo *itemRepository) ListByType(ctx context.Context, itemType entity.ItemType, filter repository.ItemFilter) ([]*entity.ItemReport, error) {
	var (
		where = []string{"item_type = ?"}
		args  = []any{string(itemType)}
	)

	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(filter.Category))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			placeholders = append(placeholders, "?")
			args = append(args, string(status))
		}
		where = append(where, "status IN ("+strings.Join(placeholders, ", ")+")")
	}
	if !filter.Since.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, toMicros(filter.Since))
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at DESC, id ASC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by type")
	}
	defer rows.Close()

	items := make([]*entity.ItemReport, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning item")
		}
		items = append(items, item)
	}

	return items, errors.WithStack(rows.Err())
}

func (repo *itemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error {
	result, err := repo.db.ExecContext(ctx,
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ? AND status <> ?`,
		string(status), toMicros(time.Now()), id.String(), string(entity.ItemStatusClosed),
	)
	if err != nil {
		return errors.Wrap(err, "failed to update item status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading affected rows")
	}
	if affected > 0 {
		return nil
	}

	var count int
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM items WHERE id = ?`, id.String()).Scan(&count); err != nil {
		return errors.Wrap(err, "failed to check item existence")
	}
	if count == 0 {
		return repository.ErrItemNotFound
	}

	return repository.ErrItemClosed
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.ItemReport, error) {
	var (
		item                 entity.ItemReport
		id                   string
		itemType, category   string
		status               string
		createdAt, updatedAt int64
	)

	if err := row.Scan(
		&id, &itemType, &item.UserID, &item.Title, &item.Description, &category,
		&item.Location.Building, &item.Location.Latitude, &item.Location.Longitude,
		&item.PhotoURL, &item.ReporterEmail, &item.ReporterName, &item.PushToken, &status,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing item id %q", id)
	}

	item.ID = parsed
	item.Type = entity.ItemType(itemType)
	item.Category = entity.Category(category)
	item.Status = entity.ItemStatus(status)
	item.CreatedAt = fromMicros(createdAt)
	item.UpdatedAt = fromMicros(updatedAt)

	return &item, nil
}
