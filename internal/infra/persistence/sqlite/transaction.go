package sqlite

import (
	"context"
	"database/sql"

	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"
)

type sqlTransactionManager struct {
	db *sql.DB
}

// sqlRepositoryFactory hands out repositories bound to one *sql.Tx.
type sqlRepositoryFactory struct {
	tx *sql.Tx
}

func (f *sqlRepositoryFactory) NewItemRepository() repository.ItemRepository {
	return &itemRepository{db: f.tx}
}

func (f *sqlRepositoryFactory) NewMatchRepository() repository.MatchRepository {
	return &matchRepository{db: f.tx}
}

func (f *sqlRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return &notificationRepository{db: f.tx}
}

// NewTransactionManager returns a TransactionManager backed by db.
func NewTransactionManager(db *sql.DB) repository.TransactionManager {
	return &sqlTransactionManager{db: db}
}

// Execute runs fn inside one transaction, committing only when fn succeeds.
func (tm *sqlTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&sqlRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Errorf("transaction rollback failed: %v (original error: %v)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
