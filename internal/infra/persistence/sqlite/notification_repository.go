package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"
	"lostfound/internal/infra/persistence/model"

	"github.com/google/uuid"
)

const jobColumns = `id, kind, item_id, match_id, recipient_email, recipient_name, push_token, payload,
	status, attempts, delivered_channels, last_error, created_at, updated_at`

type notificationRepository struct {
	db querier
}

// NewNotificationRepository returns a NotificationRepository backed by db.
func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) CreateJobs(ctx context.Context, jobs []*entity.NotificationJob) error {
	for _, job := range jobs {
		payload, err := json.Marshal(job.Payload)
		if err != nil {
			return errors.Wrap(err, "encoding job payload")
		}

		var matchID sql.NullString
		if job.MatchID != nil {
			matchID = sql.NullString{String: job.MatchID.String(), Valid: true}
		}

		if _, err := repo.db.ExecContext(ctx,
			`INSERT INTO notification_jobs (`+jobColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			job.ID.String(), string(job.Kind), job.ItemID.String(), matchID,
			job.RecipientEmail, job.RecipientName, job.PushToken, string(payload),
			string(job.Status), job.Attempts, model.EncodeChannels(job.DeliveredChannels), job.LastError,
			toMicros(job.CreatedAt), toMicros(job.UpdatedAt),
		); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create notification jobs")
		}
	}

	return nil
}

func (repo *notificationRepository) FindJob(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM notification_jobs WHERE id = ?`, id.String())

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrJobNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification job by ID")
	}

	return job, nil
}

func (repo *notificationRepository) UpdateJob(ctx context.Context, job *entity.NotificationJob) error {
	job.UpdatedAt = time.Now().UTC()

	result, err := repo.db.ExecContext(ctx,
		`UPDATE notification_jobs SET status = ?, attempts = ?, delivered_channels = ?, last_error = ?, updated_at = ?
		 WHERE id = ?`,
		string(job.Status), job.Attempts, model.EncodeChannels(job.DeliveredChannels), job.LastError,
		toMicros(job.UpdatedAt), job.ID.String(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to update notification job")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading affected rows")
	}
	if affected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

func (repo *notificationRepository) ListPending(ctx context.Context, limit int) ([]*entity.NotificationJob, error) {
	query := `SELECT ` + jobColumns + ` FROM notification_jobs WHERE status = ? ORDER BY created_at ASC, id ASC`
	args := []any{string(entity.JobStatusPending)}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending notification jobs")
	}
	defer rows.Close()

	jobs := make([]*entity.NotificationJob, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning notification job")
		}
		jobs = append(jobs, job)
	}

	return jobs, errors.WithStack(rows.Err())
}

func scanJob(row rowScanner) (*entity.NotificationJob, error) {
	var (
		job                  entity.NotificationJob
		id, kind, itemID     string
		matchID              sql.NullString
		payload, status      string
		channels             string
		createdAt, updatedAt int64
	)

	if err := row.Scan(
		&id, &kind, &itemID, &matchID, &job.RecipientEmail, &job.RecipientName, &job.PushToken,
		&payload, &status, &job.Attempts, &channels, &job.LastError, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if job.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.Wrapf(err, "parsing job id %q", id)
	}
	if job.ItemID, err = uuid.Parse(itemID); err != nil {
		return nil, errors.Wrapf(err, "parsing item id %q", itemID)
	}
	if matchID.Valid {
		parsed, err := uuid.Parse(matchID.String)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing match id %q", matchID.String)
		}
		job.MatchID = &parsed
	}
	if err := json.Unmarshal([]byte(payload), &job.Payload); err != nil {
		return nil, errors.Wrap(err, "decoding job payload")
	}

	job.Kind = entity.JobKind(kind)
	job.Status = entity.JobStatus(status)
	job.DeliveredChannels = model.DecodeChannels(channels)
	job.CreatedAt = fromMicros(createdAt)
	job.UpdatedAt = fromMicros(updatedAt)

	return &job, nil
}
