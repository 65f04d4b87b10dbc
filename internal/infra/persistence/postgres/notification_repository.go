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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateJobs persists notification jobs in a batch.
func (repo *notificationRepository) CreateJobs(ctx context.Context, jobs []*entity.NotificationJob) error {
	if len(jobs) == 0 {
		return nil
	}

	jobModels := make([]*model.NotificationJobModel, 0, len(jobs))
	for _, job := range jobs {
		jobModels = append(jobModels, fromJobDomain(job))
	}

	if err := repo.db.WithContext(ctx).Create(&jobModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification jobs")
	}

	return nil
}

// FindJob retrieves a job by its ID.
func (repo *notificationRepository) FindJob(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	var jobM model.NotificationJobModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification job by ID")
	}

	return toJobDomain(&jobM), nil
}

// UpdateJob stores the delivery state of a job.
func (repo *notificationRepository) UpdateJob(ctx context.Context, job *entity.NotificationJob) error {
	job.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationJobModel{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"status":             string(job.Status),
			"attempts":           job.Attempts,
			"delivered_channels": model.EncodeChannels(job.DeliveredChannels),
			"last_error":         job.LastError,
			"updated_at":         job.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// ListPending returns pending jobs, oldest first.
func (repo *notificationRepository) ListPending(ctx context.Context, limit int) ([]*entity.NotificationJob, error) {
	var jobModels []*model.NotificationJobModel

	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.JobStatusPending)).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending notification jobs")
	}

	jobs := make([]*entity.NotificationJob, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

func toJobDomain(data *model.NotificationJobModel) *entity.NotificationJob {
	if data == nil {
		return nil
	}

	return &entity.NotificationJob{
		ID:             data.ID,
		Kind:           entity.JobKind(data.Kind),
		ItemID:         data.ItemID,
		MatchID:        data.MatchID,
		RecipientEmail: data.RecipientEmail,
		RecipientName:  data.RecipientName,
		PushToken:      data.PushToken,
		Payload: entity.JobPayload{
			ItemName:         data.Payload.ItemName,
			Description:      data.Payload.Description,
			Category:         entity.Category(data.Payload.Category),
			Location:         data.Payload.Location,
			Role:             entity.RecipientRole(data.Payload.Role),
			CounterpartID:    data.Payload.CounterpartID,
			CounterpartTitle: data.Payload.CounterpartTitle,
			CounterpartPlace: data.Payload.CounterpartPlace,
			Score:            data.Payload.Score,
		},
		Status:            entity.JobStatus(data.Status),
		Attempts:          data.Attempts,
		DeliveredChannels: model.DecodeChannels(data.DeliveredChannels),
		LastError:         data.LastError,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromJobDomain(data *entity.NotificationJob) *model.NotificationJobModel {
	if data == nil {
		return nil
	}

	return &model.NotificationJobModel{
		ID:             data.ID,
		Kind:           string(data.Kind),
		ItemID:         data.ItemID,
		MatchID:        data.MatchID,
		RecipientEmail: data.RecipientEmail,
		RecipientName:  data.RecipientName,
		PushToken:      data.PushToken,
		Payload: model.NotificationJobPayload{
			ItemName:         data.Payload.ItemName,
			Description:      data.Payload.Description,
			Category:         string(data.Payload.Category),
			Location:         data.Payload.Location,
			Role:             string(data.Payload.Role),
			CounterpartID:    data.Payload.CounterpartID,
			CounterpartTitle: data.Payload.CounterpartTitle,
			CounterpartPlace: data.Payload.CounterpartPlace,
			Score:            data.Payload.Score,
		},
		Status:            string(data.Status),
		Attempts:          data.Attempts,
		DeliveredChannels: model.EncodeChannels(data.DeliveredChannels),
		LastError:         data.LastError,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
