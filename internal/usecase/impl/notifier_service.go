package impl

import (
	"context"
	"log/slog"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRequeueLimit = 500

type notifierService struct {
	txManager    repository.TransactionManager
	notifRepo    repository.NotificationRepository
	dispatcher   service.JobDispatcher
	requeueLimit int
	logger       *slog.Logger
	now          func() time.Time
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	NotifRepo  repository.NotificationRepository
	Dispatcher service.JobDispatcher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewNotifierService creates the match notifier.
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	requeueLimit := defaultRequeueLimit
	if params.Config != nil && params.Config.Dispatch != nil && params.Config.Dispatch.RequeueLimit > 0 {
		requeueLimit = params.Config.Dispatch.RequeueLimit
	}

	return &notifierService{
		txManager:    params.TxManager,
		notifRepo:    params.NotifRepo,
		dispatcher:   params.Dispatcher,
		requeueLimit: requeueLimit,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (srv *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordMatch inserts the match, updates both reports and persists the alerts in one transaction.
func (srv *notifierService) RecordMatch(ctx context.Context, lostItemID, foundItemID uuid.UUID, score float64) (*entity.MatchRecord, error) {
	if lostItemID == foundItemID {
		return nil, domainerrors.ErrInvalidMatchPair.WithDetails("an item cannot match itself")
	}

	now := srv.now()
	match := &entity.MatchRecord{
		ID:          uuid.New(),
		LostItemID:  lostItemID,
		FoundItemID: foundItemID,
		Score:       min(max(score, 0), 1),
		DecidedAt:   now,
	}

	var jobs []*entity.NotificationJob
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		lost, err := findItem(ctx, itemRepo, lostItemID)
		if err != nil {
			return err
		}
		found, err := findItem(ctx, itemRepo, foundItemID)
		if err != nil {
			return err
		}
		if lost.Type != entity.ItemTypeLost || found.Type != entity.ItemTypeFound {
			return domainerrors.ErrInvalidMatchPair.WithDetails("expected one lost and one found item")
		}

		if err := repoFactory.NewMatchRepository().Create(ctx, match); err != nil {
			if errors.Is(err, repository.ErrDuplicateMatch) {
				return domainerrors.ErrMatchAlreadyRecorded.WithDetails(match.PairKey())
			}

			return errors.Wrap(err, "failed to create match")
		}

		for _, item := range []*entity.ItemReport{lost, found} {
			if err := markMatched(ctx, itemRepo, item); err != nil {
				return err
			}
		}

		jobs = []*entity.NotificationJob{
			entity.NewMatchAlertJob(match, lost, found, now),
			entity.NewMatchAlertJob(match, found, lost, now),
		}

		return errors.Wrap(repoFactory.NewNotificationRepository().CreateJobs(ctx, jobs), "failed to create match alerts")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Match recorded",
		slog.String("matchId", match.ID.String()),
		slog.String("lostItemId", lostItemID.String()),
		slog.String("foundItemId", foundItemID.String()),
		slog.Float64("score", match.Score),
	)

	srv.dispatcher.Enqueue(ctx, jobs...)

	return match, nil
}

// NotifyReport persists and schedules the reporter's confirmation.
func (srv *notifierService) NotifyReport(ctx context.Context, report *entity.ItemReport) error {
	job := entity.NewConfirmationJob(report, srv.now())

	if err := srv.notifRepo.CreateJobs(ctx, []*entity.NotificationJob{job}); err != nil {
		return errors.Wrap(err, "failed to create confirmation job")
	}

	srv.dispatcher.Enqueue(ctx, job)

	return nil
}

// RequeuePending re-dispatches jobs left pending by a restart or a full queue.
func (srv *notifierService) RequeuePending(ctx context.Context) (int, error) {
	jobs, err := srv.notifRepo.ListPending(ctx, srv.requeueLimit)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list pending jobs")
	}

	if len(jobs) > 0 {
		srv.dispatcher.Enqueue(ctx, jobs...)
		srv.log(ctx).Info("Requeued pending notification jobs", slog.Int("count", len(jobs)))
	}

	return len(jobs), nil
}

func findItem(ctx context.Context, itemRepo repository.ItemRepository, id uuid.UUID) (*entity.ItemReport, error) {
	item, err := itemRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrItemNotFound) {
		return nil, domainerrors.ErrItemNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// markMatched moves an open report to matched. Claimed and closed reports keep their status.
func markMatched(ctx context.Context, itemRepo repository.ItemRepository, item *entity.ItemReport) error {
	if item.Status != entity.ItemStatusOpen {
		return nil
	}

	err := itemRepo.UpdateStatus(ctx, item.ID, entity.ItemStatusMatched)
	if err != nil && !errors.Is(err, repository.ErrItemClosed) {
		return errors.Wrap(err, "failed to mark item matched")
	}
	if err == nil {
		item.Status = entity.ItemStatusMatched
	}

	return nil
}
