// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type itemService struct {
	itemRepo  repository.ItemRepository
	matchRepo repository.MatchRepository
	matcher   usecase.MatcherUsecase
	notifier  usecase.NotifierUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo  repository.ItemRepository
	MatchRepo repository.MatchRepository
	Matcher   usecase.MatcherUsecase
	Notifier  usecase.NotifierUsecase
	Logger    *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo:  params.ItemRepo,
		matchRepo: params.MatchRepo,
		matcher:   params.Matcher,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitLost ingests a lost report.
func (srv *itemService) SubmitLost(ctx context.Context, input *usecase.SubmitItemInput) (*usecase.SubmitOutput, error) {
	return srv.submit(ctx, entity.ItemTypeLost, input)
}

// SubmitFound ingests a found report.
func (srv *itemService) SubmitFound(ctx context.Context, input *usecase.SubmitItemInput) (*usecase.SubmitOutput, error) {
	return srv.submit(ctx, entity.ItemTypeFound, input)
}

// submit validates, persists, matches and notifies. Once the report is stored the
// submission succeeds: matching and notification failures are logged, not returned.
func (srv *itemService) submit(ctx context.Context, itemType entity.ItemType, input *usecase.SubmitItemInput) (*usecase.SubmitOutput, error) {
	report := srv.buildReport(ctx, itemType, input)

	if _, reason, ok := report.Validate(); !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails(reason)
	}

	if err := srv.itemRepo.Create(ctx, report); err != nil {
		srv.log(ctx).Error("Failed to store item report", slog.String("itemType", string(itemType)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store item report")
	}

	srv.log(ctx).Info("Item report stored",
		slog.String("itemId", report.ID.String()),
		slog.String("itemType", string(itemType)),
		slog.String("category", string(report.Category)),
	)

	if err := srv.notifier.NotifyReport(ctx, report); err != nil {
		srv.log(ctx).Warn("Failed to schedule confirmation", slog.String("itemId", report.ID.String()), slog.Any("error", err))
	}

	matches, err := srv.matcher.FindCandidates(ctx, report)
	if err != nil {
		srv.log(ctx).Error("Matching failed, returning report without matches",
			slog.String("itemId", report.ID.String()), slog.Any("error", err))

		return &usecase.SubmitOutput{Item: report, Matches: []entity.MatchCandidate{}}, nil
	}

	for _, candidate := range matches {
		lostID, foundID := report.ID, candidate.ItemID
		if itemType == entity.ItemTypeFound {
			lostID, foundID = candidate.ItemID, report.ID
		}

		_, err := srv.notifier.RecordMatch(ctx, lostID, foundID, candidate.Score)
		switch {
		case err == nil:
			report.Status = entity.ItemStatusMatched
		case errors.Is(err, domainerrors.ErrMatchAlreadyRecorded):
			// A concurrent submission recorded the pair first.
			report.Status = entity.ItemStatusMatched
		default:
			srv.log(ctx).Error("Failed to record match",
				slog.String("lostItemId", lostID.String()),
				slog.String("foundItemId", foundID.String()),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.SubmitOutput{Item: report, Matches: matches}, nil
}

func (srv *itemService) buildReport(ctx context.Context, itemType entity.ItemType, input *usecase.SubmitItemInput) *entity.ItemReport {
	category := entity.Category(strings.TrimSpace(input.Category))
	if parsed, ok := entity.ParseCategory(input.Category); ok {
		category = parsed
	}

	userID := input.UserID
	if credential := deliverycontext.GetUserIDFromContext(ctx); credential != "" {
		userID = credential
	}

	location := input.Location
	location.Building = strings.TrimSpace(location.Building)
	if location.Building != "" {
		location = entity.ResolveLocation(location)
	}

	now := srv.now()

	return &entity.ItemReport{
		ID:            uuid.New(),
		Type:          itemType,
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Category:      category,
		Location:      location,
		PhotoURL:      strings.TrimSpace(input.PhotoURL),
		ReporterEmail: strings.TrimSpace(input.ReporterEmail),
		ReporterName:  strings.TrimSpace(input.ReporterName),
		PushToken:     strings.TrimSpace(input.PushToken),
		Status:        entity.ItemStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ListAll returns every report of a type, newest first.
func (srv *itemService) ListAll(ctx context.Context, itemType entity.ItemType) ([]*entity.ItemReport, error) {
	items, err := srv.itemRepo.ListByType(ctx, itemType, repository.ItemFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// ListOpen returns open reports of a type, newest first.
func (srv *itemService) ListOpen(ctx context.Context, itemType entity.ItemType) ([]*entity.ItemReport, error) {
	items, err := srv.itemRepo.ListByType(ctx, itemType, repository.ItemFilter{
		Statuses: []entity.ItemStatus{entity.ItemStatusOpen},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open items")
	}

	return items, nil
}

// GetItem returns a single report.
func (srv *itemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error) {
	return findItem(ctx, srv.itemRepo, id)
}

// ClaimItem marks a report claimed.
func (srv *itemService) ClaimItem(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error) {
	return srv.transition(ctx, id, entity.ItemStatusClaimed)
}

// CloseItem closes a report.
func (srv *itemService) CloseItem(ctx context.Context, id uuid.UUID) (*entity.ItemReport, error) {
	return srv.transition(ctx, id, entity.ItemStatusClosed)
}

func (srv *itemService) transition(ctx context.Context, id uuid.UUID, status entity.ItemStatus) (*entity.ItemReport, error) {
	err := srv.itemRepo.UpdateStatus(ctx, id, status)
	switch {
	case errors.Is(err, repository.ErrItemNotFound):
		return nil, domainerrors.ErrItemNotFound.WithDetails(id.String())
	case errors.Is(err, repository.ErrItemClosed):
		return nil, domainerrors.ErrItemClosed.WithDetails(id.String())
	case err != nil:
		return nil, errors.Wrap(err, "failed to update item status")
	}

	srv.log(ctx).Info("Item status changed", slog.String("itemId", id.String()), slog.String("status", string(status)))

	return findItem(ctx, srv.itemRepo, id)
}

// ItemMatches returns the recorded matches of a report.
func (srv *itemService) ItemMatches(ctx context.Context, id uuid.UUID) ([]*entity.MatchRecord, error) {
	if _, err := findItem(ctx, srv.itemRepo, id); err != nil {
		return nil, err
	}

	matches, err := srv.matchRepo.FindByItem(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches")
	}

	return matches, nil
}
