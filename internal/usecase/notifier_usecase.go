package usecase

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// NotifierUsecase records matches and schedules the notifications they trigger.
type NotifierUsecase interface {
	// RecordMatch stores the pair at most once, marks both reports matched and
	// schedules one match alert per reporter. A second call for the same pair
	// returns ErrMatchAlreadyRecorded.
	RecordMatch(ctx context.Context, lostItemID, foundItemID uuid.UUID, score float64) (*entity.MatchRecord, error)

	// NotifyReport schedules the reporter's confirmation for a newly stored report.
	NotifyReport(ctx context.Context, report *entity.ItemReport) error

	// RequeuePending hands jobs that never completed back to the dispatcher.
	RequeuePending(ctx context.Context) (int, error)
}
