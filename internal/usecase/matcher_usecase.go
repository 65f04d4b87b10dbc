package usecase

import (
	"context"

	"lostfound/internal/domain/entity"
)

// MatcherUsecase ranks opposite-type reports against a new report.
type MatcherUsecase interface {
	// FindCandidates returns candidates above the acceptance threshold, best first.
	// An empty pool yields an empty, non-nil slice.
	FindCandidates(ctx context.Context, report *entity.ItemReport) ([]entity.MatchCandidate, error)
}
