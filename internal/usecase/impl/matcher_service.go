package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryMismatchPenalty applies only when the category filter is disabled.
const categoryMismatchPenalty = 0.5

type matcherService struct {
	itemRepo repository.ItemRepository
	cfg      config.MatchingConfig
	logger   *slog.Logger
}

// MatcherServiceParams holds dependencies for MatcherService, injected by Fx.
type MatcherServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMatcherService creates the similarity matcher.
func NewMatcherService(params MatcherServiceParams) usecase.MatcherUsecase {
	cfg := config.DefaultMatching()
	if params.Config != nil && params.Config.Matching != nil {
		cfg = params.Config.Matching
	}

	return &matcherService{
		itemRepo: params.ItemRepo,
		cfg:      *cfg,
		logger:   params.Logger,
	}
}

func (srv *matcherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindCandidates scores the unresolved opposite-type pool against report.
// Matched reports stay in the pool until they are claimed or closed.
func (srv *matcherService) FindCandidates(ctx context.Context, report *entity.ItemReport) ([]entity.MatchCandidate, error) {
	filter := repository.ItemFilter{
		Statuses: []entity.ItemStatus{entity.ItemStatusOpen, entity.ItemStatusMatched},
	}
	if srv.cfg.CategoryFilter {
		filter.Category = report.Category
	}
	if srv.cfg.RecencyWindow > 0 && !report.CreatedAt.IsZero() {
		filter.Since = report.CreatedAt.Add(-2 * srv.cfg.RecencyWindow)
	}

	pool, err := srv.itemRepo.ListByType(ctx, report.Type.Opposite(), filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate pool")
	}

	candidates := make([]entity.MatchCandidate, 0, len(pool))
	for _, item := range pool {
		if item.ID == report.ID {
			continue
		}

		score, ok := srv.score(report, item)
		if !ok || score < srv.cfg.Threshold {
			continue
		}

		candidates = append(candidates, entity.NewMatchCandidate(item, score))
	}

	slices.SortFunc(candidates, func(a, b entity.MatchCandidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ItemID.String(), b.ItemID.String())
	})

	if srv.cfg.MaxMatches > 0 && len(candidates) > srv.cfg.MaxMatches {
		candidates = candidates[:srv.cfg.MaxMatches]
	}

	srv.log(ctx).Debug("Matched report against pool",
		slog.String("itemId", report.ID.String()),
		slog.Int("pool", len(pool)),
		slog.Int("candidates", len(candidates)),
	)

	return candidates, nil
}

// score combines text, location and recency similarity into [0,1].
func (srv *matcherService) score(report, candidate *entity.ItemReport) (float64, bool) {
	recency, ok := recencySimilarity(report.CreatedAt, candidate.CreatedAt, srv.cfg.RecencyWindow)
	if !ok {
		return 0, false
	}

	if srv.cfg.CategoryFilter && report.Category != candidate.Category {
		return 0, false
	}

	text := textSimilarity(report.Summary(), candidate.Summary())
	location := locationSimilarity(report.Location, candidate.Location, srv.cfg.FalloffMeters)

	totalWeight := srv.cfg.TextWeight + srv.cfg.LocationWeight + srv.cfg.TimeWeight
	if totalWeight <= 0 {
		return 0, false
	}

	score := (srv.cfg.TextWeight*text + srv.cfg.LocationWeight*location + srv.cfg.TimeWeight*recency) / totalWeight
	if report.Category != candidate.Category {
		score *= categoryMismatchPenalty
	}

	return min(max(score, 0), 1), true
}

