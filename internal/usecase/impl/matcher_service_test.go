package impl

import (
	"context"
	"slices"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	repomocks "lostfound/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(repo repository.ItemRepository, cfg *config.MatchingConfig) *matcherService {
	return NewMatcherService(MatcherServiceParams{
		ItemRepo: repo,
		Config:   &config.Config{Matching: cfg},
		Logger:   discardLogger(),
	}).(*matcherService)
}

func TestMatcherService_FindCandidates(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("airpods found in same building match the lost report", func(t *testing.T) {
		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, config.DefaultMatching())

		lost := report(entity.ItemTypeLost, "AirPods Pro", "white AirPods Pro case, left earbud missing",
			entity.CategoryElectronics, "Clough Commons", now)
		found := report(entity.ItemTypeFound, "AirPods Pro", "found white AirPods case",
			entity.CategoryElectronics, "Clough Commons", now.Add(-2*time.Hour))

		repo.EXPECT().
			ListByType(mock.Anything, entity.ItemTypeFound, mock.MatchedBy(func(f repository.ItemFilter) bool {
				return f.Category == entity.CategoryElectronics &&
					slices.Equal(f.Statuses, []entity.ItemStatus{entity.ItemStatusOpen, entity.ItemStatusMatched}) &&
					f.Since.Equal(now.Add(-2*720*time.Hour))
			})).
			Return([]*entity.ItemReport{found}, nil)

		candidates, err := matcher.FindCandidates(context.Background(), lost)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, found.ID, candidates[0].ItemID)
		assert.GreaterOrEqual(t, candidates[0].Score, 0.6)
		assert.LessOrEqual(t, candidates[0].Score, 1.0)
		assert.Same(t, found, candidates[0].Item)
	})

	t.Run("already matched counterpart is still a candidate", func(t *testing.T) {
		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, config.DefaultMatching())

		lost := report(entity.ItemTypeLost, "Water bottle", "blue hydro flask with stickers",
			entity.CategoryWaterBottle, "CRC", now)
		found := report(entity.ItemTypeFound, "Water bottle", "blue hydro flask with stickers",
			entity.CategoryWaterBottle, "CRC", now.Add(-time.Hour))
		found.Status = entity.ItemStatusMatched

		repo.EXPECT().
			ListByType(mock.Anything, entity.ItemTypeFound, mock.MatchedBy(func(f repository.ItemFilter) bool {
				return slices.Contains(f.Statuses, entity.ItemStatusMatched) &&
					!slices.Contains(f.Statuses, entity.ItemStatusClaimed) &&
					!slices.Contains(f.Statuses, entity.ItemStatusClosed)
			})).
			Return([]*entity.ItemReport{found}, nil)

		candidates, err := matcher.FindCandidates(context.Background(), lost)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, found.ID, candidates[0].ItemID)
	})

	t.Run("category mismatch never matches when filtering", func(t *testing.T) {
		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, config.DefaultMatching())

		lost := report(entity.ItemTypeLost, "Keys", "silver keys on a red lanyard", entity.CategoryKeys, "Library", now)
		books := report(entity.ItemTypeFound, "Keys", "silver keys on a red lanyard", entity.CategoryBooks, "Library", now)

		repo.EXPECT().ListByType(mock.Anything, entity.ItemTypeFound, mock.Anything).
			Return([]*entity.ItemReport{books}, nil)

		candidates, err := matcher.FindCandidates(context.Background(), lost)
		require.NoError(t, err)
		assert.Empty(t, candidates)
		assert.NotNil(t, candidates)
	})

	t.Run("category mismatch is penalized when filter is off", func(t *testing.T) {
		cfg := config.DefaultMatching()
		cfg.CategoryFilter = false
		cfg.Threshold = 0.4

		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, cfg)

		lost := report(entity.ItemTypeLost, "Keys", "silver keys on a red lanyard", entity.CategoryKeys, "Library", now)
		sameCategory := report(entity.ItemTypeFound, "Keys", "silver keys on a red lanyard", entity.CategoryKeys, "Library", now)
		otherCategory := report(entity.ItemTypeFound, "Keys", "silver keys on a red lanyard", entity.CategoryOther, "Library", now)

		repo.EXPECT().
			ListByType(mock.Anything, entity.ItemTypeFound, mock.MatchedBy(func(f repository.ItemFilter) bool {
				return f.Category == ""
			})).
			Return([]*entity.ItemReport{otherCategory, sameCategory}, nil)

		candidates, err := matcher.FindCandidates(context.Background(), lost)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, sameCategory.ID, candidates[0].ItemID)
		assert.InDelta(t, 1.0, candidates[0].Score, 1e-9)
		assert.Equal(t, otherCategory.ID, candidates[1].ItemID)
		assert.InDelta(t, 0.5, candidates[1].Score, 1e-9)
	})

	t.Run("sorted by score then age and capped", func(t *testing.T) {
		cfg := config.DefaultMatching()
		cfg.MaxMatches = 2

		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, cfg)

		lost := report(entity.ItemTypeLost, "Backpack", "black north face backpack", entity.CategoryBag, "Library West", now)
		older := report(entity.ItemTypeFound, "Backpack", "black north face backpack", entity.CategoryBag, "Library West", now.Add(-3*time.Hour))
		newer := report(entity.ItemTypeFound, "Backpack", "black north face backpack", entity.CategoryBag, "Library West", now.Add(-2*time.Hour))
		elsewhere := report(entity.ItemTypeFound, "Backpack", "black north face backpack", entity.CategoryBag, "Klaus Building", now.Add(-1*time.Hour))
		unrelated := report(entity.ItemTypeFound, "Umbrella", "green golf umbrella", entity.CategoryBag, "Library West", now)

		repo.EXPECT().ListByType(mock.Anything, entity.ItemTypeFound, mock.Anything).
			Return([]*entity.ItemReport{elsewhere, unrelated, newer, older}, nil)

		candidates, err := matcher.FindCandidates(context.Background(), lost)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, older.ID, candidates[0].ItemID)
		assert.Equal(t, newer.ID, candidates[1].ItemID)
	})

	t.Run("reports beyond twice the recency window are excluded", func(t *testing.T) {
		cfg := config.DefaultMatching()
		cfg.RecencyWindow = 24 * time.Hour

		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, cfg)

		lost := report(entity.ItemTypeLost, "Hydro Flask", "blue hydro flask with stickers", entity.CategoryWaterBottle, "CRC", now)
		stale := report(entity.ItemTypeFound, "Hydro Flask", "blue hydro flask with stickers", entity.CategoryWaterBottle, "CRC", now.Add(-72*time.Hour))

		repo.EXPECT().ListByType(mock.Anything, entity.ItemTypeFound, mock.Anything).
			Return([]*entity.ItemReport{stale}, nil)

		candidates, err := matcher.FindCandidates(context.Background(), lost)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("report never matches itself", func(t *testing.T) {
		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, config.DefaultMatching())

		found := report(entity.ItemTypeFound, "BuzzCard", "buzzcard for jane doe", entity.CategoryBuzzCard, "Student Center", now)

		repo.EXPECT().ListByType(mock.Anything, entity.ItemTypeLost, mock.Anything).
			Return([]*entity.ItemReport{found}, nil)

		candidates, err := matcher.FindCandidates(context.Background(), found)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := repomocks.NewMockItemRepository(t)
		matcher := newTestMatcher(repo, config.DefaultMatching())

		repo.EXPECT().ListByType(mock.Anything, entity.ItemTypeFound, mock.Anything).
			Return(nil, errors.New("database is locked"))

		lost := report(entity.ItemTypeLost, "Keys", "silver keys", entity.CategoryKeys, "Library", now)
		_, err := matcher.FindCandidates(context.Background(), lost)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is locked")
	})
}
