package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierService_RecordMatch(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	ctx := context.Background()

	t.Run("records the pair and schedules one alert per side", func(t *testing.T) {
		store := newTestStore(t)
		notifier := store.notifier()

		lost := store.createItem(t, report(entity.ItemTypeLost, "AirPods", "white airpods", entity.CategoryElectronics, "Klaus", now))
		found := report(entity.ItemTypeFound, "AirPods", "white airpods case", entity.CategoryElectronics, "Klaus", now)
		found.PushToken = "finder-device"
		store.createItem(t, found)

		match, err := notifier.RecordMatch(ctx, lost.ID, found.ID, 0.92)
		require.NoError(t, err)
		assert.Equal(t, lost.ID, match.LostItemID)
		assert.Equal(t, found.ID, match.FoundItemID)
		assert.InDelta(t, 0.92, match.Score, 1e-9)

		for _, id := range []uuid.UUID{lost.ID, found.ID} {
			item, err := store.items.FindByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, entity.ItemStatusMatched, item.Status)
		}

		jobs := store.dispatcher.Jobs()
		require.Len(t, jobs, 2)

		byItem := map[uuid.UUID]*entity.NotificationJob{}
		for _, job := range jobs {
			assert.Equal(t, entity.JobKindMatchAlert, job.Kind)
			require.NotNil(t, job.MatchID)
			assert.Equal(t, match.ID, *job.MatchID)
			byItem[job.ItemID] = job
		}

		owner := byItem[lost.ID]
		require.NotNil(t, owner)
		assert.Equal(t, entity.RoleOwner, owner.Payload.Role)
		assert.Equal(t, found.ID.String(), owner.Payload.CounterpartID)
		assert.Equal(t, []entity.Channel{entity.ChannelEmail}, owner.Channels())

		finder := byItem[found.ID]
		require.NotNil(t, finder)
		assert.Equal(t, entity.RoleFinder, finder.Payload.Role)
		assert.Equal(t, []entity.Channel{entity.ChannelEmail, entity.ChannelPush}, finder.Channels())

		pending, err := store.jobs.ListPending(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		recorded, err := store.matches.FindByItem(ctx, lost.ID)
		require.NoError(t, err)
		require.Len(t, recorded, 1)
		assert.Equal(t, match.ID, recorded[0].ID)
	})

	t.Run("second record of the same pair is rejected", func(t *testing.T) {
		store := newTestStore(t)
		notifier := store.notifier()

		lost := store.createItem(t, report(entity.ItemTypeLost, "Keys", "silver keys", entity.CategoryKeys, "Library", now))
		found := store.createItem(t, report(entity.ItemTypeFound, "Keys", "silver keys", entity.CategoryKeys, "Library", now))

		_, err := notifier.RecordMatch(ctx, lost.ID, found.ID, 0.8)
		require.NoError(t, err)

		_, err = notifier.RecordMatch(ctx, lost.ID, found.ID, 0.8)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrMatchAlreadyRecorded))

		assert.Equal(t, 2, store.dispatcher.CountKind(entity.JobKindMatchAlert))
		pending, err := store.jobs.ListPending(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, pending, 2)
	})

	t.Run("concurrent records of one pair succeed exactly once", func(t *testing.T) {
		store := newTestStore(t)
		notifier := store.notifier()

		lost := store.createItem(t, report(entity.ItemTypeLost, "Laptop", "silver macbook", entity.CategoryElectronics, "CRC", now))
		found := store.createItem(t, report(entity.ItemTypeFound, "Laptop", "silver macbook", entity.CategoryElectronics, "CRC", now))

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			rejected  int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := notifier.RecordMatch(ctx, lost.ID, found.ID, 0.9)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errors.Is(err, domainerrors.ErrMatchAlreadyRecorded):
					rejected++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, workers-1, rejected)

		pending, err := store.jobs.ListPending(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, pending, 2)
		assert.Equal(t, 2, store.dispatcher.CountKind(entity.JobKindMatchAlert))
	})

	t.Run("claimed and closed items keep their status", func(t *testing.T) {
		store := newTestStore(t)
		notifier := store.notifier()

		lost := report(entity.ItemTypeLost, "Jacket", "blue rain jacket", entity.CategoryClothing, "CRC", now)
		lost.Status = entity.ItemStatusClaimed
		store.createItem(t, lost)
		found := report(entity.ItemTypeFound, "Jacket", "blue rain jacket", entity.CategoryClothing, "CRC", now)
		found.Status = entity.ItemStatusClosed
		store.createItem(t, found)

		_, err := notifier.RecordMatch(ctx, lost.ID, found.ID, 0.7)
		require.NoError(t, err)

		gotLost, err := store.items.FindByID(ctx, lost.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusClaimed, gotLost.Status)

		gotFound, err := store.items.FindByID(ctx, found.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusClosed, gotFound.Status)
	})

	t.Run("invalid pairs are rejected without side effects", func(t *testing.T) {
		store := newTestStore(t)
		notifier := store.notifier()

		lostA := store.createItem(t, report(entity.ItemTypeLost, "Keys", "silver keys", entity.CategoryKeys, "Library", now))
		lostB := store.createItem(t, report(entity.ItemTypeLost, "Keys", "silver keys", entity.CategoryKeys, "Library", now))

		_, err := notifier.RecordMatch(ctx, lostA.ID, lostB.ID, 0.9)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidMatchPair))

		_, err = notifier.RecordMatch(ctx, lostA.ID, lostA.ID, 0.9)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidMatchPair))

		_, err = notifier.RecordMatch(ctx, lostA.ID, uuid.New(), 0.9)
		assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))

		assert.Empty(t, store.dispatcher.Jobs())
		item, err := store.items.FindByID(ctx, lostA.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusOpen, item.Status)
	})
}

func TestNotifierService_NotifyReport(t *testing.T) {
	store := newTestStore(t)
	notifier := store.notifier()
	ctx := context.Background()

	found := report(entity.ItemTypeFound, "Water bottle", "green nalgene", entity.CategoryWaterBottle, "Van Leer", time.Now().UTC())
	store.createItem(t, found)

	require.NoError(t, notifier.NotifyReport(ctx, found))

	jobs := store.dispatcher.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, entity.JobKindFoundConfirmation, jobs[0].Kind)
	assert.Equal(t, found.ReporterEmail, jobs[0].RecipientEmail)
	assert.Nil(t, jobs[0].MatchID)

	stored, err := store.jobs.FindJob(ctx, jobs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusPending, stored.Status)
	assert.Equal(t, "green nalgene", stored.Payload.Description)
}

func TestNotifierService_RequeuePending(t *testing.T) {
	store := newTestStore(t)
	notifier := store.notifier()
	ctx := context.Background()
	now := time.Now().UTC()

	lost := store.createItem(t, report(entity.ItemTypeLost, "Keys", "silver keys", entity.CategoryKeys, "Library", now))
	found := store.createItem(t, report(entity.ItemTypeFound, "Book", "linear algebra textbook", entity.CategoryBooks, "Library", now))

	require.NoError(t, notifier.NotifyReport(ctx, lost))
	require.NoError(t, notifier.NotifyReport(ctx, found))

	sent := store.dispatcher.Jobs()[0]
	sent.Status = entity.JobStatusSent
	sent.MarkDelivered(entity.ChannelEmail)
	require.NoError(t, store.jobs.UpdateJob(ctx, sent))

	store.dispatcher = &recordingDispatcher{}
	notifier = store.notifier()

	count, err := notifier.RequeuePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	requeued := store.dispatcher.Jobs()
	require.Len(t, requeued, 1)
	assert.Equal(t, found.ID, requeued[0].ItemID)
}
