package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/infra/persistence/sqlite"
	"lostfound/internal/infra/persistence/sqlite/sqlitetest"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingDispatcher captures enqueued jobs instead of delivering them.
type recordingDispatcher struct {
	mu   sync.Mutex
	jobs []*entity.NotificationJob
}

func (d *recordingDispatcher) Enqueue(_ context.Context, jobs ...*entity.NotificationJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, jobs...)
}

func (d *recordingDispatcher) Jobs() []*entity.NotificationJob {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]*entity.NotificationJob(nil), d.jobs...)
}

func (d *recordingDispatcher) CountKind(kind entity.JobKind) int {
	count := 0
	for _, job := range d.Jobs() {
		if job.Kind == kind {
			count++
		}
	}

	return count
}

type testStore struct {
	items      repository.ItemRepository
	matches    repository.MatchRepository
	jobs       repository.NotificationRepository
	tx         repository.TransactionManager
	dispatcher *recordingDispatcher
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db := sqlitetest.NewDB(t)

	return &testStore{
		items:      sqlite.NewItemRepository(db),
		matches:    sqlite.NewMatchRepository(db),
		jobs:       sqlite.NewNotificationRepository(db),
		tx:         sqlite.NewTransactionManager(db),
		dispatcher: &recordingDispatcher{},
	}
}

func (s *testStore) notifier() *notifierService {
	return NewNotifierService(NotifierServiceParams{
		TxManager:  s.tx,
		NotifRepo:  s.jobs,
		Dispatcher: s.dispatcher,
		Config:     &config.Config{Dispatch: &config.DispatchConfig{RequeueLimit: 100}},
		Logger:     discardLogger(),
	}).(*notifierService)
}

func (s *testStore) itemService() *itemService {
	matcher := NewMatcherService(MatcherServiceParams{
		ItemRepo: s.items,
		Config:   &config.Config{Matching: config.DefaultMatching()},
		Logger:   discardLogger(),
	})

	return NewItemService(ItemServiceParams{
		ItemRepo:  s.items,
		MatchRepo: s.matches,
		Matcher:   matcher,
		Notifier:  s.notifier(),
		Logger:    discardLogger(),
	}).(*itemService)
}

func (s *testStore) createItem(t *testing.T, item *entity.ItemReport) *entity.ItemReport {
	t.Helper()
	if err := s.items.Create(context.Background(), item); err != nil {
		t.Fatalf("create item: %v", err)
	}

	return item
}

// tickingClock returns a clock that advances one second per call.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)

		return current
	}
}

func report(itemType entity.ItemType, title, description string, category entity.Category, building string, createdAt time.Time) *entity.ItemReport {
	return &entity.ItemReport{
		ID:            uuid.New(),
		Type:          itemType,
		Title:         title,
		Description:   description,
		Category:      category,
		Location:      entity.ResolveLocation(entity.Location{Building: building}),
		ReporterEmail: string(itemType) + "@gatech.edu",
		ReporterName:  "Reporter " + string(itemType),
		Status:        entity.ItemStatusOpen,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}
