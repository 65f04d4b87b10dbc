package guard

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestMemoryGuard(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGuard(time.Minute).(*memoryGuard)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	g.clock = func() time.Time { return now }

	ok, err := g.Acquire(ctx, "job-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = g.Acquire(ctx, "job-1")
	assert.False(t, ok, "held job must not be acquired twice")

	ok, _ = g.Acquire(ctx, "job-2")
	assert.True(t, ok)

	require.NoError(t, g.Release(ctx, "job-1"))
	ok, _ = g.Acquire(ctx, "job-1")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = g.Acquire(ctx, "job-2")
	assert.True(t, ok, "expired hold is reclaimed")
}

func TestMemoryGuard_ConcurrentAcquire(t *testing.T) {
	g := NewMemoryGuard(time.Minute)

	var (
		wg    sync.WaitGroup
		count atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := g.Acquire(context.Background(), "job"); ok {
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), count.Load())
}

type fakeLocker struct {
	keys   []string
	setNX  bool
	err    error
	ttl    time.Duration
	delKey string
}

func (f *fakeLocker) SetNX(_ context.Context, key string, _ any, expiration time.Duration) *redis.BoolCmd {
	f.keys = append(f.keys, key)
	f.ttl = expiration

	return redis.NewBoolResult(f.setNX, f.err)
}

func (f *fakeLocker) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.delKey = keys[0]

	return redis.NewIntResult(1, f.err)
}

func TestRedisGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire and release use the prefixed key", func(t *testing.T) {
		client := &fakeLocker{setNX: true}
		g := &redisGuard{client: client, ttl: 30 * time.Second}

		ok, err := g.Acquire(ctx, "job-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"lostfound:delivery:job-1"}, client.keys)
		assert.Equal(t, 30*time.Second, client.ttl)

		require.NoError(t, g.Release(ctx, "job-1"))
		assert.Equal(t, "lostfound:delivery:job-1", client.delKey)
	})

	t.Run("held elsewhere", func(t *testing.T) {
		g := &redisGuard{client: &fakeLocker{setNX: false}, ttl: time.Second}

		ok, err := g.Acquire(ctx, "job-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("connection failure", func(t *testing.T) {
		g := &redisGuard{client: &fakeLocker{err: errors.New("dial tcp: connection refused")}, ttl: time.Second}

		_, err := g.Acquire(ctx, "job-1")
		require.Error(t, err)
		require.Error(t, g.Release(ctx, "job-1"))
	})
}

func TestNewDeliveryGuard(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	g, err := NewDeliveryGuard(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &memoryGuard{}, g)

	_, err = NewDeliveryGuard(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Dispatch: &config.DispatchConfig{Guard: constants.GuardProviderRedis}},
		Logger: logger,
	})
	require.Error(t, err)

	g, err = NewDeliveryGuard(Params{
		Lc: fxtest.NewLifecycle(t),
		Config: &config.Config{
			Dispatch: &config.DispatchConfig{Guard: constants.GuardProviderRedis},
			Redis:    &config.RedisConfig{Addr: "localhost:6379"},
		},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &redisGuard{}, g)

	_, err = NewDeliveryGuard(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Dispatch: &config.DispatchConfig{Guard: "zookeeper"}},
		Logger: logger,
	})
	require.Error(t, err)
}
