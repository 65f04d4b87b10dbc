package guard

import (
	"context"
	"time"

	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lostfound:delivery:"

// locker is the subset of redis.Cmdable the guard uses.
type locker interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisGuard struct {
	client locker
	ttl    time.Duration
}

// NewRedisGuard returns a guard shared by every worker connected to client.
func NewRedisGuard(client redis.Cmdable, ttl time.Duration) service.DeliveryGuard {
	return &redisGuard{client: client, ttl: ttl}
}

func (g *redisGuard) Acquire(ctx context.Context, jobID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, keyPrefix+jobID, time.Now().UTC().Format(time.RFC3339Nano), g.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire delivery guard")
	}

	return ok, nil
}

func (g *redisGuard) Release(ctx context.Context, jobID string) error {
	if err := g.client.Del(ctx, keyPrefix+jobID).Err(); err != nil {
		return errors.Wrap(err, "failed to release delivery guard")
	}

	return nil
}
