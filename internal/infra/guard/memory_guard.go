// Package guard provides delivery guards that keep one worker per notification job.
package guard

import (
	"context"
	"sync"
	"time"

	"lostfound/internal/domain/service"
)

type memoryGuard struct {
	mu    sync.Mutex
	held  map[string]time.Time
	ttl   time.Duration
	clock func() time.Time
}

// NewMemoryGuard returns a process-local guard. Holds expire after ttl.
func NewMemoryGuard(ttl time.Duration) service.DeliveryGuard {
	return &memoryGuard{
		held:  make(map[string]time.Time),
		ttl:   ttl,
		clock: time.Now,
	}
}

func (g *memoryGuard) Acquire(_ context.Context, jobID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	if expires, ok := g.held[jobID]; ok && now.Before(expires) {
		return false, nil
	}
	g.held[jobID] = now.Add(g.ttl)

	return true, nil
}

func (g *memoryGuard) Release(_ context.Context, jobID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, jobID)

	return nil
}
