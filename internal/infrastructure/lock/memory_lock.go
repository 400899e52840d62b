package lock

import (
	"context"
	"sync"
	"time"
)

// InMemoryRestoreLock implements RestoreLock with a process-local map.
// Suitable for single-instance deployments and testing.
// WARNING: in-memory locks do not share state across process instances,
// which can allow concurrent restores in distributed deployments.
type InMemoryRestoreLock struct {
	mu      sync.Mutex
	held    map[int64]time.Time
	nowFunc func() time.Time
}

// NewInMemoryRestoreLock creates a new in-memory restore lock
func NewInMemoryRestoreLock() *InMemoryRestoreLock {
	return &InMemoryRestoreLock{
		held:    make(map[int64]time.Time),
		nowFunc: time.Now,
	}
}

// Acquire takes the lock unless a live entry for the workspace exists.
// Expired entries are reclaimed in place, matching the Redis TTL behavior.
func (l *InMemoryRestoreLock) Acquire(_ context.Context, workspaceID int64, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	if expiry, ok := l.held[workspaceID]; ok && now.Before(expiry) {
		return false, nil
	}
	l.held[workspaceID] = now.Add(ttl)
	return true, nil
}

// Release frees the lock
func (l *InMemoryRestoreLock) Release(_ context.Context, workspaceID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, workspaceID)
	return nil
}
