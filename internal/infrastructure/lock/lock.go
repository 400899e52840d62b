package lock

import (
	"context"
	"time"
)

// RestoreLock is the per-workspace advisory lock taken for the duration of a
// restore. Two restores against the same workspace must never interleave:
// the wipe step of one attempt could observe the torn state of another.
type RestoreLock interface {
	// Acquire takes the lock for the workspace. Returns false when another
	// restore already holds it.
	Acquire(ctx context.Context, workspaceID int64, ttl time.Duration) (bool, error)
	// Release frees the lock. Safe to call after a failed Acquire.
	Release(ctx context.Context, workspaceID int64) error
}
