package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRestoreLock_AcquireAndRelease(t *testing.T) {
	l := NewInMemoryRestoreLock()
	ctx := context.Background()

	ok, err := l.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Release(ctx, 7))

	ok, err = l.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryRestoreLock_WorkspacesAreIndependent(t *testing.T) {
	l := NewInMemoryRestoreLock()
	ctx := context.Background()

	ok, err := l.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Acquire(ctx, 8, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryRestoreLock_ExpiredEntryIsReclaimed(t *testing.T) {
	now := time.Now()
	l := NewInMemoryRestoreLock()
	l.nowFunc = func() time.Time { return now }
	ctx := context.Background()

	ok, err := l.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(30 * time.Second)
	ok, err = l.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(31 * time.Second)
	ok, err = l.Acquire(ctx, 7, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryRestoreLock_ReleaseWithoutAcquire(t *testing.T) {
	l := NewInMemoryRestoreLock()
	assert.NoError(t, l.Release(context.Background(), 7))
}
