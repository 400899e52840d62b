package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRestoreLock implements RestoreLock using Redis
// This is suitable for distributed deployments where multiple instances
// may attempt to restore the same workspace concurrently
type RedisRestoreLock struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisRestoreLock creates a new Redis-based restore lock
func NewRedisRestoreLock(cfg RedisConfig) (*RedisRestoreLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRestoreLock{
		client:    client,
		keyPrefix: "workspace:restore:",
	}, nil
}

// NewRedisRestoreLockWithClient creates a lock with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisRestoreLockWithClient(client *redis.Client, keyPrefix string) *RedisRestoreLock {
	if keyPrefix == "" {
		keyPrefix = "workspace:restore:"
	}
	return &RedisRestoreLock{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (l *RedisRestoreLock) key(workspaceID int64) string {
	return fmt.Sprintf("%s%d", l.keyPrefix, workspaceID)
}

// Acquire takes the lock with a TTL so a crashed restore cannot wedge the
// workspace forever. Uses SETNX for atomic check-and-set.
func (l *RedisRestoreLock) Acquire(ctx context.Context, workspaceID int64, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(workspaceID), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire restore lock: %w", err)
	}
	return ok, nil
}

// Release frees the lock
func (l *RedisRestoreLock) Release(ctx context.Context, workspaceID int64) error {
	if err := l.client.Del(ctx, l.key(workspaceID)).Err(); err != nil {
		return fmt.Errorf("failed to release restore lock: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (l *RedisRestoreLock) Close() error {
	return l.client.Close()
}
