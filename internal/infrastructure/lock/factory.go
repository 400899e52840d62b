package lock

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/infrastructure/config"
)

// RestoreLockFactory creates restore locks based on configuration
type RestoreLockFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// RestoreLockFactoryOption is a functional option for configuring the factory
type RestoreLockFactoryOption func(*RestoreLockFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) RestoreLockFactoryOption {
	return func(f *RestoreLockFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory lock when
// Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) RestoreLockFactoryOption {
	return func(f *RestoreLockFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewRestoreLockFactory creates a new factory
func NewRestoreLockFactory(cfg config.RedisConfig, opts ...RestoreLockFactoryOption) *RestoreLockFactory {
	f := &RestoreLockFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateLock creates a restore lock based on whether Redis is available.
// It tries Redis first and falls back to in-memory when Redis is unreachable
// and fallback is allowed.
func (f *RestoreLockFactory) CreateLock() (RestoreLock, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory restore lock")
		return NewInMemoryRestoreLock(), nil
	}

	redisLock, err := NewRedisRestoreLock(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err == nil {
		f.logger.Info("using Redis restore lock",
			zap.String("host", f.redisConfig.Host),
			zap.Int("port", f.redisConfig.Port))
		return redisLock, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("failed to create Redis restore lock and fallback is disabled: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory restore lock",
		zap.Error(err))
	return NewInMemoryRestoreLock(), nil
}
