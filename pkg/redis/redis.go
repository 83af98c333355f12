package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/crm_backend/config"
)

// SessionKeyPrefix is where the identity service keeps live sessions.
const SessionKeyPrefix = "session:"

// NewRedisFromCentral creates a new Redis client from central config.
// An empty address means Redis is not configured and yields a nil client.
func NewRedisFromCentral(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	return NewRedis(ctx, FromCentralConfig(cfg))
}

func NewRedis(ctx context.Context, cfg Config) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is empty")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// SessionActive reports whether the session sid still has a key in Redis.
func SessionActive(ctx context.Context, rdb goredis.Cmdable, sid uuid.UUID) (bool, error) {
	n, err := rdb.Exists(ctx, SessionKeyPrefix+sid.String()).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return false, err
	}
	return n > 0, nil
}
