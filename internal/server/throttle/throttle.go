// Package throttle limits failed login attempts per email.
package throttle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts failures for a key inside a sliding window.
type Limiter interface {
	// Allow reports whether another attempt for key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
	// Fail records a failed attempt for key.
	Fail(ctx context.Context, key string) error
	// Reset forgets all failures for key.
	Reset(ctx context.Context, key string) error
}

const keyPrefix = "careerhub:login_attempts:"

// RedisLimiter keeps one counter per key that expires window after the
// first failure.
type RedisLimiter struct {
	rdb         redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

func NewRedisLimiter(rdb redis.Cmdable, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, maxAttempts: int64(maxAttempts), window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	v, err := l.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return false, fmt.Errorf("redis counter %q: %w", v, err)
	}
	return n < l.maxAttempts, nil
}

func (l *RedisLimiter) Fail(ctx context.Context, key string) error {
	n, err := l.rdb.Incr(ctx, keyPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, keyPrefix+key, l.window).Err(); err != nil {
			return fmt.Errorf("redis expire: %w", err)
		}
	}
	return nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Noop never throttles. It is used when no Redis address is configured.
type Noop struct{}

func (Noop) Allow(context.Context, string) (bool, error) { return true, nil }
func (Noop) Fail(context.Context, string) error          { return nil }
func (Noop) Reset(context.Context, string) error         { return nil }
