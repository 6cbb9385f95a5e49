// Package ratelimit implements request throttling backed by Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests per key in fixed windows. All
// replicas share the same Redis counters, so the limit holds across
// the whole deployment.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the request for key fits in the current
// window. The counter key carries the window bucket so stale windows
// expire on their own.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().Unix() / int64(rl.window.Seconds())
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := rl.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		rl.client.Expire(ctx, counterKey, rl.window+time.Second)
	}

	return count <= int64(rl.limit), nil
}
