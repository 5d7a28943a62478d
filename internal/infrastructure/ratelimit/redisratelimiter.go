// Package ratelimit implements a Redis-backed fixed-window request
// counter shared by every instance of the server.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests per key in fixed windows. Each key
// gets a counter with TTL equal to the window, so the budget is shared
// across instances pointing at the same Redis.
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

// Allow increments the counter for key in the current window and
// reports whether the request is within budget. Redis errors fail open:
// an unreachable Redis must not take the API down with it.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().Unix() / int64(rl.window.Seconds())
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := rl.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return true, err
	}

	if count == 1 {
		rl.client.Expire(ctx, counterKey, rl.window+time.Second)
	}

	return count <= int64(rl.limit), nil
}
