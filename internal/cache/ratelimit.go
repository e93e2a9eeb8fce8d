package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = keyPrefix + "ratelimit:"

// RateLimiter allows at most limit hits per key in each window
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a fixed-window rate limiter
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:  client,
		limit:  limit,
		window: window,
	}
}

// Allow records a hit for key and reports whether it is within the limit
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitPrefix + key
	count, err := l.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= int64(l.limit), nil
}
