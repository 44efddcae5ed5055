package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitRepository is a fixed-window request counter.
type RateLimitRepository struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

func NewRateLimitRepository(client *redis.Client, limit int, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "ratelimit:evaluations",
	}
}

// Allow counts one request for key in the current window. It returns whether
// the request fits the limit and how long until the window resets.
func (r *RateLimitRepository) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	windowKey := fmt.Sprintf("%s:%s", r.prefix, key)

	count, err := r.client.Incr(ctx, windowKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to count request in Redis: %w", err)
	}

	if count == 1 {
		if err := r.client.Expire(ctx, windowKey, r.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	retryAfter, err := r.client.PTTL(ctx, windowKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to read rate limit window: %w", err)
	}

	// a counter without expiry would never reset
	if retryAfter < 0 {
		if err := r.client.Expire(ctx, windowKey, r.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
		retryAfter = r.window
	}

	return count <= r.limit, retryAfter, nil
}
