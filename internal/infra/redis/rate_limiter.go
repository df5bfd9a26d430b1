package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter implements a fixed-window counter on Redis. The window key
// expires on first increment, so an idle key costs nothing.
type RateLimiter struct {
	client RedisClient
}

func NewRateLimiter(client RedisClient) *RateLimiter {
	return &RateLimiter{client: client}
}

// Allow reports whether the caller identified by key is still inside its
// window limit. Errors from Redis fail open so a cache outage does not
// lock every user out.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, key)
	if err != nil {
		return true, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window); err != nil {
			return true, err
		}
	}
	return count <= limit, nil
}

// UserRouteKey builds the counter key for a user hitting a route group.
func UserRouteKey(userID, route string) string {
	return fmt.Sprintf("ratelimit:%s:%s", route, userID)
}
