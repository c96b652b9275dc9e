package redis

import (
	"context"
	"fmt"
	"time"

	"atm-withdrawal/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements ports.RateLimitStore with fixed-window counters.
type RateLimitStore struct {
	client goredis.UniversalClient
	prefix string
}

var _ ports.RateLimitStore = (*RateLimitStore)(nil)

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client goredis.UniversalClient) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "atm:ratelimit:",
	}
}

// Allow counts one request for key and reports whether it is within limit.
// Windows are aligned to multiples of window since the Unix epoch, and the
// counter key expires one second after its window closes.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	if window < time.Second {
		return nil, fmt.Errorf("rate limit window must be at least 1s, got %s", window)
	}

	size := int64(window / time.Second)
	windowID := time.Now().Unix() / size
	resetAt := (windowID + 1) * size
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)

	var incr *goredis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireAt(ctx, redisKey, time.Unix(resetAt+1, 0))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}

	count := incr.Val()
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
