package ratelimit

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// One atomic pass: drop entries older than the window, count what is left,
// admit and record the request only when under the limit.
var slidingWindowScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call("ZREMRANGEBYSCORE", KEYS[1], 0, now - window)
if redis.call("ZCARD", KEYS[1]) >= limit then
  return 0
end
redis.call("ZADD", KEYS[1], now, ARGV[4])
redis.call("PEXPIRE", KEYS[1], window)
return 1
`)

// SlidingWindowLimiter limits requests per key over a sliding time window,
// backed by a redis sorted set of request timestamps.
type SlidingWindowLimiter struct {
	limit  int
	window time.Duration

	client *redis.Client
	prefix string
}

func NewSlidingWindowLimiter(client *redis.Client, prefix string, limit int, window time.Duration) (*SlidingWindowLimiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	if client == nil {
		return nil, errors.New("rate limiter requires a redis client")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "interviewcraft:ratelimit"
	}
	return &SlidingWindowLimiter{
		limit:  limit,
		window: window,
		client: client,
		prefix: prefix,
	}, nil
}

// Allow returns true when the key is within quota. On redis failures it fails
// closed and returns false.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	now := time.Now().UTC().UnixMilli()
	cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	res, err := slidingWindowScript.Run(cctx, l.client,
		[]string{l.prefix + ":" + key},
		now, l.window.Milliseconds(), l.limit, uuid.NewString(),
	).Int64()
	if err != nil {
		return false
	}
	return res == 1
}
