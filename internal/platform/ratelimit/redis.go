package ratelimit

import (
	"context"
	"time"

	"contentgate/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// INCR then arm the expiry on the first hit so the window is fixed, not sliding
var windowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// RedisLimiter shares counters across replicas; on any Redis failure it
// falls back to a process-local window so requests keep flowing
type RedisLimiter struct {
	client   redis.Scripter
	window   time.Duration
	prefix   string
	timeout  time.Duration
	fallback *InMemoryLimiter
}

// NewRedis builds a Redis limiter; a nil client means memory only
func NewRedis(client redis.Scripter, w time.Duration) *RedisLimiter {
	if w <= 0 {
		w = time.Minute
	}
	return &RedisLimiter{
		client:   client,
		window:   w,
		prefix:   "cg:rl:",
		timeout:  2 * time.Second,
		fallback: NewInMemory(w),
	}
}

// Allow implements Limiter
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int) Decision {
	if limit <= 0 {
		limit = 1
	}
	if l.client == nil {
		return l.fallback.Allow(ctx, key, limit)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	res, err := windowScript.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil || len(res) < 2 {
		logger.Named("ratelimit").Warn().Err(err).Str("key", key).Msg("redis limiter unavailable; using memory window")
		return l.fallback.Allow(ctx, key, limit)
	}

	count, ttlMs := res[0], res[1]
	if ttlMs < 0 {
		ttlMs = l.window.Milliseconds()
	}
	return decide(int(count), limit, time.Now().UTC().Add(time.Duration(ttlMs)*time.Millisecond))
}
