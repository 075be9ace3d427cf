// Package ratelimit provides fixed-window request limiting backed by memory or Redis
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed   bool
	Count     int
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts hits per key inside a fixed window
type Limiter interface {
	Allow(ctx context.Context, key string, limit int) Decision
}

// InMemoryLimiter is a process-local fixed window counter
type InMemoryLimiter struct {
	mu     sync.Mutex
	window time.Duration
	items  map[string]window
	now    func() time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

// NewInMemory returns a limiter with the given window, one minute when window <= 0
func NewInMemory(w time.Duration) *InMemoryLimiter {
	if w <= 0 {
		w = time.Minute
	}
	return &InMemoryLimiter{
		window: w,
		items:  make(map[string]window),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Allow records a hit for key and reports whether it fits under limit
func (l *InMemoryLimiter) Allow(_ context.Context, key string, limit int) Decision {
	if limit <= 0 {
		limit = 1
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	curr, ok := l.items[key]
	if !ok || !now.Before(curr.resetAt) {
		curr = window{resetAt: now.Add(l.window)}
	}
	curr.count++
	l.items[key] = curr

	return decide(curr.count, limit, curr.resetAt)
}

// sweep drops finished windows; caller holds mu
func (l *InMemoryLimiter) sweep(now time.Time) {
	for k, v := range l.items {
		if !now.Before(v.resetAt) {
			delete(l.items, k)
		}
	}
}

func decide(count, limit int, resetAt time.Time) Decision {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= limit,
		Count:     count,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
