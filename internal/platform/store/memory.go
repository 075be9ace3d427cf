package store

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a process-local cache; expired entries are dropped when read
type MemoryCache struct {
	mu         sync.Mutex
	items      map[string]memEntry
	defaultTTL time.Duration
	now        func() time.Time
}

type memEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory returns an empty memory cache
func NewMemory(defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &MemoryCache{
		items:      make(map[string]memEntry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get implements Cache
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.items, key)
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

// Set implements Cache
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	v := make([]byte, len(value))
	copy(v, value)

	c.mu.Lock()
	c.items[key] = memEntry{value: v, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Ping implements Cache
func (c *MemoryCache) Ping(context.Context) error { return nil }

// Backend implements Cache
func (c *MemoryCache) Backend() string { return "memory" }

// Len reports stored entries, expired ones included until read
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
