// Package store provides the response cache used by the gateway
// Redis when configured and reachable, an in-process map otherwise
package store

import (
	"context"
	"errors"
	"time"

	"contentgate/internal/platform/logger"
)

// Cache is the byte cache seam services depend on
type Cache interface {
	// Get returns the value and true on a hit; a miss is (nil, false, nil)
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for ttl; ttl <= 0 uses the backend default
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	// Backend names the implementation ("redis" or "memory")
	Backend() string
}

// Store is the facade over the optional backends
// zero value is safe but has no cache
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// Cache is always set after Open
	Cache Cache

	closers []func() error
}

// Open constructs a Store, degrading to the memory cache when Redis is unset or unreachable
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Str("component", "store").Logger()
	cfg = cfg.withDefaults()

	if s.Cache != nil {
		return s, nil
	}
	if cfg.Redis.URL == "" {
		s.Log.Info().Msg("REDIS_URL not set; using in-memory cache")
		s.Cache = NewMemory(cfg.CacheTTL)
		return s, nil
	}

	rc, err := openRedis(ctx, cfg, s)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.Log.Warn().Err(err).Msg("redis unavailable; using in-memory cache")
		s.Cache = NewMemory(cfg.CacheTTL)
		return s, nil
	}
	s.Cache = rc
	s.closers = append(s.closers, rc.Close)
	return s, nil
}

// Guard pings the configured cache
func (s *Store) Guard(ctx context.Context) error {
	if s == nil || s.Cache == nil {
		return errors.New("nil store")
	}
	return s.Cache.Ping(ctx)
}

// Close closes all initialized backends gracefully
func (s *Store) Close(context.Context) error {
	var errs []error
	for _, c := range s.closers {
		if e := c(); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
