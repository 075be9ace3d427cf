package service

import (
	"context"
	"encoding/json"

	"contentgate/internal/platform/store"
)

// cached serves the snapshot stored under (path, key) or builds and stores it.
// Cache failures degrade to a miss or a skipped store; errors from build are never cached.
func cached[T any](ctx context.Context, s *Svc, path string, key any, build func() (T, error)) (T, error) {
	if s.cache == nil {
		return build()
	}
	k, err := store.Key(path, key)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("cache key failed")
		return build()
	}

	b, hit, err := s.cache.Get(ctx, k)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("path", path).Msg("cache get failed; passing through")
	case hit:
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		s.log.Warn().Str("path", path).Msg("cache entry undecodable; rebuilding")
	}

	v, err := build()
	if err != nil {
		return v, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("cache encode failed")
		return v, nil
	}
	if err := s.cache.Set(ctx, k, raw, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("cache set failed")
	}
	return v, nil
}
