package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// openRedis parses the url and pings with bounded backoff before publishing the client
func openRedis(ctx context.Context, cfg Config, s *Store) (*RedisCache, error) {
	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)

	const (
		backoffStart   = 100 * time.Millisecond
		backoffCeiling = time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < cfg.Redis.ConnectRetries; i++ {
		toCtx, cancel := context.WithTimeout(ctx, cfg.Redis.PingTimeout)
		lastErr = client.Ping(toCtx).Err()
		cancel()

		if lastErr == nil {
			s.Log.Info().Str("addr", opt.Addr).Int("db", opt.DB).Msg("redis cache connected")
			return NewRedis(client, cfg.CacheTTL), nil
		}
		if ctx.Err() != nil {
			_ = client.Close()
			return nil, ctx.Err()
		}
		if i == cfg.Redis.ConnectRetries-1 {
			break
		}
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		}
		backoff = min(backoff*2, backoffCeiling)
	}

	_ = client.Close()
	return nil, fmt.Errorf("redis ping failed after %d attempts: %w", cfg.Redis.ConnectRetries, lastErr)
}
