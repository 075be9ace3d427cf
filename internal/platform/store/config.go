package store

import "time"

// DefaultTTL applies when CACHE_TTL_SEC is unset
const DefaultTTL = 120 * time.Second

// Config aggregates per backend configuration
type Config struct {
	Redis RedisConfig

	// CacheTTL is the default entry lifetime
	CacheTTL time.Duration
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	// URL is a redis:// or rediss:// url; empty disables redis
	URL string

	// Guard/boot knobs:
	ConnectRetries int           // default 3
	PingTimeout    time.Duration // default 2s
}

func (c Config) withDefaults() Config {
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultTTL
	}
	if c.Redis.ConnectRetries <= 0 {
		c.Redis.ConnectRetries = 3
	}
	if c.Redis.PingTimeout <= 0 {
		c.Redis.PingTimeout = 2 * time.Second
	}
	return c
}
