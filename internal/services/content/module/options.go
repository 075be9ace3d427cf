package module

import (
	"time"

	"contentgate/internal/platform/config"
)

// Options holds configuration settings for the content module
type Options struct {
	CacheTTL           time.Duration
	RatePerMinute      int
	ScripturePerMinute int
	AllowFaithInLight  bool
}

// FromConfig reads CACHE_TTL_SEC, RATE_LIMIT_PER_MIN and ALLOW_FAITH_IN_LIGHT_BY_DEFAULT
func FromConfig(cfg config.Conf) Options {
	return Options{
		CacheTTL:           cfg.MaySeconds("CACHE_TTL_SEC", 120*time.Second),
		RatePerMinute:      cfg.MayInt("RATE_LIMIT_PER_MIN", 60),
		ScripturePerMinute: cfg.MayInt("RATE_LIMIT_SCRIPTURE_PER_MIN", 30),
		AllowFaithInLight:  cfg.MayBool("ALLOW_FAITH_IN_LIGHT_BY_DEFAULT", false),
	}
}
