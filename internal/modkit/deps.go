// Package modkit wires API modules: shared deps, mount options and the module contract
package modkit

import (
	"contentgate/internal/platform/config"
	"contentgate/internal/platform/logger"
	"contentgate/internal/platform/ratelimit"
	"contentgate/internal/platform/store"
	ptime "contentgate/internal/platform/time"
)

// Deps holds what every module may draw on; all fields are optional
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Store   *store.Store
	Limiter ratelimit.Limiter
	Clock   ptime.Clock
}

// Now returns the injected clock, or the system clock when unset
func (d Deps) Now() ptime.Clock {
	if d.Clock == nil {
		return ptime.System
	}
	return d.Clock
}

// Cache returns the store cache or nil when no store was wired
func (d Deps) Cache() store.Cache {
	if d.Store == nil {
		return nil
	}
	return d.Store.Cache
}

// Named returns a child logger tagged with the module component
func (d Deps) Named(component string) *logger.Logger {
	l := d.Log.With().Str("component", component).Logger()
	return &l
}
