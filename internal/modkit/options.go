package modkit

import (
	"net/http"

	phttp "contentgate/internal/platform/net/http"
)

// Option adjusts how a module is named and mounted
type Option func(*buildCfg)

type buildCfg struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	ports  any
	extra  []func(phttp.Router)
}

// WithName overrides the module name used in logs
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix overrides the mount prefix; later options win
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares appends middleware scoped to the module subrouter
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts hands a module the adapters it consumes; the module owns the concrete type
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithRoutes registers extra endpoints on the module subrouter after its own
func WithRoutes(fn func(phttp.Router)) Option {
	return func(c *buildCfg) {
		if fn != nil {
			c.extra = append(c.extra, fn)
		}
	}
}
