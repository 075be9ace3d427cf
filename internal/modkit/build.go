package modkit

import (
	"net/http"
	"slices"

	"contentgate/internal/modkit/httpkit"
	str "contentgate/internal/platform/strings"
)

// Built is the resolved option set a module keeps after New
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	ports any
	extra []func(httpkit.Router)
}

// Build applies defaults then caller options in order
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range defaults {
		o(&c)
	}
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: str.MustPrefix(c.prefix),
		Mw:     slices.Clone(c.mw),
		ports:  c.ports,
		extra:  slices.Clone(c.extra),
	}
}

// Mount attaches register and any WithRoutes extras under the module prefix
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		register(sub)
		for _, fn := range b.extra {
			fn(sub)
		}
	})
}

// PortsAs returns the injected ports when they have type T
func PortsAs[T any](b Built) (T, bool) {
	p, ok := b.ports.(T)
	return p, ok
}
