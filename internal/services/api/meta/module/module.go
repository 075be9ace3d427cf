// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"contentgate/internal/core/version"
	modkit "contentgate/internal/modkit"
	"contentgate/internal/modkit/httpkit"

	metahttp "contentgate/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b  modkit.Built
	hd metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)

	hd := metahttp.Deps{
		ServiceName: version.Service,
		Env:         deps.Cfg.MayString("ENV", "dev"),
		StartedAt:   deps.Now().Now(),
		Clock:       deps.Now(),
	}
	if c := deps.Cache(); c != nil {
		hd.Cache = c
	}
	return &Module{b: b, hd: hd}
}

// MountRoutes mounts /health at the root and the probes under the prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	metahttp.RegisterHealth(r, m.hd)
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.hd) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
