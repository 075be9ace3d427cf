// Package module wires content into the API using modkit
package module

import (
	"contentgate/internal/adapters/corpus"
	"contentgate/internal/adapters/providers"
	"contentgate/internal/core/faith"
	modkit "contentgate/internal/modkit"
	"contentgate/internal/modkit/httpkit"
	"contentgate/internal/services/content/domain"
	contenthttp "contentgate/internal/services/content/http"
	contentsvc "contentgate/internal/services/content/service"
)

// Ports are the adapters the module consumes; zero fields get the embedded corpus
// and the providers configured from the environment
type Ports struct {
	Corpus    domain.CorpusPort
	Providers domain.ProviderPort
}

// Module implements the content module
type Module struct {
	b      modkit.Built
	svc    *contentsvc.Svc
	limits contenthttp.Limits
}

// New constructs the content module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("content"), modkit.WithPrefix("/content")}, opts...)
	o := FromConfig(deps.Cfg)

	ports, _ := modkit.PortsAs[Ports](b)
	if ports.Corpus == nil {
		ports.Corpus = corpus.MustLoad()
	}
	if ports.Providers == nil {
		ports.Providers = providers.FromConfig(deps.Cfg)
	}

	svc := contentsvc.New(ports.Corpus, ports.Providers, deps.Cache(), contentsvc.Config{
		Policy:   faith.Policy{LightByDefault: o.AllowFaithInLight},
		CacheTTL: o.CacheTTL,
		Clock:    deps.Now(),
		Log:      deps.Named(b.Name),
	})

	return &Module{
		b:   b,
		svc: svc,
		limits: contenthttp.Limits{
			Limiter:   deps.Limiter,
			PerMinute: o.RatePerMinute,
			Scripture: o.ScripturePerMinute,
		},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { contenthttp.Register(rr, m.svc, m.limits) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports exposes the content service for other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
