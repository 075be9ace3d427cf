package module

import (
	"net/http"
	"testing"
	"time"

	"contentgate/internal/adapters/corpus"
	"contentgate/internal/adapters/providers"
	modkit "contentgate/internal/modkit"
	"contentgate/internal/platform/config"
	phttp "contentgate/internal/platform/net/http"
	"contentgate/internal/platform/ratelimit"
	kit "contentgate/internal/platform/testkit"
	"contentgate/internal/services/content/domain"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("CACHE_TTL_SEC", "")
	t.Setenv("RATE_LIMIT_PER_MIN", "")
	t.Setenv("RATE_LIMIT_SCRIPTURE_PER_MIN", "")
	t.Setenv("ALLOW_FAITH_IN_LIGHT_BY_DEFAULT", "")

	o := FromConfig(config.New())
	if o.CacheTTL != 120*time.Second || o.RatePerMinute != 60 || o.ScripturePerMinute != 30 || o.AllowFaithInLight {
		t.Fatalf("defaults = %+v", o)
	}

	t.Setenv("CACHE_TTL_SEC", "15")
	t.Setenv("RATE_LIMIT_PER_MIN", "10")
	t.Setenv("RATE_LIMIT_SCRIPTURE_PER_MIN", "3")
	t.Setenv("ALLOW_FAITH_IN_LIGHT_BY_DEFAULT", "1")
	o = FromConfig(config.New())
	if o.CacheTTL != 15*time.Second || o.RatePerMinute != 10 || o.ScripturePerMinute != 3 || !o.AllowFaithInLight {
		t.Fatalf("env = %+v", o)
	}
}

func TestModule_MountsUnderContent(t *testing.T) {
	deps := modkit.Deps{Cfg: config.New(), Limiter: ratelimit.NewInMemory(time.Minute)}
	m := New(deps, modkit.WithPorts(Ports{
		Corpus:    corpus.MustLoad(),
		Providers: providers.New(providers.Options{Enabled: false}),
	}))

	if m.Name() != "content" || m.Prefix() != "/content" {
		t.Fatalf("name/prefix = %q %q", m.Name(), m.Prefix())
	}
	if _, ok := m.Ports().(domain.ServicePort); !ok {
		t.Fatalf("ports should expose the content service")
	}

	srv := phttp.NewServer(config.New())
	m.MountRoutes(srv.Router())

	rec := kit.Do(t, srv.Router().Mux(), "GET", "/content/manifest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("manifest = %d %s", rec.Code, rec.Body.String())
	}
	kit.MustContain(t, rec.Body.String(), `"schemaVersion":1`)
}
