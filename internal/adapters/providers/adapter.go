package providers

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"contentgate/internal/core/content"
	"contentgate/internal/platform/config"
	"contentgate/internal/platform/logger"
)

// DefaultTimeout bounds each provider call
const DefaultTimeout = 10 * time.Second

// fetchers per provider name; a nil entry means the provider does not serve that content
type fetchers struct {
	quotes      func(context.Context, *Client, Provider, string, int) ([]content.QuoteItem, error)
	scripture   func(context.Context, *Client, Provider, string, int) ([]content.ScripturePassage, error)
	devotionals func(context.Context, *Client, Provider, string, int) ([]content.Devotional, error)
	prayers     func(context.Context, *Client, Provider, string, int) ([]content.Prayer, error)
}

var byName = map[string]fetchers{
	Quotable:         {quotes: fetchQuotable},
	ZenQuotes:        {quotes: fetchZenQuotes},
	QuoteGarden:      {quotes: fetchQuoteGarden},
	ScriptureAPI:     {scripture: fetchScriptureAPI},
	BibleAPI:         {scripture: fetchBibleAPI},
	LabsBible:        {scripture: fetchLabsBible},
	BibleGatewayVOTD: {scripture: fetchBibleGatewayVOTD},
	PrayerAPI:        {prayers: fetchPrayerAPI},
	DevotionalAPI:    {devotionals: fetchDevotionalAPI},
}

// Options configures the Adapter
type Options struct {
	Registry *Registry
	Client   *Client
	// Enabled is the ENABLE_EXTERNAL switch; false short-circuits every call
	Enabled bool
	Timeout time.Duration
	Log     *zerolog.Logger
}

// Adapter fans requests out to the enabled providers of a kind
type Adapter struct {
	reg     *Registry
	client  *Client
	enabled bool
	timeout time.Duration
	log     zerolog.Logger
}

// New builds an Adapter; a nil registry means the defaults
func New(o Options) *Adapter {
	if o.Registry == nil {
		o.Registry = NewRegistry(Defaults()...)
	}
	if o.Client == nil {
		o.Client = NewClient(ClientOptions{})
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	log := logger.Named("providers")
	if o.Log != nil {
		log = o.Log
	}
	return &Adapter{reg: o.Registry, client: o.Client, enabled: o.Enabled, timeout: o.Timeout, log: *log}
}

// FromConfig reads ENABLE_EXTERNAL, PROVIDER_TIMEOUT and the per-provider overrides
func FromConfig(cfg config.Conf) *Adapter {
	timeout := cfg.MayDuration("PROVIDER_TIMEOUT", DefaultTimeout)
	return New(Options{
		Registry: RegistryFromConfig(cfg),
		Client:   NewClient(ClientOptions{Timeout: timeout}),
		Enabled:  cfg.MayBool("ENABLE_EXTERNAL", true),
		Timeout:  timeout,
	})
}

// Registry exposes the allowlist
func (a *Adapter) Registry() *Registry { return a.reg }

// Status reports each provider as enabled only when external fetching is on
func (a *Adapter) Status() map[string]bool {
	st := a.reg.Status()
	if !a.enabled {
		for k := range st {
			st[k] = false
		}
	}
	return st
}

// Quotes are universal, so they are not gated on faith; faith tags are filtered downstream
func (a *Adapter) Quotes(ctx context.Context, _ bool, topic string, limit int) []content.QuoteItem {
	if !a.enabled {
		return nil
	}
	topic = strings.TrimSpace(topic)
	ps := a.with(KindQuotes, func(f fetchers) bool { return f.quotes != nil })
	return Gather(ctx, a.log, ps, a.timeout, limit, func(ctx context.Context, p Provider) ([]content.QuoteItem, error) {
		return byName[p.Name].quotes(ctx, a.client, p, topic, atLeastOne(limit))
	})
}

// Scripture returns nothing unless faith content is allowed
func (a *Adapter) Scripture(ctx context.Context, allowFaith bool, theme string, limit int) []content.ScripturePassage {
	if !a.enabled || !allowFaith {
		return nil
	}
	ps := a.with(KindScripture, func(f fetchers) bool { return f.scripture != nil })
	return Gather(ctx, a.log, ps, a.timeout, limit, func(ctx context.Context, p Provider) ([]content.ScripturePassage, error) {
		return byName[p.Name].scripture(ctx, a.client, p, theme, atLeastOne(limit))
	})
}

// Devotionals returns nothing unless faith content is allowed
func (a *Adapter) Devotionals(ctx context.Context, allowFaith bool, theme string, limit int) []content.Devotional {
	if !a.enabled || !allowFaith {
		return nil
	}
	ps := a.with(KindDevotional, func(f fetchers) bool { return f.devotionals != nil })
	return Gather(ctx, a.log, ps, a.timeout, limit, func(ctx context.Context, p Provider) ([]content.Devotional, error) {
		return byName[p.Name].devotionals(ctx, a.client, p, theme, atLeastOne(limit))
	})
}

// Prayers returns nothing unless faith content is allowed
func (a *Adapter) Prayers(ctx context.Context, allowFaith bool, theme string, limit int) []content.Prayer {
	if !a.enabled || !allowFaith {
		return nil
	}
	ps := a.with(KindDevotional, func(f fetchers) bool { return f.prayers != nil })
	return Gather(ctx, a.log, ps, a.timeout, limit, func(ctx context.Context, p Provider) ([]content.Prayer, error) {
		return byName[p.Name].prayers(ctx, a.client, p, theme, atLeastOne(limit))
	})
}

func (a *Adapter) with(kind Kind, has func(fetchers) bool) []Provider {
	var out []Provider
	for _, p := range a.reg.Enabled(kind) {
		if f, ok := byName[p.Name]; ok && has(f) {
			out = append(out, p)
		}
	}
	return out
}

// Gather runs fetch for every provider concurrently, each under its own timeout.
// A failed or panicking provider contributes nothing. Results keep provider order
// and are cut to max(1, limit).
func Gather[T any](ctx context.Context, log zerolog.Logger, ps []Provider, timeout time.Duration, limit int, fetch func(context.Context, Provider) ([]T, error)) []T {
	if len(ps) == 0 {
		return nil
	}
	out := make([][]T, len(ps))
	var wg sync.WaitGroup
	for i := range ps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := ps[i]
			defer func() {
				if v := recover(); v != nil {
					log.Warn().Str("provider", p.Name).Str("panic", fmt.Sprint(v)).Msg("provider panicked")
				}
			}()
			pctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := time.Now()
			xs, err := fetch(pctx, p)
			if err != nil {
				log.Warn().Err(err).Str("provider", p.Name).Dur("elapsed", time.Since(start)).Msg("provider fetch failed")
				return
			}
			out[i] = xs
		}(i)
	}
	wg.Wait()

	n := atLeastOne(limit)
	var flat []T
	for _, xs := range out {
		flat = append(flat, xs...)
	}
	if len(flat) > n {
		flat = flat[:n]
	}
	return flat
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
