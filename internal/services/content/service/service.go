// Package service runs the content pipeline: gate, cache, fetch, dedupe, filter, rank, truncate
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"contentgate/internal/core/faith"
	"contentgate/internal/core/normalize"
	"contentgate/internal/core/policy"
	"contentgate/internal/core/rank"
	perr "contentgate/internal/platform/errors"
	"contentgate/internal/platform/logger"
	"contentgate/internal/platform/store"
	ptime "contentgate/internal/platform/time"
	"contentgate/internal/services/content/domain"
)

// Cache paths; they namespace the cache key per endpoint
const (
	PathQuotes         = "/quotes"
	PathScripture      = "/scripture"
	PathDailyScripture = "/scripture/daily"
	PathDevotionals    = "/devotionals"
	PathPrayers        = "/prayers"
)

// Not found and policy messages surfaced to clients
const (
	MsgNoScriptureForTheme = "No scripture available for theme."
	MsgScriptureFiltered   = "Scripture failed filter policy."
	MsgNoScripture         = "No scripture available."
	MsgNoDevotionals       = "No devotionals available."
	MsgNoPrayers           = "No prayers available."
)

// Service defines the content service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the service
type Config struct {
	Policy   faith.Policy
	CacheTTL time.Duration
	Clock    ptime.Clock
	Log      *zerolog.Logger
}

// Svc implements the content service
type Svc struct {
	corpus    domain.CorpusPort
	providers domain.ProviderPort
	cache     store.Cache
	ttl       time.Duration
	policy    faith.Policy
	clock     ptime.Clock
	log       zerolog.Logger
}

// New constructs the content service; a nil cache disables caching
func New(corpus domain.CorpusPort, providers domain.ProviderPort, cache store.Cache, cfg Config) *Svc {
	if corpus == nil {
		panic("content.Service requires a non nil CorpusPort")
	}
	if providers == nil {
		panic("content.Service requires a non nil ProviderPort")
	}
	if cfg.Clock == nil {
		cfg.Clock = ptime.System
	}
	log := logger.Named("content")
	if cfg.Log != nil {
		log = cfg.Log
	}
	return &Svc{
		corpus:    corpus,
		providers: providers,
		cache:     cache,
		ttl:       cfg.CacheTTL,
		policy:    cfg.Policy,
		clock:     cfg.Clock,
		log:       *log,
	}
}

func (s *Svc) allowed(g domain.Gate) bool {
	return s.policy.Allowed(g.Mode(), g.LightConsentGiven, g.HideFaithOverlaysInMind)
}

// Quotes never rejects on the gate; a denied gate only drops faith-tagged items
func (s *Svc) Quotes(ctx context.Context, in domain.QuoteRequest) ([]domain.QuoteItem, error) {
	n := in.Normalize()
	n.AllowFaith = s.allowed(in.Gate)

	return cached(ctx, s, PathQuotes, n, func() ([]domain.QuoteItem, error) {
		items := s.providers.Quotes(ctx, n.AllowFaith, n.Topic, n.Limit)
		items = append(items, s.corpus.LocalQuotes(n.AllowFaith, n.Limit)...)

		seen := make(map[string]struct{}, len(items))
		kept := make([]domain.QuoteItem, 0, len(items))
		for _, q := range items {
			k := normalize.DedupeKey(q.Text, q.Author)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if fq, ok := policy.FilterQuote(q, n.AllowFaith); ok {
				kept = append(kept, fq)
			}
		}

		ranked := rank.Quotes(kept, n.Topic)
		return ranked[:min(len(ranked), n.Limit)], nil
	})
}

// Scripture serves one local passage for the theme
func (s *Svc) Scripture(ctx context.Context, in domain.ScriptureRequest) (domain.ScripturePassage, error) {
	if !s.allowed(in.Gate) {
		return domain.ScripturePassage{}, perr.FaithBlocked(faith.BlockedHint)
	}
	n := in.Normalize()
	n.AllowFaith = true

	return cached(ctx, s, PathScripture, n, func() (domain.ScripturePassage, error) {
		ps := s.corpus.LocalScripture(n.Topic, n.Limit)
		if len(ps) == 0 {
			return domain.ScripturePassage{}, perr.NotFoundf(MsgNoScriptureForTheme)
		}
		p, ok := policy.FilterScripture(ps[0])
		if !ok {
			return domain.ScripturePassage{}, perr.PolicyRejectedf(MsgScriptureFiltered)
		}
		return p, nil
	})
}

// DailyScripture tries providers, then the theme, then the fallback rotation
func (s *Svc) DailyScripture(ctx context.Context, in domain.ScriptureRequest) ([]domain.ScripturePassage, error) {
	if !s.allowed(in.Gate) {
		return nil, perr.FaithBlocked(faith.BlockedHint)
	}
	n := in.Normalize()
	n.AllowFaith = true

	return cached(ctx, s, PathDailyScripture, n, func() ([]domain.ScripturePassage, error) {
		ps := s.providers.Scripture(ctx, true, n.Topic, n.Limit)
		if len(ps) == 0 {
			ps = s.corpus.LocalScripture(n.Topic, n.Limit)
		}
		if len(ps) == 0 {
			ps = s.rotation(n.Limit)
		}
		out := keep(ps, policy.FilterScripture)
		if len(out) == 0 {
			return nil, perr.NotFoundf(MsgNoScripture)
		}
		return out[:min(len(out), n.Limit)], nil
	})
}

// rotation returns up to limit fallback passages starting at today's slot
func (s *Svc) rotation(limit int) []domain.ScripturePassage {
	all := s.corpus.Fallback()
	if len(all) == 0 {
		return nil
	}
	start := ptime.DayOfYear(s.clock) % len(all)
	out := make([]domain.ScripturePassage, 0, min(limit, len(all)))
	for i := 0; i < len(all) && len(out) < limit; i++ {
		out = append(out, all[(start+i)%len(all)])
	}
	return out
}

// Devotionals tries providers, then one deterministic local pick for the topic
func (s *Svc) Devotionals(ctx context.Context, in domain.QuoteRequest) ([]domain.Devotional, error) {
	if !s.allowed(in.Gate) {
		return nil, perr.FaithBlocked(faith.BlockedHint)
	}
	n := in.Normalize()
	n.AllowFaith = true

	return cached(ctx, s, PathDevotionals, n, func() ([]domain.Devotional, error) {
		ds := s.providers.Devotionals(ctx, true, n.Topic, n.Limit)
		if len(ds) == 0 {
			if d, ok := s.corpus.FallbackDevotional(n.Topic, ptime.DayOfYear(s.clock)); ok {
				ds = []domain.Devotional{d}
			}
		}
		out := keep(ds, policy.FilterDevotional)
		if len(out) == 0 {
			return nil, perr.NotFoundf(MsgNoDevotionals)
		}
		return out[:min(len(out), n.Limit)], nil
	})
}

// Prayers mirrors Devotionals
func (s *Svc) Prayers(ctx context.Context, in domain.QuoteRequest) ([]domain.Prayer, error) {
	if !s.allowed(in.Gate) {
		return nil, perr.FaithBlocked(faith.BlockedHint)
	}
	n := in.Normalize()
	n.AllowFaith = true

	return cached(ctx, s, PathPrayers, n, func() ([]domain.Prayer, error) {
		ps := s.providers.Prayers(ctx, true, n.Topic, n.Limit)
		if len(ps) == 0 {
			if p, ok := s.corpus.FallbackPrayer(n.Topic, ptime.DayOfYear(s.clock)); ok {
				ps = []domain.Prayer{p}
			}
		}
		out := keep(ps, policy.FilterPrayer)
		if len(out) == 0 {
			return nil, perr.NotFoundf(MsgNoPrayers)
		}
		return out[:min(len(out), n.Limit)], nil
	})
}

// Manifest summarizes the corpus and provider switches
func (s *Svc) Manifest(_ context.Context) (domain.Manifest, error) {
	themes := s.corpus.Themes()
	byTheme := make(map[string]domain.ThemeCount, len(themes))
	for _, t := range themes {
		byTheme[t] = domain.ThemeCount{PassageCount: len(s.corpus.Passages(t))}
	}
	return domain.Manifest{
		SchemaVersion: domain.ManifestSchemaVersion,
		Quotes: domain.QuotesSummary{
			LocalCount:        len(s.corpus.Quotes()),
			ExternalProviders: s.providers.Status(),
		},
		Scripture: domain.ScriptureSummary{
			ThemeCount:    len(themes),
			TotalPassages: s.corpus.PassageCount(),
			Themes:        byTheme,
		},
		Devotionals: domain.LocalCount{LocalCount: len(s.corpus.Devotionals())},
		Prayers:     domain.LocalCount{LocalCount: len(s.corpus.Prayers())},
		UpdatedAt:   s.clock.Now().UTC().Format(time.RFC3339),
	}, nil
}

// keep applies a content filter and returns the survivors in order
func keep[T any](xs []T, filter func(T) (T, bool)) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if y, ok := filter(x); ok {
			out = append(out, y)
		}
	}
	return out
}
