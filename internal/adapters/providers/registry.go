package providers

import (
	"strings"

	"contentgate/internal/core/content"
	"contentgate/internal/platform/config"
)

// Kind groups providers by what they serve
type Kind string

// Kinds
const (
	KindQuotes     Kind = "quotes"
	KindScripture  Kind = "scripture"
	KindDevotional Kind = "devotional"
)

// Provider names
const (
	Quotable         = "quotable"
	ZenQuotes        = "zenquotes"
	QuoteGarden      = "quotegarden"
	ScriptureAPI     = "scripture_api"
	BibleAPI         = "bible_api_wldeh"
	LabsBible        = "labs_bible"
	BibleGatewayVOTD = "bible_gateway_votd"
	PrayerAPI        = "prayer_api"
	DevotionalAPI    = "devotional_api"
)

// Provider is one allowlisted upstream
type Provider struct {
	Name    string
	Kind    Kind
	BaseURL string
	License content.License
	Enabled bool
}

// Defaults returns the built-in allowlist in its fixed order
func Defaults() []Provider {
	pd := content.LicensePublicDomain
	return []Provider{
		{Quotable, KindQuotes, "https://api.quotable.io", pd, true},
		{ZenQuotes, KindQuotes, "https://zenquotes.io/api", pd, true},
		{QuoteGarden, KindQuotes, "https://quotegarden.herokuapp.com/api/v3", pd, true},
		{ScriptureAPI, KindScripture, "https://scriptureapi.com", pd, true},
		{BibleAPI, KindScripture, "https://bible-api.com", pd, true},
		{LabsBible, KindScripture, "https://labs.bible.org/api", pd, true},
		{BibleGatewayVOTD, KindScripture, "https://www.biblegateway.com", pd, true},
		{PrayerAPI, KindDevotional, "https://prayerapi.com", pd, true},
		{DevotionalAPI, KindDevotional, "https://devotionalapi.com", pd, true},
	}
}

// Registry is an ordered, read-only allowlist
type Registry struct {
	list []Provider
}

// NewRegistry builds a registry from ps in the given order
func NewRegistry(ps ...Provider) *Registry {
	return &Registry{list: append([]Provider(nil), ps...)}
}

// RegistryFromConfig applies PROVIDER_<NAME>_ENABLED and PROVIDER_<NAME>_BASE_URL to the defaults
func RegistryFromConfig(cfg config.Conf) *Registry {
	ps := Defaults()
	for i := range ps {
		pc := cfg.Prefix("PROVIDER_" + strings.ToUpper(ps[i].Name) + "_")
		ps[i].Enabled = pc.MayBool("ENABLED", ps[i].Enabled)
		ps[i].BaseURL = strings.TrimRight(pc.MayString("BASE_URL", ps[i].BaseURL), "/")
	}
	return NewRegistry(ps...)
}

// All returns every provider in order
func (r *Registry) All() []Provider { return append([]Provider(nil), r.list...) }

// Enabled returns the enabled providers of kind, in order
func (r *Registry) Enabled(kind Kind) []Provider {
	var out []Provider
	for _, p := range r.list {
		if p.Enabled && p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Status maps every provider name to its enabled flag
func (r *Registry) Status() map[string]bool {
	out := make(map[string]bool, len(r.list))
	for _, p := range r.list {
		out[p.Name] = p.Enabled
	}
	return out
}
