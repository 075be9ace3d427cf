// Package content holds the value types the gateway serves
// They are shared by the corpus, the providers, the filters and the HTTP layer
package content

// License of a quote; anything outside the accepted set is rejected by policy
type License string

// Accepted licenses
const (
	LicensePublicDomain License = "public_domain"
	LicenseBY           License = "by"
	LicenseBYNC         License = "by-nc"
	LicenseUnknown      License = "unknown"
)

// Source of a quote or passage
const (
	SourceLocal    = "local"
	SourceExternal = "external"
	SourceRAG      = "rag"
	SourceKJVLocal = "kjv.local"
	SourceFallback = "fallback"
)

// Tags with gating meaning
const (
	TagFaith   = "faith"
	TagSecular = "secular"
)

// QuoteItem is one short quote
type QuoteItem struct {
	ID             string   `json:"id"`
	Text           string   `json:"text"`
	Author         string   `json:"author"`
	License        License  `json:"license"`
	Source         string   `json:"source"`
	Tags           []string `json:"tags"`
	AttributionURL *string  `json:"attributionUrl"`
}

// HasTag reports whether the quote carries tag exactly
func (q QuoteItem) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Verse is one numbered verse
type Verse struct {
	V int    `json:"v"`
	T string `json:"t"`
}

// ScripturePassage is a reference plus its verses and a call to action
// Passages are always faith-exclusive
type ScripturePassage struct {
	Ref     string  `json:"ref"`
	Verses  []Verse `json:"verses"`
	ActNow  string  `json:"actNow"`
	License License `json:"license"`
	Source  string  `json:"source"`
}

// Devotional is a short reading with a reflection and a prayer
type Devotional struct {
	Title      string `json:"title"`
	Scripture  string `json:"scripture"`
	Reflection string `json:"reflection"`
	Prayer     string `json:"prayer"`
	Theme      string `json:"theme"`
	Source     string `json:"source"`
}

// Prayer is a titled prayer
type Prayer struct {
	Title  string `json:"title"`
	Prayer string `json:"prayer"`
	Theme  string `json:"theme"`
	Source string `json:"source"`
}
