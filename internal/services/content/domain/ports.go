package domain

import "context"

// CorpusPort is the read-only local corpus
type CorpusPort interface {
	Quotes() []QuoteItem
	LocalQuotes(allowFaith bool, limit int) []QuoteItem
	Themes() []string
	Passages(theme string) []ScripturePassage
	PassageCount() int
	LocalScripture(theme string, limit int) []ScripturePassage
	Fallback() []ScripturePassage
	Devotionals() []Devotional
	Prayers() []Prayer
	FallbackDevotional(theme string, day int) (Devotional, bool)
	FallbackPrayer(theme string, day int) (Prayer, bool)
}

// ProviderPort fans out to external providers; failures surface as empty results
type ProviderPort interface {
	Quotes(ctx context.Context, allowFaith bool, topic string, limit int) []QuoteItem
	Scripture(ctx context.Context, allowFaith bool, theme string, limit int) []ScripturePassage
	Devotionals(ctx context.Context, allowFaith bool, theme string, limit int) []Devotional
	Prayers(ctx context.Context, allowFaith bool, theme string, limit int) []Prayer
	// Status maps provider name to its enabled flag
	Status() map[string]bool
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Quotes(ctx context.Context, in QuoteRequest) ([]QuoteItem, error)
	Scripture(ctx context.Context, in ScriptureRequest) (ScripturePassage, error)
	DailyScripture(ctx context.Context, in ScriptureRequest) ([]ScripturePassage, error)
	Devotionals(ctx context.Context, in QuoteRequest) ([]Devotional, error)
	Prayers(ctx context.Context, in QuoteRequest) ([]Prayer, error)
	Manifest(ctx context.Context) (Manifest, error)
}
