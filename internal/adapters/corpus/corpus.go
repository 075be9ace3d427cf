// Package corpus loads the local content corpus: quotes, KJV theme passages,
// the fallback scripture rotation and the fallback devotionals and prayers.
// The embedded copy ships with the binary; a directory can replace any part of it.
package corpus

import (
	"embed"
	"slices"
	"sort"
	"strings"

	"contentgate/internal/core/content"
	"contentgate/internal/core/normalize"
)

//go:embed data/*.json
var embedded embed.FS

// Corpus is read once at startup and never mutated afterwards
type Corpus struct {
	quotes      []content.QuoteItem
	themes      map[string][]content.ScripturePassage
	fallback    []content.ScripturePassage
	devotionals []content.Devotional
	prayers     []content.Prayer
}

// Quotes returns every local quote in corpus order
func (c *Corpus) Quotes() []content.QuoteItem { return slices.Clone(c.quotes) }

// Themes returns the scripture theme names, sorted
func (c *Corpus) Themes() []string {
	out := make([]string, 0, len(c.themes))
	for k := range c.themes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Passages returns the passages for theme; the theme is trimmed and lowercased first
func (c *Corpus) Passages(theme string) []content.ScripturePassage {
	return slices.Clone(c.themes[normalize.Theme(theme)])
}

// PassageCount is the number of passages across all themes
func (c *Corpus) PassageCount() int {
	n := 0
	for _, ps := range c.themes {
		n += len(ps)
	}
	return n
}

// Fallback returns the built-in scripture rotation set
func (c *Corpus) Fallback() []content.ScripturePassage { return slices.Clone(c.fallback) }

// Devotionals returns the fallback devotionals
func (c *Corpus) Devotionals() []content.Devotional { return slices.Clone(c.devotionals) }

// Prayers returns the fallback prayers
func (c *Corpus) Prayers() []content.Prayer { return slices.Clone(c.prayers) }

// LocalQuotes picks quotes for the faith decision: when faith is allowed secular
// quotes are skipped, otherwise faith quotes are. The result holds at most max(1, limit) items.
func (c *Corpus) LocalQuotes(allowFaith bool, limit int) []content.QuoteItem {
	skip := content.TagFaith
	if allowFaith {
		skip = content.TagSecular
	}
	n := atLeastOne(limit)
	out := make([]content.QuoteItem, 0, min(n, len(c.quotes)))
	for _, q := range c.quotes {
		if q.HasTag(skip) {
			continue
		}
		out = append(out, q)
		if len(out) == n {
			break
		}
	}
	return out
}

// LocalScripture returns at most max(1, limit) passages for theme
func (c *Corpus) LocalScripture(theme string, limit int) []content.ScripturePassage {
	ps := c.Passages(theme)
	return ps[:min(len(ps), atLeastOne(limit))]
}

// FallbackDevotional picks one devotional whose theme contains theme, rotating by day.
// With no match every devotional is a candidate.
func (c *Corpus) FallbackDevotional(theme string, day int) (content.Devotional, bool) {
	return rotate(c.devotionals, theme, day, func(d content.Devotional) string { return d.Theme })
}

// FallbackPrayer is FallbackDevotional for prayers
func (c *Corpus) FallbackPrayer(theme string, day int) (content.Prayer, bool) {
	return rotate(c.prayers, theme, day, func(p content.Prayer) string { return p.Theme })
}

func rotate[T any](all []T, theme string, day int, themeOf func(T) string) (T, bool) {
	var zero T
	if len(all) == 0 {
		return zero, false
	}
	theme = strings.ToLower(theme)
	var cands []T
	for _, it := range all {
		if strings.Contains(strings.ToLower(themeOf(it)), theme) {
			cands = append(cands, it)
		}
	}
	if len(cands) == 0 {
		cands = all
	}
	if day < 0 {
		day = -day
	}
	return cands[day%len(cands)], true
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
