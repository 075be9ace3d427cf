// Package policy filters content that is unsafe or out of shape for the app
package policy

import (
	"strings"

	"contentgate/internal/core/content"
	"contentgate/internal/core/normalize"
	pstrings "contentgate/internal/platform/strings"
)

// Limits
const (
	MaxQuoteRunes  = 180
	MaxActNowRunes = 140
)

// banned terms match as plain substrings of the folded text, no word boundaries
var banned = compileTerms([]string{"fuck", "shit", "bitch"})

// Profane reports whether s contains a banned term
func Profane(s string) bool { return banned.any(normalize.Fold(s)) }

var licenses = map[content.License]struct{}{
	content.LicensePublicDomain: {},
	content.LicenseBY:           {},
	content.LicenseBYNC:         {},
	content.LicenseUnknown:      {},
}

// FilterQuote trims the text and returns the quote if it passes every check
func FilterQuote(q content.QuoteItem, allowFaith bool) (content.QuoteItem, bool) {
	q.Text = strings.TrimSpace(q.Text)
	switch {
	case !allowFaith && q.HasTag(content.TagFaith):
		return q, false
	case Profane(q.Text):
		return q, false
	case pstrings.RuneLen(q.Text) > MaxQuoteRunes:
		return q, false
	}
	if _, ok := licenses[q.License]; !ok {
		return q, false
	}
	return q, true
}

// FilterScripture rejects profane verses and an over-long call to action
func FilterScripture(p content.ScripturePassage) (content.ScripturePassage, bool) {
	for _, v := range p.Verses {
		if Profane(v.T) {
			return p, false
		}
	}
	if pstrings.RuneLen(p.ActNow) > MaxActNowRunes {
		return p, false
	}
	return p, true
}

// FilterDevotional rejects a devotional with profanity in any text field
func FilterDevotional(d content.Devotional) (content.Devotional, bool) {
	for _, s := range []string{d.Title, d.Scripture, d.Reflection, d.Prayer} {
		if Profane(s) {
			return d, false
		}
	}
	return d, true
}

// FilterPrayer rejects a prayer with profanity in its title or body
func FilterPrayer(p content.Prayer) (content.Prayer, bool) {
	if Profane(p.Title) || Profane(p.Prayer) {
		return p, false
	}
	return p, true
}
