// Package normalize folds text into comparison forms for filtering and dedupe
//
// Fold pipeline
// 1 drop control bytes and invalid UTF-8
// 2 NFKC
// 3 Unicode case fold
// 4 remove format runes (zero-width joiners, BOM)
// 5 width fold fullwidth forms
// 6 collapse whitespace and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformers hold state, so each call takes its own chain from the pool
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Fold returns the case-insensitive comparison form of s
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// DedupeKey identifies a quote by lower(trim(text)) and lower(author)
func DedupeKey(text, author string) string {
	return strings.ToLower(strings.TrimSpace(text)) + "\x00" + strings.ToLower(author)
}

// Theme normalizes a lookup theme: trimmed and lowercased
func Theme(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
