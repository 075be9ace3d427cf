// Package strings provides small string helpers shared by adapters and routing
package strings

import (
	std "strings"
	"unicode/utf8"
)

// MustPrefix normalizes and asserts a root path like /content or /meta
// ensures a single leading slash and no trailing slash except for the root itself
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// FirstNonEmpty returns the first value with non whitespace content, trimmed
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if t := std.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// Or returns def when s is blank
func Or(s, def string) string {
	if std.TrimSpace(s) == "" {
		return def
	}
	return s
}

// RuneLen counts code points, not bytes
func RuneLen(s string) int { return utf8.RuneCountInString(s) }

// ContainsFold reports whether sub is within s ignoring ASCII and simple Unicode case
func ContainsFold(s, sub string) bool {
	return std.Contains(std.ToLower(s), std.ToLower(sub))
}
