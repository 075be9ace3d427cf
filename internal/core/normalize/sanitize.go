package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops what upstream payloads sometimes smuggle into text: C0 controls
// other than \n \r \t, DEL, C1 controls and invalid UTF-8 bytes.
// Clean input is returned as is.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, control) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if control(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func control(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20:
		return true
	default:
		return r >= 0x7f && r <= 0x9f
	}
}
