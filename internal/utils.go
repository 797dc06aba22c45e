package internal

import (
	"strings"
	"unicode"
)

// SanitizeFilename creates a safe filename from a string. Letters, marks and
// digits of any script are kept, as are '-', '_' and '.'. Everything else
// becomes '_'.
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
