// Package scan holds the lexical helpers shared by the interpreter's
// recognizers: whitespace normalization and first-space token splitting.
package scan

import (
	"strings"
	"unicode"
)

// Normalize replaces every whitespace or control character with a plain
// ASCII space, passing all other characters through unchanged. Downstream
// recognizers only ever split on ' '.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// Cut splits s at its first space. The head excludes the space while the
// tail retains it, leaving the caller to decide whether to trim. When s
// contains no space the head is all of s and found is false.
func Cut(s string) (head, tail string, found bool) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i:], true
	}
	return s, "", false
}
