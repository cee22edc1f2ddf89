package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		out  string
	}{
		{"plain", "1 2 dup", "1 2 dup"},
		{"tabs and newlines", "a\tb\nc\rd", "a b c d"},
		{"control characters", "1\x002\x1b3", "1 2 3"},
		{"unicode space", "1\u00a02", "1 2"},
		{"empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, Normalize(tc.in))
		})
	}
}

func TestCut(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    string
		head  string
		tail  string
		found bool
	}{
		{"delimited", "a b c", "a", " b c", true},
		{"leading space", " x", "", " x", true},
		{"single token", "abc", "abc", "", false},
		{"empty", "", "", "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			head, tail, found := Cut(tc.in)
			assert.Equal(t, tc.head, head, "expected head")
			assert.Equal(t, tc.tail, tail, "expected tail")
			assert.Equal(t, tc.found, found, "expected found")
		})
	}
}
