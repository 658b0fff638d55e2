package cardbrand

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaskNumber hides a card number for logging. Numbers of ten characters or
// more keep the first six and last four; shorter ones keep only the last
// four, and four or fewer are fully masked. Characters are grapheme
// clusters, as in Classify.
func MaskNumber(number string) string {
	chars := characters(number)
	n := len(chars)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return strings.Repeat("*", n)
	case n < 10:
		return strings.Repeat("*", n-4) + strings.Join(chars[n-4:], "")
	default:
		return strings.Join(chars[:6], "") + strings.Repeat("*", n-10) + strings.Join(chars[n-4:], "")
	}
}

// characters splits s into grapheme clusters.
func characters(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
