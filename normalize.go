// Package declinatio provides a data-driven Latin inflection engine: a
// compiler that turns model and lemma source files into a structured
// dataset, and a decliner that derives every inflected surface form of a
// lemma from that dataset.
package declinatio

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds s to its ASCII-folded spelling: canonical (NFD)
// decomposition, then dropping every combining-mark code point and every
// code point outside the basic Latin range. It is idempotent.
//
// Mirrors normalize_unicode in convert.py, which does the equivalent with
// Python's unicodedata.normalize plus an ASCII-encode/ignore round trip.
func Normalize(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLines applies Normalize to every line of src, used by the model
// compiler to produce the ASCII-folded paradigm table in parallel with the
// diacritic-preserving one.
func NormalizeLines(src []string) []string {
	out := make([]string, len(src))
	for i, line := range src {
		out[i] = Normalize(line)
	}
	return out
}
