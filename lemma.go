package declinatio

import "strings"

// LemmaEntry is a dictionary headword and its paradigm binding. Mirrors
// Collatinus's Lemme class in collatinus_data/convert.py.
type LemmaEntry struct {
	// Key is the ASCII-folded citation form used to index Lemmas.
	Key string
	// Lemma is the citation form used operationally for root derivation
	// (comma-separated variant spellings), with any "=QUANTITY" suffix
	// already stripped.
	Lemma string
	// Quantity is the raw "=QUANTITY" suffix (without the leading '='), or
	// "" if the lemma token carried none. Kept separate rather than folded
	// back into Lemma since it marks vowel length, not spelling, and root
	// derivation must operate on the unmarked spelling.
	Quantity string
	// Model is the paradigm name this lemma uses.
	Model string
	// GenInf supplies root-id "1" directly, bypassing derivation, when
	// non-empty.
	GenInf []string
	// Perf supplies root-id "2" directly, bypassing derivation, when
	// non-empty.
	Perf []string
	// Lexicon is free-form trailing text, opaque to the engine.
	Lexicon string
}

// splitVariants splits a comma-separated lemma field into its variant
// spellings. A derivation rule (as opposed to the K sentinel) treats the
// citation form this way, deriving a root from each variant independently.
func splitVariants(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
