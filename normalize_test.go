package declinatio

import "testing"

func TestNormalizeStripsDiacritics(t *testing.T) {
	cases := map[string]string{
		"vīta":   "vita",
		"amō":    "amo",
		"Lūciī":  "Lucii",
		"plain":  "plain",
		"doctus": "doctus",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	s := "vītābundus"
	once := Normalize(s)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not idempotent: %q then %q", once, twice)
	}
}

func TestNormalizeLines(t *testing.T) {
	in := []string{"vīta", "amō"}
	want := []string{"vita", "amo"}
	got := NormalizeLines(in)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeLines(%v)[%d] = %q, want %q", in, i, got[i], want[i])
		}
	}
}
