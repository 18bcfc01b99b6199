package declinatio

import "testing"

func TestCompileLemmasBasicFields(t *testing.T) {
	src := []string{
		"via|uita|||",
		"doctus|doctus|docti|doctissim|",
	}
	lemmas, err := CompileLemmas("test.la", src)
	if err != nil {
		t.Fatalf("CompileLemmas: %v", err)
	}

	via, ok := lemmas["via"]
	if !ok {
		t.Fatal("lemma via missing")
	}
	if via.Model != "uita" || via.GenInf != nil || via.Perf != nil {
		t.Errorf("via entry = %+v", via)
	}

	doctus, ok := lemmas["doctus"]
	if !ok {
		t.Fatal("lemma doctus missing")
	}
	if len(doctus.GenInf) != 1 || doctus.GenInf[0] != "docti" {
		t.Errorf("doctus.GenInf = %v", doctus.GenInf)
	}
	if len(doctus.Perf) != 1 || doctus.Perf[0] != "doctissim" {
		t.Errorf("doctus.Perf = %v", doctus.Perf)
	}
}

func TestCompileLemmasQuantitySplit(t *testing.T) {
	lemmas, err := CompileLemmas("test.la", []string{"malus=long|adjectif|||"})
	if err != nil {
		t.Fatalf("CompileLemmas: %v", err)
	}
	entry, ok := lemmas["malus"]
	if !ok {
		t.Fatal("lemma malus missing (key should be ASCII-folded lemma without quantity)")
	}
	if entry.Lemma != "malus" {
		t.Errorf("entry.Lemma = %q, want %q", entry.Lemma, "malus")
	}
	if entry.Quantity != "long" {
		t.Errorf("entry.Quantity = %q, want %q", entry.Quantity, "long")
	}
}

func TestCompileLemmasPipeRepair(t *testing.T) {
	// Only two pipes: lemma and model given, geninf/perf/lexicon collapsed
	// into a single trailing field that must become the lexicon.
	lemmas, err := CompileLemmas("test.la", []string{"amo|amo|some lexicon text"})
	if err != nil {
		t.Fatalf("CompileLemmas: %v", err)
	}
	entry, ok := lemmas["amo"]
	if !ok {
		t.Fatal("lemma amo missing")
	}
	if entry.GenInf != nil || entry.Perf != nil {
		t.Errorf("repaired fields should be empty, got GenInf=%v Perf=%v", entry.GenInf, entry.Perf)
	}
	if entry.Lexicon != "some lexicon text" {
		t.Errorf("entry.Lexicon = %q, want %q", entry.Lexicon, "some lexicon text")
	}
}

func TestCompileLemmasDashPlaceholder(t *testing.T) {
	lemmas, err := CompileLemmas("test.la", []string{"rex|rex|-|-|"})
	if err != nil {
		t.Fatalf("CompileLemmas: %v", err)
	}
	entry := lemmas["rex"]
	if entry.GenInf != nil {
		t.Errorf("dash placeholder should yield nil GenInf, got %v", entry.GenInf)
	}
	if entry.Perf != nil {
		t.Errorf("dash placeholder should yield nil Perf, got %v", entry.Perf)
	}
}

func TestCompileLemmasSkipsCommentsAndBlankLines(t *testing.T) {
	lemmas, err := CompileLemmas("test.la", []string{"! comment", "", "via|uita|||"})
	if err != nil {
		t.Fatalf("CompileLemmas: %v", err)
	}
	if len(lemmas) != 1 {
		t.Errorf("len(lemmas) = %d, want 1", len(lemmas))
	}
}

func TestCompileLemmasLineWithoutPipesIsSkipped(t *testing.T) {
	lemmas, err := CompileLemmas("test.la", []string{"no pipes at all but not a comment either"})
	if err != nil {
		t.Fatalf("CompileLemmas: %v", err)
	}
	if len(lemmas) != 0 {
		t.Errorf("len(lemmas) = %d, want 0 for a line lacking '|'", len(lemmas))
	}
}

func TestCompileLemmasTooManyFieldsFails(t *testing.T) {
	if _, err := CompileLemmas("test.la", []string{"a|b|c|d|e|f|g"}); err == nil {
		t.Fatal("expected an error for a line with more than 5 pipe-delimited fields")
	}
}
