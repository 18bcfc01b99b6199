package declinatio

// resolveRoots derives every root string for entry under paradigm, keyed by
// root-id. Pre-computed geninf/perf roots always take precedence over
// derived ones for ids "1" and "2" — the final overlay below mirrors
// Collatinus's own defensive double-merge in Lemme::formesRadicaux
// (merge derived roots first, then re-apply the pre-computed ones on top)
// rather than relying on derivation never touching ids "1"/"2".
func resolveRoots(entry *LemmaEntry, paradigm *Paradigm) map[string][]string {
	pre := make(map[string][]string)
	if len(entry.GenInf) > 0 {
		pre["1"] = entry.GenInf
	}
	if len(entry.Perf) > 0 {
		pre["2"] = entry.Perf
	}

	roots := make(map[string][]string, len(pre))
	for id, strs := range pre {
		roots[id] = strs
	}

	for _, rootID := range paradigm.RootOrder() {
		rule := paradigm.Roots[rootID]

		if rule.K {
			roots[rootID] = []string{entry.Lemma}
			continue
		}

		var sources []string
		if rootID != "1" {
			if existing, ok := roots[rootID]; ok {
				sources = existing
			}
		}
		if sources == nil {
			sources = splitVariants(entry.Lemma)
		}

		derived := make([]string, 0, len(sources))
		for _, s := range sources {
			cut := len(s) - rule.Delete
			if cut < 0 {
				cut = 0
			}
			derived = append(derived, s[:cut]+rule.Add)
		}
		roots[rootID] = derived
	}

	for id, strs := range pre {
		roots[id] = strs
	}
	return roots
}

// GetRoots resolves lemma's root-id → root-strings mapping. An empty
// paradigmName uses the lemma's own paradigm; a non-empty one overrides it.
func (d *Decliner) GetRoots(lemma string, paradigmName string) (map[string][]string, error) {
	entry, ok := d.dataset.Lemmas[Normalize(lemma)]
	if !ok {
		return nil, &UnknownLemmaError{Lemma: lemma}
	}

	name := entry.Model
	if paradigmName != "" {
		name = paradigmName
	}
	paradigm, ok := d.dataset.Models[name]
	if !ok {
		return nil, &UnknownParadigmError{Lemma: lemma, Paradigm: name}
	}

	return resolveRoots(entry, paradigm), nil
}
