package declinatio

import "strings"

const lemmaFieldCount = 5

// CompileLemmas parses a lemmes.la-style source into a table of lemma
// entries keyed by their ASCII-folded citation form.
func CompileLemmas(source string, lines []string) (map[string]*LemmaEntry, error) {
	out := make(map[string]*LemmaEntry)

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "!") || !strings.Contains(line, "|") {
			continue
		}

		fields := repairPipes(strings.Split(line, "|"))
		if len(fields) != lemmaFieldCount {
			return nil, &CompileError{
				Source: source,
				Line:   lineNo,
				Text:   line,
				Err:    errStr("expected 5 pipe-delimited fields"),
			}
		}

		lemmaField, quantity := splitQuantity(fields[0])
		entry := &LemmaEntry{
			Lemma:    lemmaField,
			Quantity: quantity,
			Model:    fields[1],
			GenInf:   trimDashList(fields[2]),
			Perf:     trimDashList(fields[3]),
			Lexicon:  fields[4],
		}
		entry.Key = Normalize(entry.Lemma)
		out[entry.Key] = entry
	}
	return out, nil
}

// repairPipes inserts empty fields immediately before the last segment when
// a lemma line was authored with fewer than the expected number of pipe
// separators, mirroring the line-repair convert.py's parseLemma applies to
// hand-edited lemmes.la entries.
func repairPipes(fields []string) []string {
	missing := lemmaFieldCount - len(fields)
	if missing <= 0 {
		return fields
	}
	last := fields[len(fields)-1]
	repaired := make([]string, 0, lemmaFieldCount)
	repaired = append(repaired, fields[:len(fields)-1]...)
	for i := 0; i < missing; i++ {
		repaired = append(repaired, "")
	}
	repaired = append(repaired, last)
	return repaired
}

// splitQuantity separates a trailing "=QUANTITY" marker from a lemma field.
func splitQuantity(field string) (lemma, quantity string) {
	if idx := strings.Index(field, "="); idx >= 0 {
		return field[:idx], field[idx+1:]
	}
	return field, ""
}

// trimDashList trims leading/trailing "-" placeholders and splits the
// remainder on commas. A field that is empty or only dashes yields nil.
func trimDashList(field string) []string {
	trimmed := strings.Trim(field, "-")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
