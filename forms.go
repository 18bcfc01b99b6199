package declinatio

import "sort"

// computeForms builds the tag → surface-forms mapping for paradigm from the
// roots resolveRoots already resolved: combine each tag's root(s) with its
// endings, run the constant-suffix pass, then the alternative-suffix pass,
// and finally drop any tag the paradigm marks absent.
func computeForms(paradigm *Paradigm, roots map[string][]string) map[int][]string {
	forms := make(map[int][]string)

	for _, tag := range paradigm.AscendingTags() {
		entry := paradigm.Desinences[tag]
		var list []string
		for _, root := range roots[entry.RootID] {
			for _, ending := range entry.Endings {
				list = append(list, root+ending)
			}
		}
		if list != nil {
			forms[tag] = list
		}
	}

	if len(paradigm.SufD) > 0 {
		for tag, list := range forms {
			next := make([]string, 0, len(list)*len(paradigm.SufD))
			for _, sufd := range paradigm.SufD {
				for _, f := range list {
					next = append(next, f+sufd)
				}
			}
			forms[tag] = next
		}
	}

	if len(paradigm.Suf) > 0 {
		base := make(map[int][]string, len(forms))
		for tag, list := range forms {
			copied := make([]string, len(list))
			copy(copied, list)
			base[tag] = copied
		}

		for _, tag := range paradigm.SufOrder() {
			suffix := paradigm.Suf[tag]
			baseList := base[tag]
			if len(baseList) == 0 {
				continue
			}
			variants := make([]string, 0, len(baseList))
			for _, b := range baseList {
				variants = append(variants, b+suffix)
			}
			forms[tag] = append(forms[tag], variants...)
		}
	}

	for tag := range paradigm.Absent {
		delete(forms, tag)
	}

	return forms
}

// flattenForms concatenates forms in ascending tag order.
func flattenForms(forms map[int][]string) []string {
	tags := make([]int, 0, len(forms))
	for t := range forms {
		tags = append(tags, t)
	}
	sort.Ints(tags)

	var out []string
	for _, t := range tags {
		out = append(out, forms[t]...)
	}
	return out
}

// Decline returns lemma's complete tag → surface-forms mapping.
func (d *Decliner) Decline(lemma string) (map[int][]string, error) {
	entry, ok := d.dataset.Lemmas[Normalize(lemma)]
	if !ok {
		return nil, &UnknownLemmaError{Lemma: lemma}
	}
	paradigm, ok := d.dataset.Models[entry.Model]
	if !ok {
		return nil, &UnknownParadigmError{Lemma: lemma, Paradigm: entry.Model}
	}

	roots := resolveRoots(entry, paradigm)
	return computeForms(paradigm, roots), nil
}

// DeclineFlat returns lemma's forms flattened into a single ascending-tag
// sequence.
func (d *Decliner) DeclineFlat(lemma string) ([]string, error) {
	forms, err := d.Decline(lemma)
	if err != nil {
		return nil, err
	}
	return flattenForms(forms), nil
}
