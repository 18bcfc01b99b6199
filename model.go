package declinatio

import (
	"bytes"
	"encoding/gob"
	"sort"
	"strconv"
	"strings"
)

// ListI parses a morpho-range string into a slice of ints.
// Format: comma-separated items, each either a single int or a range "a-b".
// Mirrors the tag-list grammar modeles.la uses for "des:"/"abs:"/"suf:"
// directives, the same shorthand Collatinus's listeTagsMorph expands.
func ListI(s string) []int {
	var result []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, "-"); idx > 0 {
			start, _ := strconv.Atoi(part[:idx])
			end, _ := strconv.Atoi(part[idx+1:])
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
		} else {
			n, _ := strconv.Atoi(part)
			result = append(result, n)
		}
	}
	return result
}

// RootRule is the derivation rule for a single root-id: either the sentinel
// K (use the citation form verbatim) or a (deletion, addition) pair.
type RootRule struct {
	// K marks the sentinel rule: the root equals the lemma's citation form
	// verbatim, not split on commas.
	K bool
	// Delete is the number of trailing characters stripped from the source
	// string before Add is appended.
	Delete int
	// Add is the literal suffix appended after stripping. A bare "0" in the
	// source directive decodes to the empty string here.
	Add string
}

// DesEntry is one tag's desinence declaration: which root it attaches to
// and the ordered list of ending alternatives.
type DesEntry struct {
	RootID  string
	Endings []string
}

// Paradigm is a named inflection pattern: root-derivation rules, per-tag
// endings, absent tags, and the constant/alternative suffix passes. Mirrors
// Collatinus's Paradigme class in collatinus_data/convert.py.
type Paradigm struct {
	Name string

	// rootOrder preserves the insertion order of Roots: root derivation must
	// proceed in the order roots were declared, since a later root rule can
	// reuse an already-resolved root string by id.
	rootOrder []string
	Roots     map[string]RootRule

	Desinences map[int]DesEntry

	Absent map[int]bool

	// SufD is the constant-suffix sequence ("sufd"). Empty means no pass.
	SufD []string

	// Suf maps tag → alternative suffix ("suf"), applied in insertion order
	// (sufOrder) after the constant-suffix pass.
	Suf      map[int]string
	sufOrder []int
}

func newParadigm(name string) *Paradigm {
	return &Paradigm{
		Name:       name,
		Roots:      make(map[string]RootRule),
		Desinences: make(map[int]DesEntry),
		Absent:     make(map[int]bool),
		Suf:        make(map[int]string),
	}
}

// setRoot records a root rule, preserving first-seen insertion order even
// when a later directive overrides an existing root-id.
func (p *Paradigm) setRoot(id string, rule RootRule) {
	if _, exists := p.Roots[id]; !exists {
		p.rootOrder = append(p.rootOrder, id)
	}
	p.Roots[id] = rule
}

// RootOrder returns root-ids in the order root derivation must proceed in.
func (p *Paradigm) RootOrder() []string {
	out := make([]string, len(p.rootOrder))
	copy(out, p.rootOrder)
	return out
}

// setSuf records an alternative-suffix entry, preserving insertion order.
func (p *Paradigm) setSuf(tag int, suffix string) {
	if _, exists := p.Suf[tag]; !exists {
		p.sufOrder = append(p.sufOrder, tag)
	}
	p.Suf[tag] = suffix
}

// SufOrder returns suf tags in the order the alternative-suffix pass applies
// them in.
func (p *Paradigm) SufOrder() []int {
	out := make([]int, len(p.sufOrder))
	copy(out, p.sufOrder)
	return out
}

// clone deep-copies p so that "pere:" inheritance followed by in-place
// overrides on the child never mutates the parent.
func (p *Paradigm) clone(newName string) *Paradigm {
	c := newParadigm(newName)
	for _, id := range p.rootOrder {
		c.setRoot(id, p.Roots[id])
	}
	for tag, entry := range p.Desinences {
		endings := make([]string, len(entry.Endings))
		copy(endings, entry.Endings)
		c.Desinences[tag] = DesEntry{RootID: entry.RootID, Endings: endings}
	}
	for tag := range p.Absent {
		c.Absent[tag] = true
	}
	if p.SufD != nil {
		c.SufD = append([]string(nil), p.SufD...)
	}
	for _, tag := range p.sufOrder {
		c.setSuf(tag, p.Suf[tag])
	}
	return c
}

// AscendingTags returns the keys of Desinences sorted ascending, the order
// form generation iterates the paradigm's tags in.
func (p *Paradigm) AscendingTags() []int {
	tags := make([]int, 0, len(p.Desinences))
	for t := range p.Desinences {
		tags = append(tags, t)
	}
	sort.Ints(tags)
	return tags
}

// paradigmWire is the gob-visible shadow of Paradigm. gob only encodes
// exported fields, so rootOrder/sufOrder need an explicit GobEncode/GobDecode
// pair to survive a round trip through Dataset.Encode.
type paradigmWire struct {
	Name        string
	RootOrder   []string
	Roots       map[string]RootRule
	Desinences  map[int]DesEntry
	Absent      map[int]bool
	SufD        []string
	Suf         map[int]string
	SufOrder    []int
}

func (p *Paradigm) GobEncode() ([]byte, error) {
	w := paradigmWire{
		Name:       p.Name,
		RootOrder:  p.rootOrder,
		Roots:      p.Roots,
		Desinences: p.Desinences,
		Absent:     p.Absent,
		SufD:       p.SufD,
		Suf:        p.Suf,
		SufOrder:   p.sufOrder,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Paradigm) GobDecode(data []byte) error {
	var w paradigmWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	p.Name = w.Name
	p.rootOrder = w.RootOrder
	p.Roots = w.Roots
	p.Desinences = w.Desinences
	p.Absent = w.Absent
	p.SufD = w.SufD
	p.Suf = w.Suf
	p.sufOrder = w.SufOrder
	return nil
}
