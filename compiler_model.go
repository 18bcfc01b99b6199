package declinatio

import (
	"regexp"
	"strconv"
	"strings"
)

const maxMacroPasses = 16

var (
	reWordPlusVar = regexp.MustCompile(`(\w+)\+(\$\w+)`)
	reBareVar     = regexp.MustCompile(`\$\w+`)
)

// sourceModelsDiacritic and sourceModelsASCII identify which of the two
// parallel tables a compile pass is producing, purely for error messages.
const (
	sourceModelsDiacritic = "modeles.la"
	sourceModelsASCII     = "modeles.la (ascii-folded)"
)

// expandMacros performs modeles.la's bounded macro-expansion fixed point,
// the Go equivalent of Collatinus's substitutionVariables: "WORD+$VAR"
// tokens explode into semicolon-joined "WORDalt1;WORDalt2;…" forms (one per
// alternate in $VAR's declaration), then any remaining bare "$VAR" is
// replaced by its raw expansion. Both passes repeat until no "$" remains or
// the iteration bound is hit.
func expandMacros(line string, vars map[string]string) (string, error) {
	for i := 0; i < maxMacroPasses && strings.Contains(line, "$"); i++ {
		before := line

		line = reWordPlusVar.ReplaceAllStringFunc(line, func(m string) string {
			groups := reWordPlusVar.FindStringSubmatch(m)
			word, varName := groups[1], groups[2]
			alt, ok := vars[varName]
			if !ok {
				return m
			}
			alts := strings.Split(alt, ";")
			pieces := make([]string, len(alts))
			for i, a := range alts {
				pieces[i] = word + a
			}
			return strings.Join(pieces, ";")
		})

		line = reBareVar.ReplaceAllStringFunc(line, func(m string) string {
			if alt, ok := vars[m]; ok {
				return alt
			}
			return m
		})

		if line == before {
			break
		}
	}
	if strings.Contains(line, "$") {
		return "", &CompileError{Text: line, Err: errUnterminatedMacro}
	}
	return line, nil
}

var errUnterminatedMacro = errStr("unterminated macro expansion")

type errStr string

func (e errStr) Error() string { return string(e) }

// modelCompiler accumulates state while scanning a modeles.la-style source:
// macro variables and the paradigms compiled so far (needed so "pere:" can
// look up an already-finished parent).
type modelCompiler struct {
	source    string
	vars      map[string]string
	paradigms map[string]*Paradigm
}

// CompileModels parses a modeles.la-style source into a table of paradigms.
// source is used only to annotate CompileError with a file name.
func CompileModels(source string, lines []string) (map[string]*Paradigm, error) {
	c := &modelCompiler{
		source:    source,
		vars:      make(map[string]string),
		paradigms: make(map[string]*Paradigm),
	}

	var block []string
	var blockLine int

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		p, err := c.parseBlock(block, blockLine)
		if err != nil {
			return err
		}
		if p != nil {
			c.paradigms[p.Name] = p
		}
		block = block[:0]
		return nil
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "!") {
			// Keep a blank placeholder so block indices stay aligned with
			// source line numbers for error reporting.
			if len(block) > 0 {
				block = append(block, "")
			}
			continue
		}

		if strings.HasPrefix(line, "$") {
			eq := strings.Index(line, "=")
			if eq <= 0 {
				return nil, &CompileError{Source: source, Line: lineNo, Text: line, Err: errStr("malformed variable declaration")}
			}
			c.vars[line[:eq]] = line[eq+1:]
			if len(block) > 0 {
				block = append(block, "")
			}
			continue
		}

		if strings.HasPrefix(line, "modele:") {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		if len(block) == 0 {
			blockLine = lineNo
		}
		block = append(block, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return c.paradigms, nil
}

// parseBlock builds one Paradigm from the accumulated lines of a single
// "modele:" block.
func (c *modelCompiler) parseBlock(lines []string, blockLine int) (*Paradigm, error) {
	var p *Paradigm

	for i, rawLine := range lines {
		lineNo := blockLine + i

		line, err := expandMacros(rawLine, c.vars)
		if err != nil {
			if ce, ok := err.(*CompileError); ok {
				ce.Source = c.source
				ce.Line = lineNo
			}
			return nil, err
		}

		fail := func(msg string) (*Paradigm, error) {
			return nil, &CompileError{Source: c.source, Line: lineNo, Text: line, Err: errStr(msg)}
		}

		switch {
		case strings.HasPrefix(line, "modele:"):
			name := strings.TrimPrefix(line, "modele:")
			p = newParadigm(name)

		case strings.HasPrefix(line, "pere:"):
			if p == nil {
				return fail("pere: before modele:")
			}
			parentName := strings.TrimPrefix(line, "pere:")
			parent, ok := c.paradigms[parentName]
			if !ok {
				return fail("unknown parent paradigm " + parentName)
			}
			cloned := parent.clone(p.Name)
			*p = *cloned

		case strings.HasPrefix(line, "des+:"), strings.HasPrefix(line, "des:"):
			if p == nil {
				return fail("des: before modele:")
			}
			isPlus := strings.HasPrefix(line, "des+:")
			fields := strings.SplitN(line, ":", 4)
			if len(fields) < 4 {
				return fail("malformed des directive")
			}
			tags := ListI(fields[1])
			rootID := fields[2]
			desStrs := strings.Split(fields[3], ";")

			for i, tag := range tags {
				var raw string
				switch {
				case i < len(desStrs):
					raw = desStrs[i]
				case len(desStrs) > 0:
					raw = desStrs[len(desStrs)-1]
				}
				endings := parseEndingAlternatives(raw)

				if isPlus {
					if existing, ok := p.Desinences[tag]; ok {
						if existing.RootID != rootID {
							return fail("des+ root mismatch for tag")
						}
						merged := append(append([]string{}, existing.Endings...), endings...)
						p.Desinences[tag] = DesEntry{RootID: rootID, Endings: merged}
						continue
					}
				}
				p.Desinences[tag] = DesEntry{RootID: rootID, Endings: endings}
			}

		case strings.HasPrefix(line, "R:"):
			if p == nil {
				return fail("R: before modele:")
			}
			fields := strings.SplitN(line, ":", 3)
			if len(fields) < 3 {
				return fail("malformed R directive")
			}
			rootID := fields[1]
			removeAndAdd := fields[2]
			idx := strings.IndexAny(removeAndAdd, ",:")
			remove, add := removeAndAdd, ""
			if idx >= 0 {
				remove, add = removeAndAdd[:idx], removeAndAdd[idx+1:]
			}
			if remove == "K" {
				p.setRoot(rootID, RootRule{K: true})
				continue
			}
			deletion, err := strconv.Atoi(remove)
			if err != nil || deletion < 0 {
				return fail("malformed R deletion count")
			}
			if add == "0" {
				add = ""
			}
			p.setRoot(rootID, RootRule{Delete: deletion, Add: add})

		case strings.HasPrefix(line, "abs:"):
			if p == nil {
				return fail("abs: before modele:")
			}
			p.Absent = make(map[int]bool)
			for _, tag := range ListI(strings.TrimPrefix(line, "abs:")) {
				p.Absent[tag] = true
			}

		case strings.HasPrefix(line, "sufd:"):
			if p == nil {
				return fail("sufd: before modele:")
			}
			p.SufD = strings.Split(strings.TrimPrefix(line, "sufd:"), ";")

		case strings.HasPrefix(line, "suf:"):
			if p == nil {
				return fail("suf: before modele:")
			}
			fields := strings.SplitN(line, ":", 3)
			if len(fields) < 3 {
				return fail("malformed suf directive")
			}
			suffix := fields[2]
			for _, tag := range ListI(fields[1]) {
				p.setSuf(tag, suffix)
			}

		default:
			// Unrecognized directives are ignored, matching the teacher's
			// lenient handling of forward-compatible or unused directives.
		}
	}

	if p == nil || p.Name == "" {
		return nil, nil
	}
	return p, nil
}

// parseEndingAlternatives splits a comma-separated ending field into its
// alternatives, decoding the literal "-" placeholder to the empty string.
func parseEndingAlternatives(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		if p == "-" {
			out[i] = ""
		} else {
			out[i] = p
		}
	}
	return out
}
