package declinatio

import "fmt"

// UnknownLemmaError is returned by GetRoots and Decline when the queried
// lemma is absent from the dataset. It is always recoverable by the caller.
type UnknownLemmaError struct {
	Lemma string
}

func (e *UnknownLemmaError) Error() string {
	return fmt.Sprintf("declinatio: unknown lemma %q", e.Lemma)
}

// UnknownParadigmError is returned by GetRoots and Decline when the lemma's
// own paradigm name, or an explicit override passed to GetRoots, names no
// paradigm in the dataset. It is always recoverable by the caller.
type UnknownParadigmError struct {
	Lemma    string
	Paradigm string
}

func (e *UnknownParadigmError) Error() string {
	return fmt.Sprintf("declinatio: lemma %q references unknown paradigm %q", e.Lemma, e.Paradigm)
}

// CompileError reports a malformed directive, an unknown parent paradigm,
// or an unterminated macro expansion encountered while compiling a model
// or lemma source file. It is always fatal to the build pipeline.
type CompileError struct {
	// Source names the file or stream being compiled (e.g. "modeles.la").
	Source string
	// Line is the 1-based line number of the offending line, or 0 when not
	// tied to a single line.
	Line int
	// Text is the offending line or directive, for diagnostics.
	Text string
	// Err is the underlying cause.
	Err error
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("declinatio: %s:%d: %v (line: %q)", e.Source, e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("declinatio: %s: %v (line: %q)", e.Source, e.Err, e.Text)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
