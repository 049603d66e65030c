// Package xerr defines the four error kinds shared by the reader, macro
// interpreter, macro expander and dependency resolver. Each kind is its own
// type so that a caller can type-switch on the failure instead of matching
// on message text, the same way asm.ErrAsm lets callers inspect individual
// parse errors rather than parsing a formatted string.
package xerr

import "fmt"

// ReaderErr describes a single malformed-source-text failure, carrying the
// byte offset into the input at which it was detected.
type ReaderErr struct {
	Filename string
	Offset   int
	Msg      string
}

func (e *ReaderErr) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Offset, e.Msg)
}

// ReaderErrs collects every error produced while reading one input in
// best-effort mode.
type ReaderErrs []*ReaderErr

func (e ReaderErrs) Error() string {
	s := ""
	for i, err := range e {
		if i > 0 {
			s += "\n"
		}
		s += err.Error()
	}
	return s
}

// MacroErr describes a failure raised by the macro interpreter or expander:
// wrong arity to a special form, malformed defmacro, unquote-splicing out of
// context, or a failed runtime-function lookup.
type MacroErr struct {
	Where string // short description of the form/site, for context
	Msg   string
}

func (e *MacroErr) Error() string {
	if e.Where == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Where, e.Msg)
}

// RecurErr signals a (recur ...) evaluated outside of any enclosing fn
// application loop.
type RecurErr struct{}

func (e *RecurErr) Error() string { return "recur used outside of a fn" }

// DependencyErr reports one or more require cycles found while ordering a
// set of namespaces. It is returned as data (not thrown) per the resolver's
// failure-as-data contract: every cycle is reportable, not just the first.
type DependencyErr struct {
	Cycles []string // each already formatted as "ns1 -> ns2 -> ... -> ns1"
}

func (e *DependencyErr) Error() string {
	s := "dependency cycle(s) detected:"
	for _, c := range e.Cycles {
		s += "\n  " + c
	}
	return s
}

// TransientErr reports misuse of a transient collection builder: a mutation
// after Persist, or a second call to Persist. It is indicative of a caller
// bug, never of bad input data.
type TransientErr struct {
	Msg string
}

func (e *TransientErr) Error() string { return "transient: " + e.Msg }
