package interp

import "github.com/db47h/cljr/value"

// recurSignal is returned in place of a normal error by eval when it
// evaluates a `(recur ...)` form. It is not a failure: applyClosure's
// invocation loop intercepts it and rebinds parameters instead of
// returning, per spec.md §4.3 ("not a tail call but a sibling-of-loop").
// A recurSignal that escapes every enclosing applyClosure call (i.e. a
// recur with no enclosing fn application on the Go call stack) surfaces
// to the caller of the exported Eval as an *xerr.RecurErr.
type recurSignal struct {
	Args []value.Value
}

func (r *recurSignal) Error() string { return "recur outside of a fn application loop" }
