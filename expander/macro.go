package expander

import "github.com/db47h/cljr/value"

// Macro is a registered transformer: either a built-in (Builtin set) or a
// user-defined one compiled from a `defmacro` form (Params/Rest/Body set).
// Arguments are always the unevaluated operand forms (code-as-data),
// per spec.md §4.4 item 4.
type Macro struct {
	Name    string
	Params  []value.Symbol
	Rest    *value.Symbol
	Body    []value.Value
	Builtin func(e *Expander, args []value.Value) (value.Value, error)
}
