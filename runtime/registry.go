package runtime

import (
	"fmt"

	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

// Overload is one callable shape of a runtime Fn. Types, when non-nil,
// constrains the Kind of the leading positional arguments, one entry per
// argument; it may be shorter than Arity, and arguments past its length
// (including a variadic overload's trailing args) are unconstrained.
type Overload struct {
	Arity    int
	Variadic bool
	Types    []value.Kind
	Call     func(args []value.Value) (value.Value, error)
}

func (o *Overload) matches(args []value.Value) bool {
	if o.Variadic {
		if len(args) < o.Arity {
			return false
		}
	} else if len(args) != o.Arity {
		return false
	}
	for i, k := range o.Types {
		if i >= len(args) {
			break
		}
		if args[i].Kind() != k {
			return false
		}
	}
	return true
}

// Fn is a named, possibly-overloaded runtime function.
type Fn struct {
	Name      string
	Overloads []Overload
}

var registry = map[string]*Fn{}

// register adds fn to the registry, keyed by its Name. Intended for use
// only from this package's init-time table builders.
func register(name string, overloads ...Overload) {
	registry[name] = &Fn{Name: name, Overloads: overloads}
}

// Lookup returns the registered Fn for name, if any.
func Lookup(name string) (*Fn, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Call resolves the best-matching overload of name against args and invokes
// it. Failure to find the name at all, or to find an overload matching the
// given arity/types, is reported as an *xerr.MacroErr — this is the failure
// C4 treats as "unresolved runtime function" and falls back to a code
// literal for (spec.md §4.3).
func Call(name string, args []value.Value) (value.Value, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, &xerr.MacroErr{Where: name, Msg: "unresolved runtime function"}
	}
	for i := range fn.Overloads {
		o := &fn.Overloads[i]
		if o.matches(args) {
			return o.Call(args)
		}
	}
	return nil, &xerr.MacroErr{Where: name, Msg: fmt.Sprintf("no overload matches %d argument(s)", len(args))}
}
