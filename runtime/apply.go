package runtime

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

// applyFn invokes a value as a function (a closure, symbol or keyword,
// per spec.md §4.3's application rules). The higher-order functions below
// (map, filter, reduce, mapcat) need it but must not import the interpreter
// package directly — that would create value<-runtime<-interp<-runtime
// import cycle, since the interpreter calls into this registry to resolve
// unbound head symbols. SetApplier breaks the cycle the same way the
// keyword intern table's singleflight.Group decouples allocation from
// lookup: one side registers a callback, the other only ever calls it.
var applyFn func(fn value.Value, args []value.Value) (value.Value, error)

// SetApplier installs the callback used to invoke function values from
// within the runtime library. The interpreter calls this once at
// construction time (interp.New).
func SetApplier(f func(fn value.Value, args []value.Value) (value.Value, error)) {
	applyFn = f
}

func apply(fn value.Value, args []value.Value) (value.Value, error) {
	if applyFn == nil {
		return nil, &xerr.MacroErr{Msg: "no function applier registered"}
	}
	return applyFn(fn, args)
}
