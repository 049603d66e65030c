package expander

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/runtime"
	"github.com/db47h/cljr/value"
)

// registerBuiltins installs the two built-in macros spec.md §4.4 item 7
// requires. Both generate their own symbols (via the C3 gensym function) so
// nested uses of either macro never collide.
func registerBuiltins(e *Expander) {
	e.macros["future"] = &Macro{Name: "future", Builtin: expandFuture}
	e.macros["time"] = &Macro{Name: "time", Builtin: expandTime}
}

// expandFuture rewrites `(future body...)` into a zero-argument closure
// handed to the host concurrency primitive `host/future-call`.
func expandFuture(e *Expander, args []value.Value) (value.Value, error) {
	thunk, err := gensym("fut__")
	if err != nil {
		return nil, err
	}
	fnForm := value.NewList(append([]value.Value{value.NewSymbol("fn"), value.NewVector()}, args...)...)
	return value.NewList(
		value.NewSymbol("let"),
		value.NewVector(thunk, fnForm),
		value.NewList(value.NewQualifiedSymbol("host", "future-call"), thunk),
	), nil
}

// expandTime rewrites `(time expr)` into a let that times expr's
// evaluation and reports it, per spec.md's worked example: binding a
// stopwatch start, evaluating expr, binding the elapsed milliseconds,
// printing "Elapsed time: <n> msecs", and returning expr's value.
func expandTime(e *Expander, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &xerr.MacroErr{Where: "time", Msg: "requires exactly one argument"}
	}
	start, err := gensym("start__")
	if err != nil {
		return nil, err
	}
	ret, err := gensym("ret__")
	if err != nil {
		return nil, err
	}
	elapsed, err := gensym("elapsed__")
	if err != nil {
		return nil, err
	}
	nowMillis := value.NewList(value.NewQualifiedSymbol("host", "now-millis"))
	return value.NewList(
		value.NewSymbol("let"),
		value.NewVector(
			start, nowMillis,
			ret, args[0],
			elapsed, value.NewList(value.NewSymbol("-"), value.NewList(value.NewQualifiedSymbol("host", "now-millis")), start),
		),
		value.NewList(value.NewQualifiedSymbol("host", "println"),
			value.NewList(value.NewSymbol("str"), value.String("Elapsed time: "), elapsed, value.String(" msecs"))),
		ret,
	), nil
}

func gensym(prefix string) (value.Symbol, error) {
	v, err := runtime.Call("gensym", []value.Value{value.String(prefix)})
	if err != nil {
		return value.Symbol{}, err
	}
	return v.(value.Symbol), nil
}
