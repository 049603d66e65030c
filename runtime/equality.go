package runtime

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

func init() {
	register("=", Overload{Arity: 1, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		for i := 1; i < len(a); i++ {
			if !a[0].Equal(a[i]) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	}})
	register("not=", Overload{Arity: 1, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		for i := 1; i < len(a); i++ {
			if !a[0].Equal(a[i]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}})
	register("not", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		return value.Bool(!value.Truthy(a[0])), nil
	}})
	registerCompare("<", func(a, b float64) bool { return a < b })
	registerCompare("<=", func(a, b float64) bool { return a <= b })
	registerCompare(">", func(a, b float64) bool { return a > b })
	registerCompare(">=", func(a, b float64) bool { return a >= b })
}

func registerCompare(name string, ok func(a, b float64) bool) {
	register(name, Overload{Arity: 2, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		for _, v := range a {
			if !isNumber(v) {
				return nil, &xerr.MacroErr{Where: name, Msg: "all arguments must be numbers"}
			}
		}
		for i := 0; i+1 < len(a); i++ {
			if !ok(asFloat(a[i]), asFloat(a[i+1])) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	}})
}
