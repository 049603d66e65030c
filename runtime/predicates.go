package runtime

import "github.com/db47h/cljr/value"

func pred(name string, f func(value.Value) bool) {
	register(name, Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		return value.Bool(f(a[0])), nil
	}})
}

func init() {
	pred("nil?", func(v value.Value) bool { return v == value.Nil })
	pred("some?", func(v value.Value) bool { return v != value.Nil })
	pred("seq?", func(v value.Value) bool { _, ok := v.(value.Seq); return ok })
	pred("list?", func(v value.Value) bool { _, ok := v.(*value.List); return ok })
	pred("vector?", func(v value.Value) bool { _, ok := v.(*value.Vector); return ok })
	pred("map?", func(v value.Value) bool { _, ok := v.(*value.Map); return ok })
	pred("set?", func(v value.Value) bool { _, ok := v.(*value.Set); return ok })
	pred("symbol?", func(v value.Value) bool { _, ok := v.(value.Symbol); return ok })
	pred("keyword?", func(v value.Value) bool { _, ok := v.(*value.Keyword); return ok })
	pred("string?", func(v value.Value) bool { _, ok := v.(value.String); return ok })
	pred("number?", func(v value.Value) bool { return isNumber(v) })
	pred("coll?", func(v value.Value) bool { _, ok := v.(value.Coll); return ok })
	pred("empty?", func(v value.Value) bool { return isEmpty(v) })
	pred("odd?", func(v value.Value) bool { return asInt(v)%2 != 0 })
	pred("even?", func(v value.Value) bool { return asInt(v)%2 == 0 })
	pred("zero?", func(v value.Value) bool { return asFloat(v) == 0 })
	pred("pos?", func(v value.Value) bool { return asFloat(v) > 0 })
	pred("neg?", func(v value.Value) bool { return asFloat(v) < 0 })
}

func isNumber(v value.Value) bool {
	switch v.(type) {
	case value.Int, value.Float:
		return true
	default:
		return false
	}
}

func isEmpty(v value.Value) bool {
	if v == value.Nil {
		return true
	}
	if c, ok := v.(value.Coll); ok {
		return c.Count() == 0
	}
	if s, ok := v.(value.Seq); ok {
		return s == value.EmptySeq
	}
	return false
}

func asInt(v value.Value) int64 {
	switch n := v.(type) {
	case value.Int:
		return int64(n)
	case value.Float:
		return int64(n)
	default:
		return 0
	}
}

func asFloat(v value.Value) float64 {
	switch n := v.(type) {
	case value.Int:
		return float64(n)
	case value.Float:
		return float64(n)
	default:
		return 0
	}
}
