package runtime

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

func init() {
	register("+", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		sum, err := asInts("+", a)
		if err != nil {
			return nil, err
		}
		var total int64
		for _, n := range sum {
			total += n
		}
		return value.Int(total), nil
	}})
	register("*", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		factors, err := asInts("*", a)
		if err != nil {
			return nil, err
		}
		total := int64(1)
		for _, n := range factors {
			total *= n
		}
		return value.Int(total), nil
	}})
	register("-",
		Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
			n, err := asInt1("-", a[0])
			if err != nil {
				return nil, err
			}
			return value.Int(-n), nil
		}},
		Overload{Arity: 1, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
			ns, err := asInts("-", a)
			if err != nil {
				return nil, err
			}
			total := ns[0]
			for _, n := range ns[1:] {
				total -= n
			}
			return value.Int(total), nil
		}},
	)
	register("inc", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		n, err := asInt1("inc", a[0])
		if err != nil {
			return nil, err
		}
		return value.Int(n + 1), nil
	}})
	register("dec", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		n, err := asInt1("dec", a[0])
		if err != nil {
			return nil, err
		}
		return value.Int(n - 1), nil
	}})
}

func asInt1(where string, v value.Value) (int64, error) {
	n, ok := v.(value.Int)
	if !ok {
		return 0, &xerr.MacroErr{Where: where, Msg: "argument must be an integer"}
	}
	return int64(n), nil
}

func asInts(where string, vs []value.Value) ([]int64, error) {
	out := make([]int64, len(vs))
	for i, v := range vs {
		n, err := asInt1(where, v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
