package runtime

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

func init() {
	register("first", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		return value.SeqOf(a[0]).First(), nil
	}})
	register("second", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		s := value.SeqOf(a[0]).Next()
		if s == nil {
			return value.Nil, nil
		}
		return s.First(), nil
	}})
	register("rest", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		return value.SeqOf(a[0]).Rest(), nil
	}})
	register("next", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		s := value.SeqOf(a[0]).Next()
		if s == nil {
			return value.Nil, nil
		}
		return s, nil
	}})
	register("cons", Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) {
		return value.NewCons(a[0], value.SeqOf(a[1])), nil
	}})
	register("conj",
		Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) { return a[0], nil }},
		Overload{Arity: 2, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
			out := a[0]
			for _, v := range a[1:] {
				var err error
				out, err = conjOne(out, v)
				if err != nil {
					return nil, err
				}
			}
			return out, nil
		}},
	)
	register("concat", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		var all []value.Value
		for _, c := range a {
			all = append(all, value.ToSlice(value.SeqOf(c))...)
		}
		return value.NewList(all...), nil
	}})
	register("list", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		return value.NewList(a...), nil
	}})
	register("vector", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		return value.NewVector(a...), nil
	}})
	register("hash-map", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		if len(a)%2 != 0 {
			return nil, &xerr.MacroErr{Where: "hash-map", Msg: "requires an even number of arguments"}
		}
		return value.NewMap(a...), nil
	}})
	register("hash-set", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		return value.NewSet(a...), nil
	}})
	register("vec", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		return value.NewVector(value.ToSlice(value.SeqOf(a[0]))...), nil
	}})
	register("seq", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		return value.SeqOf(a[0]), nil
	}})
	register("count", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		if a[0] == value.Nil {
			return value.Int(0), nil
		}
		if c, ok := a[0].(value.Coll); ok {
			return value.Int(c.Count()), nil
		}
		return value.Int(value.Count(value.SeqOf(a[0]))), nil
	}})
	register("nth",
		Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) { return nth(a[0], a[1], nil) }},
		Overload{Arity: 3, Call: func(a []value.Value) (value.Value, error) { return nth(a[0], a[1], a[2]) }},
	)
	register("get",
		Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) { return get(a[0], a[1], value.Nil) }},
		Overload{Arity: 3, Call: func(a []value.Value) (value.Value, error) { return get(a[0], a[1], a[2]) }},
	)
	register("assoc", Overload{Arity: 3, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		if len(a)%2 != 1 {
			return nil, &xerr.MacroErr{Where: "assoc", Msg: "requires key/value pairs"}
		}
		out := a[0]
		for i := 1; i < len(a); i += 2 {
			var err error
			out, err = assocOne(out, a[i], a[i+1])
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	}})
	register("last", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		var last value.Value = value.Nil
		for cur := value.SeqOf(a[0]); cur != nil; cur = cur.Next() {
			last = cur.First()
		}
		return last, nil
	}})
	register("butlast", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		elems := value.ToSlice(value.SeqOf(a[0]))
		if len(elems) <= 1 {
			return value.Nil, nil
		}
		return value.NewList(elems[:len(elems)-1]...), nil
	}})
	register("partition", Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) {
		n, ok := a[0].(value.Int)
		if !ok || n <= 0 {
			return nil, &xerr.MacroErr{Where: "partition", Msg: "n must be a positive integer"}
		}
		elems := value.ToSlice(value.SeqOf(a[1]))
		var parts []value.Value
		for i := 0; i+int(n) <= len(elems); i += int(n) {
			parts = append(parts, value.NewList(elems[i:i+int(n)]...))
		}
		return value.NewList(parts...), nil
	}})
	register("mapcat", Overload{Arity: 2, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		mapped, err := mapSeqs(a[0], a[1:])
		if err != nil {
			return nil, err
		}
		var all []value.Value
		for _, m := range mapped {
			all = append(all, value.ToSlice(value.SeqOf(m))...)
		}
		return value.NewList(all...), nil
	}})
}

func conjOne(coll, v value.Value) (value.Value, error) {
	switch c := coll.(type) {
	case *value.List:
		return c.Conj(v), nil
	case *value.Vector:
		return c.Conj(v), nil
	case *value.Set:
		return c.Conj(v), nil
	case *value.Map:
		entry := value.ToSlice(value.SeqOf(v))
		if len(entry) != 2 {
			return nil, &xerr.MacroErr{Where: "conj", Msg: "map conj requires a 2-element key/value entry"}
		}
		return c.Assoc(entry[0], entry[1]), nil
	default:
		if coll == value.Nil {
			return value.NewList(v), nil
		}
		return nil, &xerr.MacroErr{Where: "conj", Msg: "value does not support conj"}
	}
}

func assocOne(coll, k, v value.Value) (value.Value, error) {
	switch c := coll.(type) {
	case *value.Map:
		return c.Assoc(k, v), nil
	case *value.Vector:
		i, ok := k.(value.Int)
		if !ok {
			return nil, &xerr.MacroErr{Where: "assoc", Msg: "vector index must be an integer"}
		}
		return c.Assoc(int(i), v)
	default:
		if coll == value.Nil {
			return value.NewMap(k, v), nil
		}
		return nil, &xerr.MacroErr{Where: "assoc", Msg: "value does not support assoc"}
	}
}

func nth(coll, idxv value.Value, notFound value.Value) (value.Value, error) {
	idx, ok := idxv.(value.Int)
	if !ok {
		return nil, &xerr.MacroErr{Where: "nth", Msg: "index must be an integer"}
	}
	i := int(idx)
	if v, ok := coll.(*value.Vector); ok {
		got, err := v.Nth(i)
		if err != nil {
			if notFound != nil {
				return notFound, nil
			}
			return nil, &xerr.MacroErr{Where: "nth", Msg: "index out of range"}
		}
		return got, nil
	}
	elems := value.ToSlice(value.SeqOf(coll))
	if i < 0 || i >= len(elems) {
		if notFound != nil {
			return notFound, nil
		}
		return nil, &xerr.MacroErr{Where: "nth", Msg: "index out of range"}
	}
	return elems[i], nil
}

func get(coll, k, notFound value.Value) (value.Value, error) {
	switch c := coll.(type) {
	case *value.Map:
		if v, ok := c.Get(k); ok {
			return v, nil
		}
		return notFound, nil
	case *value.Set:
		if c.Contains(k) {
			return k, nil
		}
		return notFound, nil
	case *value.Vector:
		i, ok := k.(value.Int)
		if !ok {
			return notFound, nil
		}
		v, err := c.Nth(int(i))
		if err != nil {
			return notFound, nil
		}
		return v, nil
	default:
		return notFound, nil
	}
}
