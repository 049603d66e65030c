package runtime

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

func init() {
	register("map", Overload{Arity: 2, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		vs, err := mapSeqs(a[0], a[1:])
		if err != nil {
			return nil, err
		}
		return value.NewList(vs...), nil
	}})
	register("filter", Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) {
		var out []value.Value
		for cur := value.SeqOf(a[1]); cur != nil && cur != value.EmptySeq; cur = cur.Next() {
			v := cur.First()
			keep, err := apply(a[0], []value.Value{v})
			if err != nil {
				return nil, err
			}
			if value.Truthy(keep) {
				out = append(out, v)
			}
		}
		return value.NewList(out...), nil
	}})
	register("reduce",
		Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) {
			elems := value.ToSlice(value.SeqOf(a[1]))
			if len(elems) == 0 {
				return nil, &xerr.MacroErr{Where: "reduce", Msg: "no init value given and collection is empty"}
			}
			acc := elems[0]
			var err error
			for _, v := range elems[1:] {
				acc, err = apply(a[0], []value.Value{acc, v})
				if err != nil {
					return nil, err
				}
			}
			return acc, nil
		}},
		Overload{Arity: 3, Call: func(a []value.Value) (value.Value, error) {
			acc := a[1]
			var err error
			for cur := value.SeqOf(a[2]); cur != nil && cur != value.EmptySeq; cur = cur.Next() {
				acc, err = apply(a[0], []value.Value{acc, cur.First()})
				if err != nil {
					return nil, err
				}
			}
			return acc, nil
		}},
	)
	register("identity", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		return a[0], nil
	}})
}

// mapSeqs applies f positionally across one or more seqs, stopping at the
// shortest, the way Clojure's variadic map does.
func mapSeqs(f value.Value, colls []value.Value) ([]value.Value, error) {
	cursors := make([]value.Seq, len(colls))
	for i, c := range colls {
		cursors[i] = value.SeqOf(c)
	}
	var out []value.Value
	for {
		args := make([]value.Value, len(cursors))
		for i, cur := range cursors {
			if cur == nil || cur == value.EmptySeq {
				return out, nil
			}
			args[i] = cur.First()
		}
		v, err := apply(f, args)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		for i, cur := range cursors {
			cursors[i] = cur.Next()
		}
	}
}
