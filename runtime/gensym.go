package runtime

import (
	"strconv"
	"sync/atomic"

	"github.com/db47h/cljr/value"
)

var gensymCounter atomic.Int64

func init() {
	register("gensym",
		Overload{Arity: 0, Call: func(a []value.Value) (value.Value, error) {
			return nextGensym("G__"), nil
		}},
		Overload{Arity: 1, Types: []value.Kind{value.KindString}, Call: func(a []value.Value) (value.Value, error) {
			return nextGensym(string(a[0].(value.String))), nil
		}},
	)
}

func nextGensym(prefix string) value.Symbol {
	n := gensymCounter.Add(1)
	return value.NewSymbol(prefix + strconv.FormatInt(n, 10))
}
