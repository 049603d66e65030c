package runtime

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

func init() {
	register("symbol",
		Overload{Arity: 1, Types: []value.Kind{value.KindString}, Call: func(a []value.Value) (value.Value, error) {
			return value.NewSymbol(string(a[0].(value.String))), nil
		}},
		Overload{Arity: 2, Types: []value.Kind{value.KindString, value.KindString}, Call: func(a []value.Value) (value.Value, error) {
			return value.NewQualifiedSymbol(string(a[0].(value.String)), string(a[1].(value.String))), nil
		}},
	)
	register("keyword",
		Overload{Arity: 1, Types: []value.Kind{value.KindString}, Call: func(a []value.Value) (value.Value, error) {
			return value.Intern("", string(a[0].(value.String))), nil
		}},
		Overload{Arity: 2, Types: []value.Kind{value.KindString, value.KindString}, Call: func(a []value.Value) (value.Value, error) {
			return value.Intern(string(a[0].(value.String)), string(a[1].(value.String))), nil
		}},
	)
	register("name", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		switch v := a[0].(type) {
		case value.Symbol:
			return value.String(v.Name), nil
		case *value.Keyword:
			return value.String(v.Name), nil
		default:
			return nil, &xerr.MacroErr{Where: "name", Msg: "argument must be a symbol or keyword"}
		}
	}})
	register("namespace", Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
		var ns string
		switch v := a[0].(type) {
		case value.Symbol:
			ns = v.Namespace
		case *value.Keyword:
			ns = v.Namespace
		default:
			return nil, &xerr.MacroErr{Where: "namespace", Msg: "argument must be a symbol or keyword"}
		}
		if ns == "" {
			return value.Nil, nil
		}
		return value.String(ns), nil
	}})
}
