package runtime

import (
	"regexp"
	"strings"

	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

func init() {
	register("str", Overload{Arity: 0, Variadic: true, Call: func(a []value.Value) (value.Value, error) {
		var b strings.Builder
		for _, v := range a {
			if v == value.Nil {
				continue
			}
			b.WriteString(v.String())
		}
		return value.String(b.String()), nil
	}})
	register("subs",
		Overload{Arity: 2, Types: []value.Kind{value.KindString, value.KindInt}, Call: func(a []value.Value) (value.Value, error) {
			return subs(a[0], a[1], nil)
		}},
		Overload{Arity: 3, Call: func(a []value.Value) (value.Value, error) {
			return subs(a[0], a[1], a[2])
		}},
	)
	register("join",
		Overload{Arity: 1, Call: func(a []value.Value) (value.Value, error) {
			return join("", a[0]), nil
		}},
		Overload{Arity: 2, Types: []value.Kind{value.KindString}, Call: func(a []value.Value) (value.Value, error) {
			return join(string(a[0].(value.String)), a[1]), nil
		}},
	)
	register("re-find", Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) {
		re, s, err := reAndString("re-find", a)
		if err != nil {
			return nil, err
		}
		m := re.FindString(s)
		if m == "" && !re.MatchString(s) {
			return value.Nil, nil
		}
		return value.String(m), nil
	}})
	register("re-seq", Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) {
		re, s, err := reAndString("re-seq", a)
		if err != nil {
			return nil, err
		}
		ms := re.FindAllString(s, -1)
		vs := make([]value.Value, len(ms))
		for i, m := range ms {
			vs[i] = value.String(m)
		}
		return value.NewList(vs...), nil
	}})
	register("re-matches", Overload{Arity: 2, Call: func(a []value.Value) (value.Value, error) {
		re, s, err := reAndString("re-matches", a)
		if err != nil {
			return nil, err
		}
		loc := re.FindStringIndex(s)
		if loc == nil || loc[0] != 0 || loc[1] != len(s) {
			return value.Nil, nil
		}
		return value.String(s), nil
	}})
	register("starts-with?", strPred(strings.HasPrefix))
	register("ends-with?", strPred(strings.HasSuffix))
	register("includes?", strPred(strings.Contains))
	register("replace", Overload{Arity: 3, Call: func(a []value.Value) (value.Value, error) {
		s, ok := a[0].(value.String)
		if !ok {
			return nil, &xerr.MacroErr{Where: "replace", Msg: "first argument must be a string"}
		}
		repl, ok := a[2].(value.String)
		if !ok {
			return nil, &xerr.MacroErr{Where: "replace", Msg: "replacement must be a string"}
		}
		switch match := a[1].(type) {
		case value.String:
			return value.String(strings.ReplaceAll(string(s), string(match), string(repl))), nil
		case *value.Regex:
			return value.String(match.Pattern.ReplaceAllString(string(s), string(repl))), nil
		default:
			return nil, &xerr.MacroErr{Where: "replace", Msg: "match must be a string or regex"}
		}
	}})
	register("upper-case", strUnary(strings.ToUpper))
	register("lower-case", strUnary(strings.ToLower))
	register("trim", strUnary(strings.TrimSpace))
}

func subs(sv, startv, endv value.Value) (value.Value, error) {
	s, ok := sv.(value.String)
	if !ok {
		return nil, &xerr.MacroErr{Where: "subs", Msg: "first argument must be a string"}
	}
	start, ok := startv.(value.Int)
	if !ok {
		return nil, &xerr.MacroErr{Where: "subs", Msg: "start must be an integer"}
	}
	runes := []rune(string(s))
	end := len(runes)
	if endv != nil {
		e, ok := endv.(value.Int)
		if !ok {
			return nil, &xerr.MacroErr{Where: "subs", Msg: "end must be an integer"}
		}
		end = int(e)
	}
	if start < 0 || end > len(runes) || int(start) > end {
		return nil, &xerr.MacroErr{Where: "subs", Msg: "index out of range"}
	}
	return value.String(string(runes[start:end])), nil
}

func join(sep string, coll value.Value) value.Value {
	elems := value.ToSlice(value.SeqOf(coll))
	parts := make([]string, len(elems))
	for i, v := range elems {
		parts[i] = v.String()
	}
	return value.String(strings.Join(parts, sep))
}

func reAndString(where string, a []value.Value) (*regexp.Regexp, string, error) {
	re, ok := a[0].(*value.Regex)
	if !ok {
		return nil, "", &xerr.MacroErr{Where: where, Msg: "first argument must be a regex"}
	}
	s, ok := a[1].(value.String)
	if !ok {
		return nil, "", &xerr.MacroErr{Where: where, Msg: "second argument must be a string"}
	}
	return re.Pattern, string(s), nil
}

func strPred(f func(s, sub string) bool) Overload {
	return Overload{Arity: 2, Types: []value.Kind{value.KindString, value.KindString}, Call: func(a []value.Value) (value.Value, error) {
		return value.Bool(f(string(a[0].(value.String)), string(a[1].(value.String)))), nil
	}}
}

func strUnary(f func(string) string) Overload {
	return Overload{Arity: 1, Types: []value.Kind{value.KindString}, Call: func(a []value.Value) (value.Value, error) {
		return value.String(f(string(a[0].(value.String)))), nil
	}}
}
