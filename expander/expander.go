package expander

import (
	"github.com/db47h/cljr/interp"
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

// specialForms names every head symbol the interpreter itself recognizes
// (spec.md §4.3); these are never candidates for macro expansion even if a
// same-named macro were (mistakenly) registered.
var specialForms = map[string]bool{
	"quote": true, "if": true, "do": true, "let": true, "fn": true, "def": true,
	"recur": true, "syntax-quote": true, "unquote": true, "unquote-splicing": true,
}

// Expander owns the macro registry and drives expansion (spec.md §4.4). It
// is not safe for concurrent use (spec.md §5).
type Expander struct {
	interp *interp.Interp
	macros map[string]*Macro
}

// New builds an Expander backed by i (used to evaluate defmacro and
// user-macro bodies) with the built-in macros registered.
func New(i *interp.Interp) *Expander {
	e := &Expander{interp: i, macros: make(map[string]*Macro)}
	registerBuiltins(e)
	return e
}

// Expand expands form to a fixed point, outside-in at each node, then
// recurses into children (spec.md §4.4).
func (e *Expander) Expand(form value.Value) (value.Value, error) {
	cur := form
	for {
		next, changed, err := e.expandOnce(cur)
		if err != nil {
			return nil, err
		}
		if !changed {
			cur = next
			break
		}
		cur = next
	}
	return e.expandChildren(cur)
}

// expandOnce expands a single macro-call node, if cur's head names one.
// changed is false when cur was left untouched (not a macro call).
func (e *Expander) expandOnce(cur value.Value) (value.Value, bool, error) {
	l, ok := cur.(*value.List)
	if !ok || l.Empty() {
		return cur, false, nil
	}
	elems := value.ToSlice(l.Seq())
	sym, ok := elems[0].(value.Symbol)
	if !ok || sym.Namespace != "" || specialForms[sym.Name] {
		return cur, false, nil
	}
	if sym.Name == "defmacro" {
		if err := e.defineMacro(elems[1:]); err != nil {
			return nil, false, err
		}
		return value.Nil, true, nil
	}
	m, ok := e.macros[sym.Name]
	if !ok {
		return cur, false, nil
	}
	expanded, err := e.invoke(m, elems[1:])
	if err != nil {
		return nil, false, err
	}
	return expanded, true, nil
}

// expandChildren recurses Expand into cur's children. `quote` and
// `syntax-quote` subtrees are left untouched: their contents are data
// templates, not code to expand (spec.md's downstream-analyzer contract
// calls out quote as the one place unexpanded forms may legitimately
// remain).
func (e *Expander) expandChildren(cur value.Value) (value.Value, error) {
	switch f := cur.(type) {
	case *value.List:
		if f.Empty() {
			return f, nil
		}
		elems := value.ToSlice(f.Seq())
		if sym, ok := elems[0].(value.Symbol); ok && sym.Namespace == "" &&
			(sym.Name == "quote" || sym.Name == "syntax-quote") {
			return f, nil
		}
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			v, err := e.Expand(el)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.NewList(out...), nil
	case *value.Vector:
		elems := value.ToSlice(f.Seq())
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			v, err := e.Expand(el)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.NewVector(out...), nil
	case *value.Set:
		elems := value.ToSlice(f.Seq())
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			v, err := e.Expand(el)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.NewSet(out...), nil
	case *value.Map:
		var kvs []value.Value
		var rangeErr error
		f.Each(func(k, v value.Value) bool {
			ek, err := e.Expand(k)
			if err != nil {
				rangeErr = err
				return false
			}
			ev, err := e.Expand(v)
			if err != nil {
				rangeErr = err
				return false
			}
			kvs = append(kvs, ek, ev)
			return true
		})
		if rangeErr != nil {
			return nil, rangeErr
		}
		return value.NewMap(kvs...), nil
	default:
		return cur, nil
	}
}

// defineMacro implements `(defmacro name doc? [params...] body...)`: per
// spec.md §4.4 item 3, the body forms are stored as-is (syntax-quote
// transformation happens lazily at invocation time, see doc.go).
func (e *Expander) defineMacro(rest []value.Value) error {
	if len(rest) < 2 {
		return &xerr.MacroErr{Where: "defmacro", Msg: "requires a name and a parameter vector"}
	}
	name, ok := rest[0].(value.Symbol)
	if !ok {
		return &xerr.MacroErr{Where: "defmacro", Msg: "macro name must be a symbol"}
	}
	rest = rest[1:]
	if _, ok := rest[0].(value.String); ok { // optional docstring
		rest = rest[1:]
	}
	if len(rest) < 1 {
		return &xerr.MacroErr{Where: "defmacro", Msg: "requires a parameter vector"}
	}
	paramsVec, ok := rest[0].(*value.Vector)
	if !ok {
		return &xerr.MacroErr{Where: "defmacro", Msg: "parameter form must be a vector"}
	}
	params, restParam, err := parseMacroParams(paramsVec)
	if err != nil {
		return err
	}
	e.macros[name.Name] = &Macro{Name: name.Name, Params: params, Rest: restParam, Body: rest[1:]}
	return nil
}

func parseMacroParams(v *value.Vector) ([]value.Symbol, *value.Symbol, error) {
	elems := value.ToSlice(v.Seq())
	var params []value.Symbol
	for idx := 0; idx < len(elems); idx++ {
		sym, ok := elems[idx].(value.Symbol)
		if !ok {
			return nil, nil, &xerr.MacroErr{Where: "defmacro", Msg: "parameter must be a symbol"}
		}
		if sym.Name == "&" {
			if idx+1 >= len(elems) {
				return nil, nil, &xerr.MacroErr{Where: "defmacro", Msg: "& must be followed by a rest parameter name"}
			}
			restSym, ok := elems[idx+1].(value.Symbol)
			if !ok {
				return nil, nil, &xerr.MacroErr{Where: "defmacro", Msg: "rest parameter must be a symbol"}
			}
			return params, &restSym, nil
		}
		params = append(params, sym)
	}
	return params, nil, nil
}

// invoke binds args (unevaluated) to m's parameters in a fresh environment,
// evaluates the stored body via the macro interpreter, and returns the
// resulting form unexpanded; Expand's loop expands it further.
func (e *Expander) invoke(m *Macro, args []value.Value) (value.Value, error) {
	if m.Builtin != nil {
		result, err := m.Builtin(e, args)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	if len(args) < len(m.Params) || (m.Rest == nil && len(args) > len(m.Params)) {
		return nil, &xerr.MacroErr{Where: m.Name, Msg: "wrong number of arguments"}
	}
	env := interp.NewEnv(nil)
	for i, p := range m.Params {
		env.Define(symKeyOf(p), args[i])
	}
	if m.Rest != nil {
		env.Define(symKeyOf(*m.Rest), value.NewList(args[len(m.Params):]...))
	}
	var result value.Value = value.Nil
	for _, f := range m.Body {
		v, err := e.interp.Eval(env, f)
		if err != nil {
			return nil, &xerr.MacroErr{Where: m.Name, Msg: err.Error()}
		}
		result = v
	}
	return result, nil
}

func symKeyOf(s value.Symbol) string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}
