package interp

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/runtime"
	"github.com/db47h/cljr/value"
)

// Interp evaluates C1 values against a lexical environment (spec.md §4.3).
// An Interp is not safe for concurrent use (spec.md §5).
type Interp struct{}

// New builds an Interp and wires it into the runtime library as the
// applier higher-order functions (map, filter, reduce, mapcat) use to
// invoke function values — see runtime.SetApplier.
func New() *Interp {
	i := &Interp{}
	runtime.SetApplier(i.apply)
	return i
}

// Eval evaluates form in env. It is the entry point for top-level forms
// and for macro bodies the expander hands back to the interpreter; any
// `recur` that escapes without an enclosing fn application is reported
// here as an *xerr.RecurErr rather than propagated as the internal
// control-flow signal applyClosure understands.
func (i *Interp) Eval(env *Env, form value.Value) (value.Value, error) {
	v, err := i.eval(env, form)
	if _, ok := err.(*recurSignal); ok {
		return nil, &xerr.RecurErr{}
	}
	return v, err
}

func (i *Interp) eval(env *Env, form value.Value) (value.Value, error) {
	switch f := form.(type) {
	case nil:
		return value.Nil, nil
	case value.Symbol:
		if v, ok := env.Get(symKey(f)); ok {
			return v, nil
		}
		return f, nil
	case *value.Vector:
		return i.evalVector(env, f)
	case *value.Map:
		return i.evalMap(env, f)
	case *value.Set:
		return i.evalSet(env, f)
	case *value.List:
		return i.evalList(env, f)
	default:
		// nil, bool, int, float, string, char, keyword, regex: self-evaluating.
		return form, nil
	}
}

func symKey(s value.Symbol) string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

func (i *Interp) evalVector(env *Env, v *value.Vector) (value.Value, error) {
	elems := value.ToSlice(v.Seq())
	out := make([]value.Value, len(elems))
	for idx, e := range elems {
		r, err := i.eval(env, e)
		if err != nil {
			return nil, err
		}
		out[idx] = r
	}
	return value.NewVector(out...), nil
}

func (i *Interp) evalSet(env *Env, s *value.Set) (value.Value, error) {
	elems := value.ToSlice(s.Seq())
	out := make([]value.Value, len(elems))
	for idx, e := range elems {
		r, err := i.eval(env, e)
		if err != nil {
			return nil, err
		}
		out[idx] = r
	}
	return value.NewSet(out...), nil
}

func (i *Interp) evalMap(env *Env, m *value.Map) (value.Value, error) {
	var kvs []value.Value
	var evalErr error
	m.Each(func(k, v value.Value) bool {
		ek, err := i.eval(env, k)
		if err != nil {
			evalErr = err
			return false
		}
		ev, err := i.eval(env, v)
		if err != nil {
			evalErr = err
			return false
		}
		kvs = append(kvs, ek, ev)
		return true
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return value.NewMap(kvs...), nil
}

func (i *Interp) evalList(env *Env, l *value.List) (value.Value, error) {
	if l.Empty() {
		return l, nil
	}
	elems := value.ToSlice(l.Seq())
	if sym, ok := elems[0].(value.Symbol); ok && sym.Namespace == "" {
		switch sym.Name {
		case "quote":
			return evalQuote(elems)
		case "if":
			return i.evalIf(env, elems)
		case "do":
			return i.evalDo(env, elems)
		case "let":
			return i.evalLet(env, elems)
		case "def":
			return i.evalDef(env, elems)
		case "fn":
			return i.evalFn(env, elems)
		case "recur":
			return i.evalRecur(env, elems)
		case "syntax-quote":
			return i.evalSyntaxQuoteForm(env, elems)
		}
	}
	head, err := i.eval(env, elems[0])
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(elems)-1)
	for idx, a := range elems[1:] {
		v, err := i.eval(env, a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return i.applyHead(head, args)
}

func evalQuote(elems []value.Value) (value.Value, error) {
	if len(elems) != 2 {
		return nil, &xerr.MacroErr{Where: "quote", Msg: "requires exactly one argument"}
	}
	return elems[1], nil
}

func (i *Interp) evalIf(env *Env, elems []value.Value) (value.Value, error) {
	if len(elems) < 3 || len(elems) > 4 {
		return nil, &xerr.MacroErr{Where: "if", Msg: "requires (if test then else?)"}
	}
	test, err := i.eval(env, elems[1])
	if err != nil {
		return nil, err
	}
	if value.Truthy(test) {
		return i.eval(env, elems[2])
	}
	if len(elems) == 4 {
		return i.eval(env, elems[3])
	}
	return value.Nil, nil
}

func (i *Interp) evalDo(env *Env, elems []value.Value) (value.Value, error) {
	return i.evalBody(env, elems[1:])
}

func (i *Interp) evalLet(env *Env, elems []value.Value) (value.Value, error) {
	if len(elems) < 2 {
		return nil, &xerr.MacroErr{Where: "let", Msg: "requires a binding vector"}
	}
	bindings, ok := elems[1].(*value.Vector)
	if !ok {
		return nil, &xerr.MacroErr{Where: "let", Msg: "binding form must be a vector"}
	}
	pairs := value.ToSlice(bindings.Seq())
	if len(pairs)%2 != 0 {
		return nil, &xerr.MacroErr{Where: "let", Msg: "binding vector requires an even number of forms"}
	}
	scope := NewEnv(env)
	for idx := 0; idx < len(pairs); idx += 2 {
		sym, ok := pairs[idx].(value.Symbol)
		if !ok {
			return nil, &xerr.MacroErr{Where: "let", Msg: "binding name must be a symbol"}
		}
		v, err := i.eval(scope, pairs[idx+1])
		if err != nil {
			return nil, err
		}
		scope.Define(symKey(sym), v)
	}
	return i.evalBody(scope, elems[2:])
}

// evalDef implements `(def name init?)`: binds name directly into env,
// rather than a fresh child scope, so the binding outlives the form that
// introduced it — the mechanism by which top-level definitions accumulate
// across successive inputs in a line-at-a-time session (spec.md §1).
func (i *Interp) evalDef(env *Env, elems []value.Value) (value.Value, error) {
	if len(elems) < 2 || len(elems) > 3 {
		return nil, &xerr.MacroErr{Where: "def", Msg: "requires (def name init?)"}
	}
	sym, ok := elems[1].(value.Symbol)
	if !ok {
		return nil, &xerr.MacroErr{Where: "def", Msg: "name must be a symbol"}
	}
	var v value.Value = value.Nil
	if len(elems) == 3 {
		var err error
		v, err = i.eval(env, elems[2])
		if err != nil {
			return nil, err
		}
	}
	env.Define(symKey(sym), v)
	return sym, nil
}

// evalBody evaluates forms in sequence, returning the value of the last one
// (or nil for an empty body).
func (i *Interp) evalBody(env *Env, forms []value.Value) (value.Value, error) {
	var result value.Value = value.Nil
	for _, f := range forms {
		var err error
		result, err = i.eval(env, f)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (i *Interp) evalRecur(env *Env, elems []value.Value) (value.Value, error) {
	args := make([]value.Value, len(elems)-1)
	for idx, a := range elems[1:] {
		v, err := i.eval(env, a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return nil, &recurSignal{Args: args}
}
