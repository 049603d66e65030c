package interp

import (
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/runtime"
	"github.com/db47h/cljr/value"
)

func (i *Interp) evalFn(env *Env, elems []value.Value) (value.Value, error) {
	rest := elems[1:]
	selfName := ""
	if len(rest) > 0 {
		if sym, ok := rest[0].(value.Symbol); ok {
			selfName = symKey(sym)
			rest = rest[1:]
		}
	}
	if len(rest) < 1 {
		return nil, &xerr.MacroErr{Where: "fn", Msg: "requires a parameter vector"}
	}
	paramsVec, ok := rest[0].(*value.Vector)
	if !ok {
		return nil, &xerr.MacroErr{Where: "fn", Msg: "parameter form must be a vector"}
	}
	params, restParam, err := parseParams(paramsVec)
	if err != nil {
		return nil, err
	}
	return &Closure{
		SelfName: selfName,
		Params:   params,
		Rest:     restParam,
		Body:     rest[1:],
		Env:      env,
	}, nil
}

// parseParams splits a parameter vector into fixed params and an optional
// `& rest` parameter, per spec.md §4.3's "supports rest parameter with &
// introducer".
func parseParams(v *value.Vector) ([]value.Symbol, *value.Symbol, error) {
	elems := value.ToSlice(v.Seq())
	var params []value.Symbol
	for idx := 0; idx < len(elems); idx++ {
		sym, ok := elems[idx].(value.Symbol)
		if !ok {
			return nil, nil, &xerr.MacroErr{Where: "fn", Msg: "parameter must be a symbol"}
		}
		if sym.Name == "&" {
			if idx+1 >= len(elems) {
				return nil, nil, &xerr.MacroErr{Where: "fn", Msg: "& must be followed by a rest parameter name"}
			}
			restSym, ok := elems[idx+1].(value.Symbol)
			if !ok {
				return nil, nil, &xerr.MacroErr{Where: "fn", Msg: "rest parameter must be a symbol"}
			}
			return params, &restSym, nil
		}
		params = append(params, sym)
	}
	return params, nil, nil
}

// applyHead implements spec.md §4.3's "Application" rules once the head
// subform and its arguments are already evaluated.
func (i *Interp) applyHead(head value.Value, args []value.Value) (value.Value, error) {
	switch h := head.(type) {
	case *Closure:
		return i.applyClosure(h, args)
	case value.Symbol:
		if v, err := runtime.Call(symKey(h), args); err == nil {
			return v, nil
		}
		return value.NewList(append([]value.Value{h}, args...)...), nil
	case *value.Keyword:
		return mapLookup(h, args)
	default:
		return nil, &xerr.MacroErr{Msg: "value is not callable: " + head.String()}
	}
}

func mapLookup(k *value.Keyword, args []value.Value) (value.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, &xerr.MacroErr{Where: k.String(), Msg: "keyword-as-function takes 1 or 2 arguments"}
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		if len(args) == 2 {
			return args[1], nil
		}
		return value.Nil, nil
	}
	if v, ok := m.Get(k); ok {
		return v, nil
	}
	if len(args) == 2 {
		return args[1], nil
	}
	return value.Nil, nil
}

// applyClosure runs c's body against fresh parameter bindings, looping in
// place whenever the body evaluates to a recurSignal instead of returning
// (spec.md §4.3: "not a tail call but a sibling-of-loop").
func (i *Interp) applyClosure(c *Closure, args []value.Value) (value.Value, error) {
	for {
		if len(args) < len(c.Params) || (c.Rest == nil && len(args) > len(c.Params)) {
			return nil, &xerr.MacroErr{Where: "fn", Msg: "wrong number of arguments"}
		}
		frame := NewEnv(c.Env)
		for idx, p := range c.Params {
			frame.Define(symKey(p), args[idx])
		}
		if c.Rest != nil {
			frame.Define(symKey(*c.Rest), value.NewList(args[len(c.Params):]...))
		}
		if c.SelfName != "" {
			frame.Define(c.SelfName, c)
		}
		result, err := i.evalBody(frame, c.Body)
		if rs, ok := err.(*recurSignal); ok {
			args = rs.Args
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

// apply is the callback registered with runtime.SetApplier, invoked by the
// macro runtime's higher-order functions (map, filter, reduce, mapcat).
func (i *Interp) apply(fn value.Value, args []value.Value) (value.Value, error) {
	return i.applyHead(fn, args)
}
