package interp

import "github.com/db47h/cljr/value"

// Env is one frame of the lexical environment (spec.md §4.3): a stack of
// frames mapping names to values. Frames are created per `let`, per `fn`
// application and per `recur` re-binding; lookup walks the parent chain.
type Env struct {
	vars   map[string]value.Value
	parent *Env
}

// NewEnv creates a fresh, empty frame chained to parent (nil for a root
// environment).
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]value.Value), parent: parent}
}

// Get resolves name by walking outward from e to the root frame.
func (e *Env) Get(name string) (value.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name to v in e itself (not a parent frame).
func (e *Env) Define(name string, v value.Value) {
	e.vars[name] = v
}
