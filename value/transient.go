package value

import "github.com/db47h/cljr/internal/xerr"

// TransientVector is a single-owner mutable builder over a Vector (spec.md
// §3 "Transients"). The persistent Vector it was created from is never
// modified; Persist finalizes the builder and fails loudly if called twice,
// and any builder method fails loudly once the builder has been finalized.
type TransientVector struct {
	v    *Vector
	done bool
}

// AsTransient returns a new builder seeded with v's elements. v itself is
// untouched by anything the builder subsequently does.
func (v *Vector) AsTransient() *TransientVector { return &TransientVector{v: v} }

// Conj appends val to the builder.
func (tv *TransientVector) Conj(val Value) error {
	if tv.done {
		return &xerr.TransientErr{Msg: "conj on a persisted vector transient"}
	}
	tv.v = tv.v.Conj(val)
	return nil
}

// Assoc replaces the element at index i.
func (tv *TransientVector) Assoc(i int, val Value) error {
	if tv.done {
		return &xerr.TransientErr{Msg: "assoc on a persisted vector transient"}
	}
	nv, err := tv.v.Assoc(i, val)
	if err != nil {
		return err
	}
	tv.v = nv
	return nil
}

// Count returns the builder's current element count.
func (tv *TransientVector) Count() int { return tv.v.count }

// Persist finalizes the builder into a persistent Vector. A second call
// fails.
func (tv *TransientVector) Persist() (*Vector, error) {
	if tv.done {
		return nil, &xerr.TransientErr{Msg: "vector transient already persisted"}
	}
	tv.done = true
	return tv.v, nil
}

// TransientMap is a single-owner mutable builder over a Map.
type TransientMap struct {
	m    *Map
	done bool
}

// AsTransient returns a new builder seeded with m's entries.
func (m *Map) AsTransient() *TransientMap { return &TransientMap{m: m} }

// Assoc binds key to val in the builder.
func (tm *TransientMap) Assoc(key, val Value) error {
	if tm.done {
		return &xerr.TransientErr{Msg: "assoc on a persisted map transient"}
	}
	tm.m = tm.m.Assoc(key, val)
	return nil
}

// Dissoc removes key from the builder.
func (tm *TransientMap) Dissoc(key Value) error {
	if tm.done {
		return &xerr.TransientErr{Msg: "dissoc on a persisted map transient"}
	}
	tm.m = tm.m.Dissoc(key)
	return nil
}

// Count returns the builder's current entry count.
func (tm *TransientMap) Count() int { return tm.m.count }

// Persist finalizes the builder into a persistent Map. A second call fails.
func (tm *TransientMap) Persist() (*Map, error) {
	if tm.done {
		return nil, &xerr.TransientErr{Msg: "map transient already persisted"}
	}
	tm.done = true
	return tm.m, nil
}
