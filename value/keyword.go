package value

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Keyword is an interned atom: two keywords built from the same
// (namespace, name) pair are the identical *Keyword object, so identity
// comparison (==) is sufficient and is the required fast path (spec.md §3).
type Keyword struct {
	Namespace string
	Name      string
}

var (
	internTable sync.Map // map[string]*Keyword, keyed by "ns\x00name"
	internFlight singleflight.Group
)

func keywordKey(ns, name string) string { return ns + "\x00" + name }

// Intern returns the canonical *Keyword for (ns, name), allocating it on
// first use. Readers dominate writers (spec.md §5): the common case is a
// sync.Map hit with no lock; the singleflight.Group collapses concurrent
// first-time interns of the same pair into a single allocation instead of
// racing two goroutines into installing two different pointers.
func Intern(ns, name string) *Keyword {
	key := keywordKey(ns, name)
	if v, ok := internTable.Load(key); ok {
		return v.(*Keyword)
	}
	kw, _, _ := internFlight.Do(key, func() (interface{}, error) {
		if v, ok := internTable.Load(key); ok {
			return v.(*Keyword), nil
		}
		k := &Keyword{Namespace: ns, Name: name}
		internTable.Store(key, k)
		return k, nil
	})
	return kw.(*Keyword)
}

// InternUnqualified interns a keyword with no namespace component.
func InternUnqualified(name string) *Keyword { return Intern("", name) }

func (k *Keyword) Kind() Kind { return KindKeyword }

// Equal is identity comparison: interned keyword identity implies equality
// and equality implies identity (spec.md §3 invariant).
func (k *Keyword) Equal(other Value) bool {
	o, ok := other.(*Keyword)
	return ok && k == o
}

func (k *Keyword) Hash() uint64 {
	h := hashMix(uint64(KindKeyword))
	h = hashCombine(h, hashString(k.Namespace))
	h = hashCombine(h, hashString(k.Name))
	return h
}

func (k *Keyword) String() string {
	if k.Namespace == "" {
		return ":" + k.Name
	}
	return ":" + k.Namespace + "/" + k.Name
}

// Invoke implements the macro-interpreter rule that a keyword acts as a one-
// or two-argument map-lookup function (spec.md §4.3 "Application"): (kw m)
// looks up kw in m, (kw m default) falls back to default when absent.
func (k *Keyword) Invoke(args []Value) (Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, errInvoke
	}
	m, ok := args[0].(*Map)
	if !ok {
		if len(args) == 2 {
			return args[1], nil
		}
		return Nil, nil
	}
	if v, ok := m.Get(k); ok {
		return v, nil
	}
	if len(args) == 2 {
		return args[1], nil
	}
	return Nil, nil
}
