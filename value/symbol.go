package value

// Symbol is an optionally-namespaced identifier. Symbols are not interned:
// two Symbol values are Equal whenever both components match, compared by
// value, which is cheaper than interning for a type that is constructed far
// more often than it is compared (every reader token, every macro-expanded
// reference).
type Symbol struct {
	Namespace string
	Name      string
}

// NewSymbol builds an unqualified symbol.
func NewSymbol(name string) Symbol { return Symbol{Name: name} }

// NewQualifiedSymbol builds a namespace-qualified symbol.
func NewQualifiedSymbol(ns, name string) Symbol { return Symbol{Namespace: ns, Name: name} }

// Qualified reports whether the symbol carries a namespace component. A
// qualified symbol in head position is never a macro-expansion candidate
// (spec.md §4.4.2): it is already the post-expansion reference to a
// host/user function.
func (s Symbol) Qualified() bool { return s.Namespace != "" }

func (s Symbol) Kind() Kind { return KindSymbol }

func (s Symbol) Equal(other Value) bool {
	o, ok := other.(Symbol)
	return ok && s.Namespace == o.Namespace && s.Name == o.Name
}

func (s Symbol) Hash() uint64 {
	h := hashMix(uint64(KindSymbol))
	h = hashCombine(h, hashString(s.Namespace))
	h = hashCombine(h, hashString(s.Name))
	return h
}

func (s Symbol) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}
