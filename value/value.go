package value

// Kind identifies the concrete shape of a Value without a type assertion,
// so that switches over Kind compile to a dense jump table the way the
// teacher VM switches over opcode (vm/run.go) rather than dispatching
// through an interface method on every step.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindChar
	KindSymbol
	KindKeyword
	KindList
	KindVector
	KindMap
	KindSet
	KindCons
	KindRegex
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindList:
		return "list"
	case KindVector:
		return "vector"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindCons:
		return "cons"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Value is satisfied by every C1 atom and collection: symbols, keywords,
// nil, scalars, list/vector/map/set and the lazy cons cell.
type Value interface {
	Kind() Kind
	Equal(other Value) bool
	Hash() uint64
	String() string
}

// Coll is satisfied by every collection (not by scalars, symbols or
// keywords): it exposes O(1) count and a seq view, per spec.md §3.
type Coll interface {
	Value
	Count() int
	Seq() Seq
}

// Nil is the single bottom value. It is equal only to itself and is the
// first of the two falsy values (see Truthy).
type nilValue struct{}

// Nil is the canonical nil value; there is exactly one.
var Nil Value = nilValue{}

func (nilValue) Kind() Kind { return KindNil }
func (nilValue) Equal(other Value) bool {
	_, ok := other.(nilValue)
	return ok
}
func (nilValue) Hash() uint64   { return hashMix(uint64(KindNil)) }
func (nilValue) String() string { return "nil" }

// Bool wraps a boolean atom.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}
func (b Bool) Hash() uint64 {
	if b {
		return hashMix(uint64(KindBool)<<1 | 1)
	}
	return hashMix(uint64(KindBool) << 1)
}
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Truthy implements the two-value falsiness rule from spec.md §3: only Nil
// and Bool(false) are falsy, everything else — including 0, "" and empty
// collections — is truthy.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	switch v.Kind() {
	case KindNil:
		return false
	case KindBool:
		return bool(v.(Bool))
	default:
		return true
	}
}
