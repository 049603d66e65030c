package value

// Map is a persistent, unordered hash map backed by the HAMT in hamt.go,
// giving O(log32 n) assoc/dissoc/get/contains (spec.md §3).
type Map struct {
	count int
	root  trieNode // nil for the empty map
}

// EmptyMapValue is the canonical empty map.
var EmptyMapValue = &Map{}

// NewMap builds a map from alternating key/value arguments. An odd number
// of arguments is a programmer error at construction sites (the reader and
// runtime validate this themselves before calling NewMap); this constructor
// panics in that case rather than silently dropping the trailing key.
func NewMap(kvs ...Value) *Map {
	if len(kvs)%2 != 0 {
		panic(errOddMap)
	}
	m := EmptyMapValue
	for i := 0; i < len(kvs); i += 2 {
		m = m.Assoc(kvs[i], kvs[i+1])
	}
	return m
}

func (m *Map) Kind() Kind { return KindMap }
func (m *Map) Count() int { return m.count }

// Get returns the value for key and whether it was present.
func (m *Map) Get(key Value) (Value, bool) {
	if m.root == nil {
		return nil, false
	}
	return m.root.get(0, key.Hash(), key)
}

// Contains reports whether key is present.
func (m *Map) Contains(key Value) bool {
	_, ok := m.Get(key)
	return ok
}

// Assoc returns a new map with key bound to val.
func (m *Map) Assoc(key, val Value) *Map {
	if m.root == nil {
		n := &mnode{}
		n2, _ := n.assoc(0, key.Hash(), key, val)
		return &Map{count: 1, root: n2}
	}
	n, added := m.root.assoc(0, key.Hash(), key, val)
	count := m.count
	if added {
		count++
	}
	return &Map{count: count, root: n}
}

// Dissoc returns a new map with key removed, or m unchanged if key was
// absent.
func (m *Map) Dissoc(key Value) *Map {
	if m.root == nil {
		return m
	}
	n, found := m.root.without(0, key.Hash(), key)
	if !found {
		return m
	}
	return &Map{count: m.count - 1, root: n}
}

// Each visits every (key, val) pair in trie order, stopping early if fn
// returns false.
func (m *Map) Each(fn func(key, val Value) bool) {
	if m.root == nil {
		return
	}
	m.root.each(fn)
}

// Seq satisfies Seqable: iterating a Map yields one two-element Vector per
// entry, [key val], matching Clojure's map-entry convention. Map itself is
// not a Seq (unlike List/Vector/Cons) — callers go through Seq() or SeqOf.
func (m *Map) Seq() Seq {
	if m.count == 0 {
		return EmptySeq
	}
	var entries []Value
	m.Each(func(k, v Value) bool {
		entries = append(entries, NewVector(k, v))
		return true
	})
	return &mapSeq{entries: entries, idx: 0}
}

type mapSeq struct {
	entries []Value
	idx     int
}

func (s *mapSeq) Kind() Kind       { return KindMap }
func (s *mapSeq) Equal(o Value) bool {
	os, ok := o.(Seq)
	return ok && seqsEqual(s, os)
}
func (s *mapSeq) Hash() uint64   { return seqHash(s) }
func (s *mapSeq) String() string { return printSeq("(", ")", s) }
func (s *mapSeq) First() Value   { return s.entries[s.idx] }
func (s *mapSeq) Rest() Seq {
	if s.idx+1 >= len(s.entries) {
		return EmptySeq
	}
	return &mapSeq{entries: s.entries, idx: s.idx + 1}
}
func (s *mapSeq) Next() Seq {
	if s.idx+1 >= len(s.entries) {
		return nil
	}
	return &mapSeq{entries: s.entries, idx: s.idx + 1}
}

func (m *Map) Equal(other Value) bool {
	o, ok := other.(*Map)
	if !ok || m.count != o.count {
		return false
	}
	equal := true
	m.Each(func(k, v Value) bool {
		ov, present := o.Get(k)
		if !present || !v.Equal(ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

func (m *Map) Hash() uint64 {
	h := hashMix(uint64(KindMap))
	acc := uint64(0)
	m.Each(func(k, v Value) bool {
		acc = hashUnordered(acc, hashCombine(k.Hash(), v.Hash()))
		return true
	})
	return h ^ acc
}

func (m *Map) String() string {
	s := "{"
	first := true
	m.Each(func(k, v Value) bool {
		if !first {
			s += ", "
		}
		first = false
		s += printForm(k) + " " + printForm(v)
		return true
	})
	return s + "}"
}
