package value

// Seq is the abstract first/rest cursor shared by every collection
// (spec.md §3 "Seq contract"). Iterating a seq never mutates the underlying
// collection.
//
// Rest always returns a Seq — an empty one when there is nothing left
// (EmptySeq, or EmptyListValue for a List) — while
// Next returns nil (a Go nil, not EmptySeq) when there is nothing left. This
// is the distinction spec.md §3 calls out explicitly: "calling seq on an
// empty collection yields the empty-seq sentinel ... calling next on a
// one-element seq yields null". Rest is the cheap structural operation;
// Next is Rest with the empty case collapsed to nil, matching Clojure's
// (next x) == (seq (rest x)).
type Seq interface {
	Value
	First() Value
	Rest() Seq
	Next() Seq
}

// emptySeq is the unique empty-seq sentinel. All Seqable's Seq() method
// returns this value (not nil) when the collection has no elements.
type emptySeq struct{}

// EmptySeq is the canonical empty sequence.
var EmptySeq Seq = emptySeq{}

func (emptySeq) Kind() Kind { return KindList }
func (emptySeq) Equal(other Value) bool {
	s, ok := other.(Seq)
	return ok && seqIsEmpty(s)
}

// seqIsEmpty reports whether s is genuinely empty, as opposed to merely
// having Next() == nil — which is also true of the last element of a
// one-element seq and so cannot by itself distinguish "nothing left" from
// "one thing left". EmptySeq is the sentinel every Seqable.Seq() returns for
// an empty collection; List additionally bottoms out at its own empty
// value (EmptyListValue) rather than EmptySeq, since List satisfies Seq
// directly, so its Empty() is consulted too.
func seqIsEmpty(s Seq) bool {
	if s == EmptySeq {
		return true
	}
	if e, ok := s.(interface{ Empty() bool }); ok {
		return e.Empty()
	}
	return false
}
func (emptySeq) Hash() uint64   { return hashMix(uint64(KindList)) }
func (emptySeq) String() string { return "()" }
func (emptySeq) First() Value   { return Nil }
func (emptySeq) Rest() Seq      { return EmptySeq }
func (emptySeq) Next() Seq      { return nil }

// Seqable is implemented by every collection: Seq returns EmptySeq (never
// nil) for an empty collection, and a concrete cursor otherwise.
type Seqable interface {
	Seq() Seq
}

// SeqOf returns the seq view of v. Collections return their own Seq(); nil
// (both the interface value and value.Nil) yields EmptySeq, matching
// Clojure's (seq nil) => nil being surfaced to Go callers as the empty seq
// sentinel so callers always get back a Seq to range over.
func SeqOf(v Value) Seq {
	if v == nil {
		return EmptySeq
	}
	if s, ok := v.(Seqable); ok {
		return s.Seq()
	}
	if s, ok := v.(Seq); ok {
		return s
	}
	return EmptySeq
}

// ToSlice drains a Seq into a Go slice in traversal order.
func ToSlice(s Seq) []Value {
	var out []Value
	for cur := s; cur != nil; cur = cur.Next() {
		if cur == EmptySeq {
			break
		}
		out = append(out, cur.First())
	}
	return out
}

// Count returns the number of elements reachable from s by repeated Next.
// Collections with O(1) count (List, Vector, Map, Set) should prefer their
// own Count method; this helper is for Cons chains and other lazy seqs.
func Count(s Seq) int {
	n := 0
	for cur := s; cur != nil; cur = cur.Next() {
		if cur == EmptySeq {
			break
		}
		n++
	}
	return n
}
