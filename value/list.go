package value

// List is a persistent, singly-linked, prepend-only sequence (spec.md §3):
// Cons, First and Count are O(1); the empty list is the unique *List with a
// nil tail, reached via EmptyListValue.
type List struct {
	head  Value
	tail  *List // nil at the empty list
	count int
}

// EmptyListValue is the canonical empty list; every List ultimately bottoms
// out at it.
var EmptyListValue = &List{}

// NewList builds a list from vs, in order (vs[0] becomes the first
// element).
func NewList(vs ...Value) *List {
	l := EmptyListValue
	for i := len(vs) - 1; i >= 0; i-- {
		l = l.Cons(vs[i])
	}
	return l
}

// Cons prepends v, returning a new list sharing l's structure.
func (l *List) Cons(v Value) *List {
	return &List{head: v, tail: l, count: l.count + 1}
}

// Empty reports whether the list has no elements.
func (l *List) Empty() bool { return l.tail == nil }

// First returns the first element, or Nil for the empty list.
func (l *List) First() Value {
	if l.Empty() {
		return Nil
	}
	return l.head
}

// Rest returns the list with the first element removed; for a one-element
// list this is the empty list (not nil): see the Seq contract in seq.go.
func (l *List) Rest() Seq {
	if l.Empty() {
		return EmptyListValue
	}
	return l.tail
}

// Next returns Rest(), but as nil once there is nothing left, matching the
// Seq contract's "next yields null" rule.
func (l *List) Next() Seq {
	if l.Empty() || l.tail.Empty() {
		return nil
	}
	return l.tail
}

// Count is O(1): maintained incrementally by Cons.
func (l *List) Count() int { return l.count }

// Seq returns l itself, since a List already satisfies the Seq contract
// directly, or EmptySeq when l is empty.
func (l *List) Seq() Seq {
	if l.Empty() {
		return EmptySeq
	}
	return l
}

// Conj for a list prepends, matching Clojure's (conj '(1 2) 0) => (0 1 2).
func (l *List) Conj(v Value) *List { return l.Cons(v) }

func (l *List) Kind() Kind { return KindList }

func (l *List) Equal(other Value) bool {
	os, ok := other.(Seq)
	if !ok {
		return false
	}
	var a, b Seq = l, os
	for {
		af, an := a.First(), a.Next()
		bf, bn := b.First(), b.Next()
		if !af.Equal(bf) {
			return false
		}
		if (an == nil) != (bn == nil) {
			return false
		}
		if an == nil {
			return true
		}
		a, b = an, bn
	}
}

func (l *List) Hash() uint64 {
	h := hashMix(uint64(KindList))
	for cur := l.Seq(); cur != nil && cur != EmptySeq; cur = cur.Next() {
		h = hashCombine(h, cur.First().Hash())
	}
	return h
}

func (l *List) String() string { return printSeq("(", ")", l.Seq()) }
