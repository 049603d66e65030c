// Package value implements the immutable data model shared by the reader,
// macro runtime, macro interpreter and macro expander: symbols, interned
// keywords, the scalar types, and the four persistent collections (list,
// vector, hash map, hash set) plus the lazy cons cell, all exposed through a
// single seq abstraction.
//
// Every exported type satisfies Value. Collections never mutate in place;
// every operation that looks like a mutation (conj, assoc, dissoc, ...)
// returns a new Value that shares structure with its receiver. The only
// mutable exception is the Transient builders returned by Vector.AsTransient
// and Map.AsTransient, which are single-owner by contract (see transient.go).
//
// Sequential values (List, Vector, Cons and the seq cursors) compare Equal
// to one another when their elements are pairwise Equal, whatever their
// Kind; every other value compares Equal only to a value of its own Kind
// with the same contents. Keyword additionally guarantees that equal keywords are the
// identical object, so identity comparison is a valid fast path for them.
package value
