package value

// Cons prepends a single value onto any existing seq without requiring the
// rest to be a List; it is the general-purpose "cons onto anything"
// primitive behind the runtime's cons function, distinct from List.Cons
// which only ever produces another *List.
type Cons struct {
	first Value
	rest  Seq
}

// NewCons builds a cons cell with head first and the given rest seq. rest
// must not be nil; pass EmptySeq to cons onto nothing.
func NewCons(first Value, rest Seq) *Cons {
	if rest == nil {
		rest = EmptySeq
	}
	return &Cons{first: first, rest: rest}
}

func (c *Cons) Kind() Kind { return KindCons }

func (c *Cons) First() Value { return c.first }

func (c *Cons) Rest() Seq { return c.rest }

func (c *Cons) Next() Seq {
	if c.rest == nil || c.rest == EmptySeq {
		return nil
	}
	return c.rest
}

func (c *Cons) Seq() Seq { return c }

func (c *Cons) Equal(other Value) bool {
	os, ok := other.(Seq)
	if !ok {
		return false
	}
	var a, b Seq = c, os
	for {
		if !a.First().Equal(b.First()) {
			return false
		}
		an, bn := a.Next(), b.Next()
		if (an == nil) != (bn == nil) {
			return false
		}
		if an == nil {
			return true
		}
		a, b = an, bn
	}
}

func (c *Cons) Hash() uint64 {
	h := hashMix(uint64(KindList)) // cons compares/hashes as a seq, like List
	for cur := Seq(c); cur != nil; cur = cur.Next() {
		h = hashCombine(h, cur.First().Hash())
		if cur == EmptySeq {
			break
		}
	}
	return h
}

func (c *Cons) String() string { return printSeq("(", ")", c) }
