package interp

import (
	"fmt"
	"hash/fnv"

	"github.com/db47h/cljr/value"
)

// KindClosure extends value.Kind with a tag for interp's function values.
// The C1 data model (value.Kind's own constants) has no notion of a
// callable — functions are an interp-level concept layered on top — so
// this package mints its own tag above the range value.Kind defines,
// the same way a downstream package is free to add Kind values without
// needing the core enum to know about them in advance.
const KindClosure value.Kind = 128

// Closure is a user-defined function built by evaluating `(fn ...)`. Two
// closures are Equal only by identity, matching Clojure's fn equality.
type Closure struct {
	SelfName string // "" if the fn is anonymous
	Params   []value.Symbol
	Rest     *value.Symbol // non-nil when declared with a & rest parameter
	Body     []value.Value
	Env      *Env
}

func (c *Closure) Kind() value.Kind { return KindClosure }

func (c *Closure) Equal(other value.Value) bool {
	o, ok := other.(*Closure)
	return ok && o == c
}

func (c *Closure) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%p", c)
	return h.Sum64()
}

func (c *Closure) String() string {
	if c.SelfName != "" {
		return fmt.Sprintf("#<fn %s>", c.SelfName)
	}
	return "#<fn>"
}
