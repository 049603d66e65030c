package runtime_test

import (
	"testing"

	"github.com/db47h/cljr/runtime"
	"github.com/db47h/cljr/value"
)

func call(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	v, err := runtime.Call(name, args)
	if err != nil {
		t.Fatalf("%s%v: %v", name, args, err)
	}
	return v
}

func TestSeqOps(t *testing.T) {
	l := value.NewList(value.Int(1), value.Int(2), value.Int(3))
	if got := call(t, "first", l); !got.Equal(value.Int(1)) {
		t.Errorf("first = %v, want 1", got)
	}
	if got := call(t, "count", l); !got.Equal(value.Int(3)) {
		t.Errorf("count = %v, want 3", got)
	}
	if got := call(t, "rest", l); got.(value.Seq).Next() == nil {
		t.Errorf("rest of 3-elem list should have 2 more elements")
	}
	if got := call(t, "cons", value.Int(0), l); !got.(value.Seq).First().Equal(value.Int(0)) {
		t.Errorf("cons did not prepend")
	}
}

func TestConjByType(t *testing.T) {
	v := value.NewVector(value.Int(1), value.Int(2))
	got := call(t, "conj", v, value.Int(3))
	vec, ok := got.(*value.Vector)
	if !ok || vec.Count() != 3 {
		t.Fatalf("conj on vector = %v", got)
	}
	l := value.NewList(value.Int(1), value.Int(2))
	got = call(t, "conj", l, value.Int(3))
	if first := got.(value.Seq).First(); !first.Equal(value.Int(3)) {
		t.Errorf("conj on list did not prepend: got %v", first)
	}
}

func TestNthAndGet(t *testing.T) {
	v := value.NewVector(value.Int(10), value.Int(20), value.Int(30))
	if got := call(t, "nth", v, value.Int(1)); !got.Equal(value.Int(20)) {
		t.Errorf("nth = %v, want 20", got)
	}
	if got := call(t, "get", v, value.Int(99), value.String("missing")); !got.Equal(value.String("missing")) {
		t.Errorf("get out-of-range with default = %v", got)
	}
	m := value.NewMap(value.InternUnqualified("k"), value.Int(1))
	if got := call(t, "get", m, value.InternUnqualified("k")); !got.Equal(value.Int(1)) {
		t.Errorf("get on map = %v, want 1", got)
	}
}

func TestPredicates(t *testing.T) {
	if got := call(t, "nil?", value.Nil); got != value.Bool(true) {
		t.Errorf("nil? Nil = %v", got)
	}
	if got := call(t, "empty?", value.NewVector()); got != value.Bool(true) {
		t.Errorf("empty? [] = %v", got)
	}
	if got := call(t, "odd?", value.Int(3)); got != value.Bool(true) {
		t.Errorf("odd? 3 = %v", got)
	}
	if got := call(t, "even?", value.Int(3)); got != value.Bool(false) {
		t.Errorf("even? 3 = %v", got)
	}
}

func TestEqualityAndComparison(t *testing.T) {
	if got := call(t, "=", value.Int(1), value.Int(1), value.Int(1)); got != value.Bool(true) {
		t.Errorf("= 1 1 1 = %v", got)
	}
	if got := call(t, "<", value.Int(1), value.Int(2), value.Int(3)); got != value.Bool(true) {
		t.Errorf("< 1 2 3 = %v", got)
	}
	if got := call(t, "<", value.Int(1), value.Int(3), value.Int(2)); got != value.Bool(false) {
		t.Errorf("< 1 3 2 = %v, want false", got)
	}
}

func TestArithmetic(t *testing.T) {
	if got := call(t, "+", value.Int(1), value.Int(2), value.Int(3)); !got.Equal(value.Int(6)) {
		t.Errorf("+ = %v, want 6", got)
	}
	if got := call(t, "-", value.Int(10), value.Int(3)); !got.Equal(value.Int(7)) {
		t.Errorf("- = %v, want 7", got)
	}
	if got := call(t, "-", value.Int(5)); !got.Equal(value.Int(-5)) {
		t.Errorf("unary - = %v, want -5", got)
	}
	if got := call(t, "inc", value.Int(4)); !got.Equal(value.Int(5)) {
		t.Errorf("inc = %v, want 5", got)
	}
}

func TestHigherOrder(t *testing.T) {
	runtime.SetApplier(func(fn value.Value, args []value.Value) (value.Value, error) {
		return runtime.Call(fn.(value.Symbol).Name, args)
	})
	l := value.NewList(value.Int(1), value.Int(2), value.Int(3))
	got := call(t, "map", value.NewSymbol("inc"), l)
	want := []int64{2, 3, 4}
	elems := value.ToSlice(got.(value.Seq))
	if len(elems) != len(want) {
		t.Fatalf("map result length = %d, want %d", len(elems), len(want))
	}
	for i, w := range want {
		if !elems[i].Equal(value.Int(w)) {
			t.Errorf("element %d = %v, want %d", i, elems[i], w)
		}
	}
	got = call(t, "reduce", value.NewSymbol("+"), l)
	if !got.Equal(value.Int(6)) {
		t.Errorf("reduce + [1 2 3] = %v, want 6", got)
	}
}

func TestStrings(t *testing.T) {
	if got := call(t, "str", value.String("a"), value.Int(1), value.String("b")); !got.Equal(value.String("a1b")) {
		t.Errorf("str = %v, want a1b", got)
	}
	if got := call(t, "upper-case", value.String("abc")); !got.Equal(value.String("ABC")) {
		t.Errorf("upper-case = %v", got)
	}
	if got := call(t, "starts-with?", value.String("hello"), value.String("he")); got != value.Bool(true) {
		t.Errorf("starts-with? = %v", got)
	}
}

func TestGensymMonotonic(t *testing.T) {
	a := call(t, "gensym")
	b := call(t, "gensym")
	if a.Equal(b) {
		t.Errorf("successive gensyms not distinct: %v, %v", a, b)
	}
}

func TestUnresolvedFunctionIsMacroErr(t *testing.T) {
	_, err := runtime.Call("no-such-fn", []value.Value{value.Int(1)})
	if err == nil {
		t.Fatal("expected an error for unresolved runtime function")
	}
}
