package expander_test

import (
	"strings"
	"testing"

	"github.com/db47h/cljr/expander"
	"github.com/db47h/cljr/interp"
	"github.com/db47h/cljr/reader"
	"github.com/db47h/cljr/value"
)

func expandString(t *testing.T, e *expander.Expander, src string) value.Value {
	t.Helper()
	form, err := reader.New(strings.NewReader(src), "test").ReadOne()
	if err != nil {
		t.Fatalf("ReadOne(%q): %v", src, err)
	}
	v, err := e.Expand(form)
	if err != nil {
		t.Fatalf("Expand(%q): %v", src, err)
	}
	return v
}

func TestNonMacroFormIsUnchanged(t *testing.T) {
	e := expander.New(interp.New())
	got := expandString(t, e, "(+ 1 2)")
	want, _ := reader.New(strings.NewReader("(+ 1 2)"), "test").ReadOne()
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefmacroExpandsToNilAndRegisters(t *testing.T) {
	i := interp.New()
	e := expander.New(i)
	got := expandString(t, e, "(defmacro twice [x] (list 'do x x))")
	if got != value.Nil {
		t.Errorf("defmacro expansion = %v, want nil", got)
	}
	expanded := expandString(t, e, "(twice (foo))")
	fooForm, _ := reader.New(strings.NewReader("(foo)"), "test").ReadOne()
	want := value.NewList(value.NewSymbol("do"), fooForm, fooForm)
	if !expanded.Equal(want) {
		t.Errorf("(twice (foo)) expanded = %v, want %v", expanded, want)
	}
}

func TestUserMacroRecursiveExpansion(t *testing.T) {
	i := interp.New()
	e := expander.New(i)
	expandString(t, e, "(defmacro my-if [c t f] (list 'if c t f))")
	expandString(t, e, "(defmacro unless [c body] (list 'my-if c nil body))")
	got := expandString(t, e, "(unless false :yes)")
	want, _ := reader.New(strings.NewReader("(if false nil :yes)"), "test").ReadOne()
	if !got.Equal(want) {
		t.Errorf("(unless false :yes) expanded = %v, want %v", got, want)
	}
}

func TestExpansionSkipsQuotedSubtrees(t *testing.T) {
	i := interp.New()
	e := expander.New(i)
	expandString(t, e, "(defmacro m [x] x)")
	got := expandString(t, e, "'(m 1)")
	want, _ := reader.New(strings.NewReader("(quote (m 1))"), "test").ReadOne()
	if !got.Equal(want) {
		t.Errorf("quoted macro call expanded = %v, want %v (should be left alone)", got, want)
	}
}

func TestExpansionRecursesIntoVectorAndMap(t *testing.T) {
	i := interp.New()
	e := expander.New(i)
	expandString(t, e, "(defmacro lit [x] x)")
	got := expandString(t, e, "[(lit 1) (lit 2)]")
	want, _ := reader.New(strings.NewReader("[1 2]"), "test").ReadOne()
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	gotMap := expandString(t, e, "{:k (lit 1)}")
	wantMap, _ := reader.New(strings.NewReader("{:k 1}"), "test").ReadOne()
	if !gotMap.Equal(wantMap) {
		t.Errorf("got %v, want %v", gotMap, wantMap)
	}
}

func TestFutureExpandsToHostFutureCall(t *testing.T) {
	e := expander.New(interp.New())
	got := expandString(t, e, "(future (+ 1 2))")
	l, ok := got.(*value.List)
	if !ok || l.Empty() {
		t.Fatalf("future expansion is not a non-empty list: %v", got)
	}
	elems := value.ToSlice(l.Seq())
	head, ok := elems[0].(value.Symbol)
	if !ok || head.Name != "let" {
		t.Errorf("future expansion head = %v, want let", elems[0])
	}
	last := elems[len(elems)-1]
	innerList, ok := last.(*value.List)
	if !ok {
		t.Fatalf("future expansion tail is not a list: %v", last)
	}
	innerElems := value.ToSlice(innerList.Seq())
	sym, ok := innerElems[0].(value.Symbol)
	if !ok || sym.Namespace != "host" || sym.Name != "future-call" {
		t.Errorf("future body calls %v, want host/future-call", innerElems[0])
	}
}

func TestTimeExpansionShapeAndResult(t *testing.T) {
	i := interp.New()
	e := expander.New(i)
	expanded := expandString(t, e, "(time (+ 1 2))")
	l, ok := expanded.(*value.List)
	if !ok || l.Empty() {
		t.Fatalf("time expansion is not a non-empty list: %v", expanded)
	}
	if head, ok := value.ToSlice(l.Seq())[0].(value.Symbol); !ok || head.Name != "let" {
		t.Errorf("time expansion head = %v, want let", l.First())
	}
	v, err := i.Eval(interp.NewEnv(nil), expanded)
	if err != nil {
		t.Fatalf("Eval(expanded time form): %v", err)
	}
	if v != value.Int(3) {
		t.Errorf("(time (+ 1 2)) returned %v, want 3", v)
	}
}

func TestTwoFutureExpansionsDoNotCollide(t *testing.T) {
	e := expander.New(interp.New())
	a := expandString(t, e, "(future 1)")
	b := expandString(t, e, "(future 2)")
	if a.Equal(b) {
		t.Errorf("two future expansions produced identical gensyms: %v vs %v", a, b)
	}
}

func TestDefmacroWrongShapeIsMacroError(t *testing.T) {
	e := expander.New(interp.New())
	form, err := reader.New(strings.NewReader("(defmacro broken)"), "test").ReadOne()
	if err != nil {
		t.Fatalf("ReadOne: %v", err)
	}
	if _, err := e.Expand(form); err == nil {
		t.Error("expected an error expanding a malformed defmacro, got nil")
	}
}
