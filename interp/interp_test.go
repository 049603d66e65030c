package interp_test

import (
	"strings"
	"testing"

	"github.com/db47h/cljr/interp"
	"github.com/db47h/cljr/reader"
	"github.com/db47h/cljr/value"
)

func evalString(t *testing.T, src string) value.Value {
	t.Helper()
	form, err := reader.New(strings.NewReader(src), "test").ReadOne()
	if err != nil {
		t.Fatalf("ReadOne(%q): %v", src, err)
	}
	i := interp.New()
	v, err := i.Eval(interp.NewEnv(nil), form)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return v
}

func TestSelfEvaluating(t *testing.T) {
	cases := []struct {
		src  string
		want value.Value
	}{
		{"42", value.Int(42)},
		{"nil", value.Nil},
		{"true", value.Bool(true)},
		{`"hi"`, value.String("hi")},
		{":k", value.InternUnqualified("k")},
	}
	for _, c := range cases {
		if got := evalString(t, c.src); !got.Equal(c.want) {
			t.Errorf("eval(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestQuote(t *testing.T) {
	got := evalString(t, "(quote foo)")
	if !got.Equal(value.NewSymbol("foo")) {
		t.Errorf("got %v, want symbol foo", got)
	}
}

func TestIf(t *testing.T) {
	if got := evalString(t, "(if true 1 2)"); !got.Equal(value.Int(1)) {
		t.Errorf("got %v, want 1", got)
	}
	if got := evalString(t, "(if false 1 2)"); !got.Equal(value.Int(2)) {
		t.Errorf("got %v, want 2", got)
	}
	if got := evalString(t, "(if false 1)"); got != value.Nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestDo(t *testing.T) {
	got := evalString(t, "(do 1 2 3)")
	if !got.Equal(value.Int(3)) {
		t.Errorf("got %v, want 3", got)
	}
}

func TestLet(t *testing.T) {
	got := evalString(t, "(let [x 1 y (+ x 1)] (+ x y))")
	if !got.Equal(value.Int(3)) {
		t.Errorf("got %v, want 3", got)
	}
}

func TestFnAndApplication(t *testing.T) {
	got := evalString(t, "((fn [x y] (+ x y)) 2 3)")
	if !got.Equal(value.Int(5)) {
		t.Errorf("got %v, want 5", got)
	}
}

func TestFnRestParam(t *testing.T) {
	got := evalString(t, "((fn [x & rest] (count rest)) 1 2 3 4)")
	if !got.Equal(value.Int(3)) {
		t.Errorf("got %v, want 3", got)
	}
}

func TestRecurLoop(t *testing.T) {
	got := evalString(t, "((fn count-down [n acc] (if (= n 0) acc (recur (dec n) (+ acc 1)))) 5 0)")
	if !got.Equal(value.Int(5)) {
		t.Errorf("got %v, want 5", got)
	}
}

func TestRecurOutsideFnIsError(t *testing.T) {
	form, err := reader.New(strings.NewReader("(recur 1)"), "test").ReadOne()
	if err != nil {
		t.Fatal(err)
	}
	i := interp.New()
	_, err = i.Eval(interp.NewEnv(nil), form)
	if err == nil {
		t.Fatal("expected error for recur outside a fn")
	}
}

func TestUnboundSymbolFallsBackToCodeLiteral(t *testing.T) {
	got := evalString(t, "(some-undefined-host-fn 1 2)")
	l, ok := got.(*value.List)
	if !ok {
		t.Fatalf("got %T, want *value.List", got)
	}
	elems := value.ToSlice(l.Seq())
	if len(elems) != 3 || !elems[0].Equal(value.NewSymbol("some-undefined-host-fn")) {
		t.Errorf("got %v, want code literal (some-undefined-host-fn 1 2)", got)
	}
}

func TestKeywordAsLookupFunction(t *testing.T) {
	got := evalString(t, "(:a {:a 1 :b 2})")
	if !got.Equal(value.Int(1)) {
		t.Errorf("got %v, want 1", got)
	}
	got = evalString(t, "(:missing {:a 1} :default)")
	if !got.Equal(value.InternUnqualified("default")) {
		t.Errorf("got %v, want :default", got)
	}
}

func TestSyntaxQuoteUnquoteAndSplice(t *testing.T) {
	got := evalString(t, "(let [x 5 xs (list 1 2 3)] `(a ~x ~@xs b))")
	l, ok := got.(*value.List)
	if !ok {
		t.Fatalf("got %T, want *value.List", got)
	}
	elems := value.ToSlice(l.Seq())
	want := []value.Value{
		value.NewSymbol("a"), value.Int(5), value.Int(1), value.Int(2), value.Int(3), value.NewSymbol("b"),
	}
	if len(elems) != len(want) {
		t.Fatalf("got %d elements, want %d: %v", len(elems), len(want), got)
	}
	for i, w := range want {
		if !elems[i].Equal(w) {
			t.Errorf("element %d = %v, want %v", i, elems[i], w)
		}
	}
}

func TestSyntaxQuoteAutoGensymStability(t *testing.T) {
	got := evalString(t, "`(let [x# 1] x#)")
	l := got.(*value.List)
	elems := value.ToSlice(l.Seq())
	// (let [x#-gensym 1] x#-gensym): the binding vector is elems[1], body sym is elems[2].
	bindings := value.ToSlice(elems[1].(*value.Vector).Seq())
	genName := bindings[0]
	body := elems[2]
	if !genName.Equal(body) {
		t.Errorf("auto-gensym not stable within one syntax-quote form: %v vs %v", genName, body)
	}
}

func TestSyntaxQuoteAutoGensymDiffersAcrossForms(t *testing.T) {
	a := evalString(t, "`x#")
	b := evalString(t, "`x#")
	if a.Equal(b) {
		t.Errorf("auto-gensym reused the same symbol across two syntax-quote forms: %v", a)
	}
}

func TestDefBindsIntoGivenEnvAndPersists(t *testing.T) {
	i := interp.New()
	env := interp.NewEnv(nil)
	form1, err := reader.New(strings.NewReader("(def answer 42)"), "test").ReadOne()
	if err != nil {
		t.Fatalf("ReadOne: %v", err)
	}
	if _, err := i.Eval(env, form1); err != nil {
		t.Fatalf("Eval (def ...): %v", err)
	}
	form2, err := reader.New(strings.NewReader("answer"), "test").ReadOne()
	if err != nil {
		t.Fatalf("ReadOne: %v", err)
	}
	got, err := i.Eval(env, form2)
	if err != nil {
		t.Fatalf("Eval answer: %v", err)
	}
	if got != value.Int(42) {
		t.Errorf("answer = %v, want 42", got)
	}
}
