package reader_test

import (
	"io"
	"strings"
	"testing"

	"github.com/db47h/cljr/reader"
	"github.com/db47h/cljr/value"
)

func readOneString(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := reader.New(strings.NewReader(src), "test").ReadOne()
	if err != nil {
		t.Fatalf("ReadOne(%q): %v", src, err)
	}
	return v
}

func TestReadAtoms(t *testing.T) {
	cases := []struct {
		src  string
		want value.Value
	}{
		{"42", value.Int(42)},
		{"-7", value.Int(-7)},
		{"3.14", value.Float(3.14)},
		{"-0.5", value.Float(-0.5)},
		{"0x1F", value.Int(0x1F)},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"nil", value.Nil},
		{"foo", value.NewSymbol("foo")},
		{"foo.bar/baz", value.NewQualifiedSymbol("foo.bar", "baz")},
		{"+", value.NewSymbol("+")},
		{"/", value.NewSymbol("/")},
	}
	for _, c := range cases {
		got := readOneString(t, c.src)
		if !got.Equal(c.want) {
			t.Errorf("ReadOne(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestReadString(t *testing.T) {
	got := readOneString(t, `"hello\nworld"`)
	want := value.String("hello\nworld")
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadChar(t *testing.T) {
	cases := []struct {
		src  string
		want rune
	}{
		{`\a`, 'a'},
		{`\newline`, '\n'},
		{`\space`, ' '},
		{`\tab`, '\t'},
	}
	for _, c := range cases {
		got := readOneString(t, c.src)
		if !got.Equal(value.Char(c.want)) {
			t.Errorf("ReadOne(%q) = %v, want %q", c.src, got, c.want)
		}
	}
}

func TestReadKeyword(t *testing.T) {
	got := readOneString(t, ":foo")
	want := value.InternUnqualified("foo")
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	got = readOneString(t, ":ns/foo")
	want = value.Intern("ns", "foo")
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadList(t *testing.T) {
	got := readOneString(t, "(1 2 3)")
	l, ok := got.(*value.List)
	if !ok {
		t.Fatalf("got %T, want *value.List", got)
	}
	if l.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", l.Count())
	}
}

func TestReadVector(t *testing.T) {
	got := readOneString(t, "[1 2 3]")
	v, ok := got.(*value.Vector)
	if !ok {
		t.Fatalf("got %T, want *value.Vector", got)
	}
	if v.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", v.Count())
	}
}

func TestReadMap(t *testing.T) {
	got := readOneString(t, `{:a 1 :b 2}`)
	m, ok := got.(*value.Map)
	if !ok {
		t.Fatalf("got %T, want *value.Map", got)
	}
	if m.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", m.Count())
	}
}

func TestReadMapOddFormsFails(t *testing.T) {
	_, err := reader.New(strings.NewReader(`{:a 1 :b}`), "test").ReadOne()
	if err == nil {
		t.Fatal("expected error on odd number of forms in map literal")
	}
}

func TestReadSet(t *testing.T) {
	got := readOneString(t, "#{1 2 3}")
	s, ok := got.(*value.Set)
	if !ok {
		t.Fatalf("got %T, want *value.Set", got)
	}
	if s.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", s.Count())
	}
}

func TestReadQuote(t *testing.T) {
	got := readOneString(t, "'foo")
	want := value.NewList(value.NewSymbol("quote"), value.NewSymbol("foo"))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadSyntaxQuote(t *testing.T) {
	got := readOneString(t, "`foo")
	want := value.NewList(value.NewSymbol("syntax-quote"), value.NewSymbol("foo"))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadUnquoteAndSplice(t *testing.T) {
	got := readOneString(t, "~foo")
	want := value.NewList(value.NewSymbol("unquote"), value.NewSymbol("foo"))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	got = readOneString(t, "~@foo")
	want = value.NewList(value.NewSymbol("unquote-splicing"), value.NewSymbol("foo"))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadDeref(t *testing.T) {
	got := readOneString(t, "@foo")
	want := value.NewList(value.NewSymbol("deref"), value.NewSymbol("foo"))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadDiscardsMetadata(t *testing.T) {
	got := readOneString(t, "^:dynamic foo")
	want := value.NewSymbol("foo")
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadElision(t *testing.T) {
	got := readOneString(t, "(1 #_2 3)")
	want := value.NewList(value.Int(1), value.Int(3))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadElisionOfReaderMacroForm(t *testing.T) {
	// #_ followed by another dispatch macro: #_#{1 2} discards the whole set.
	got := readOneString(t, "(1 #_#{1 2} 3)")
	want := value.NewList(value.Int(1), value.Int(3))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadComments(t *testing.T) {
	got := readOneString(t, "; a comment\n42")
	if !got.Equal(value.Int(42)) {
		t.Errorf("got %v, want 42", got)
	}
}

func TestReadRegex(t *testing.T) {
	got := readOneString(t, `#"a+b*"`)
	re, ok := got.(*value.Regex)
	if !ok {
		t.Fatalf("got %T, want *value.Regex", got)
	}
	if re.Source != "a+b*" {
		t.Errorf("Source = %q, want %q", re.Source, "a+b*")
	}
}

func TestReadAllCollectsMultipleErrors(t *testing.T) {
	forms, err := reader.New(strings.NewReader("1 ) 2 ] 3"), "test").ReadAll()
	if err == nil {
		t.Fatal("expected a collected-errors result")
	}
	if len(forms) != 3 {
		t.Fatalf("got %d forms, want 3 (malformed forms skipped)", len(forms))
	}
}

func TestReadOneEOF(t *testing.T) {
	_, err := reader.New(strings.NewReader("   "), "test").ReadOne()
	if err != io.EOF {
		t.Fatalf("ReadOne on blank input = %v, want io.EOF", err)
	}
}

func TestUnterminatedListErrors(t *testing.T) {
	_, err := reader.New(strings.NewReader("(1 2 3"), "test").ReadOne()
	if err == nil {
		t.Fatal("expected unterminated-list error")
	}
}
