package value

import "strings"

// printSeq renders any Seq using open/close delimiters, space-separated,
// used by List, Vector, Map and Set's String methods and by the cons cell.
// Round-tripping this output through the reader must reproduce an equal
// value (spec.md §8), excluding regex/metadata artifacts.
func printSeq(open, close string, s Seq) string {
	var b strings.Builder
	b.WriteString(open)
	first := true
	for cur := Seq(s); cur != nil; cur = cur.Next() {
		if cur == EmptySeq {
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(printForm(cur.First()))
	}
	b.WriteString(close)
	return b.String()
}

// printForm renders a single value the way the reader expects to re-read
// it: strings and chars use their escaped Quoted form, everything else uses
// its own String().
func printForm(v Value) string {
	switch t := v.(type) {
	case String:
		return t.Quoted()
	case Char:
		return t.Quoted()
	default:
		return v.String()
	}
}
