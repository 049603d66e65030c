package reader

import (
	"io"

	"github.com/db47h/cljr/value"
)

// readForm dispatches on the already-peeked lookahead rune ch (not yet
// consumed, except where noted).
func (r *Reader) readForm(ch rune) (value.Value, error) {
	switch ch {
	case '(':
		r.nextRune()
		return r.readDelimited(')', "list")
	case '[':
		r.nextRune()
		vs, err := r.readUntil(']', "vector")
		if err != nil {
			return nil, err
		}
		return value.NewVector(vs...), nil
	case '{':
		r.nextRune()
		vs, err := r.readUntil('}', "map")
		if err != nil {
			return nil, err
		}
		if len(vs)%2 != 0 {
			return nil, r.errorf(r.offset, "map literal requires an even number of forms")
		}
		return value.NewMap(vs...), nil
	case '"':
		return r.readString()
	case '\\':
		return r.readChar()
	case ':':
		return r.readKeyword()
	case '\'':
		r.nextRune()
		return r.readWrapped("quote")
	case '`':
		r.nextRune()
		return r.readSyntaxQuote()
	case '~':
		r.nextRune()
		return r.readUnquote()
	case '@':
		r.nextRune()
		return r.readWrapped("deref")
	case '^':
		r.nextRune()
		return r.readMeta()
	case ')', ']', '}':
		r.nextRune()
		return nil, r.errorf(r.offset-1, "unexpected closing delimiter %q", ch)
	default:
		return r.readAtom()
	}
}

// readDelimited reads a list: '(' was already consumed by the caller.
func (r *Reader) readDelimited(closeDelim rune, what string) (value.Value, error) {
	vs, err := r.readUntil(closeDelim, what)
	if err != nil {
		return nil, err
	}
	return value.NewList(vs...), nil
}

// readUntil reads forms until the close delimiter is seen, returning them
// in order. The opening delimiter must already have been consumed.
func (r *Reader) readUntil(closeDelim rune, what string) ([]value.Value, error) {
	startOffset := r.offset
	var vs []value.Value
	for {
		if err := r.skipIgnorable(); err != nil {
			if err == io.EOF {
				return nil, r.errorf(startOffset, "unterminated %s", what)
			}
			return nil, err
		}
		ch, err := r.peekRune()
		if err == io.EOF {
			return nil, r.errorf(startOffset, "unterminated %s", what)
		}
		if err != nil {
			return nil, err
		}
		if ch == closeDelim {
			r.nextRune()
			return vs, nil
		}
		if ch == ')' || ch == ']' || ch == '}' {
			r.nextRune()
			return nil, r.errorf(r.offset-1, "unexpected closing delimiter %q in %s", ch, what)
		}
		if ch == '#' {
			r.nextRune()
			handled, v, err := r.readHash()
			if err != nil {
				return nil, err
			}
			if handled {
				continue
			}
			vs = append(vs, v)
			continue
		}
		v, err := r.readForm(ch)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
}

// readWrapped reads the next form and wraps it as (sym form), implementing
// the simple reader-macro expansions 'x -> (quote x) and @x -> (deref x).
func (r *Reader) readWrapped(sym string) (value.Value, error) {
	inner, err := r.ReadOne()
	if err != nil {
		if err == io.EOF {
			return nil, r.errorf(r.offset, "unexpected end of input after reader macro")
		}
		return nil, err
	}
	return value.NewList(value.NewSymbol(sym), inner), nil
}

// readMeta implements ^m x: reads the metadata form and the target form,
// discards the metadata and returns the target (spec.md §4.1: metadata is
// "read and discarded by the core unless the downstream analyzer consumes
// it" — the core has no analyzer, so it always discards it here).
func (r *Reader) readMeta() (value.Value, error) {
	if _, err := r.ReadOne(); err != nil { // metadata form, discarded
		return nil, err
	}
	target, err := r.ReadOne()
	if err != nil {
		if err == io.EOF {
			return nil, r.errorf(r.offset, "unexpected end of input after metadata")
		}
		return nil, err
	}
	return target, nil
}
