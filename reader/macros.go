package reader

import (
	"io"

	"github.com/db47h/cljr/value"
)

// readHash dispatches the forms introduced by a leading '#', which the
// caller has already consumed. It reports handled=true when the dispatched
// form produces no value of its own (#_ elision) so the caller's read loop
// can simply continue.
func (r *Reader) readHash() (handled bool, v value.Value, err error) {
	start := r.offset - 1
	ch, err := r.peekRune()
	if err == io.EOF {
		return false, nil, r.errorf(start, "unexpected end of input after #")
	}
	if err != nil {
		return false, nil, err
	}
	switch ch {
	case '_':
		r.nextRune()
		if err := r.skipIgnorable(); err != nil && err != io.EOF {
			return false, nil, err
		}
		nch, err := r.peekRune()
		if err == io.EOF {
			return false, nil, r.errorf(start, "#_ with nothing to discard")
		}
		if err != nil {
			return false, nil, err
		}
		if nch == '#' {
			r.nextRune()
			if _, _, err := r.readHash(); err != nil {
				return false, nil, err
			}
			return true, nil, nil
		}
		if _, err := r.readForm(nch); err != nil {
			return false, nil, err
		}
		return true, nil, nil
	case '{':
		r.nextRune()
		vs, err := r.readUntil('}', "set")
		if err != nil {
			return false, nil, err
		}
		return false, value.NewSet(vs...), nil
	case '"':
		s, err := r.readString()
		if err != nil {
			return false, nil, err
		}
		re, err := value.NewRegex(string(s.(value.String)))
		if err != nil {
			return false, nil, r.errorf(start, "invalid regex literal: %v", err)
		}
		return false, re, nil
	default:
		return false, nil, r.errorf(start, "unsupported dispatch macro #%c", ch)
	}
}

// readSyntaxQuote reads the form following a backquote and wraps it as
// (syntax-quote form); the full template-substitution semantics (auto-gensym,
// ~ and ~@ splicing) are applied later by the interpreter (package interp)
// when it evaluates the form, not by the reader —
// the reader's job ends at producing the literal (syntax-quote form) shape.
func (r *Reader) readSyntaxQuote() (value.Value, error) {
	inner, err := r.ReadOne()
	if err != nil {
		if err == io.EOF {
			return nil, r.errorf(r.offset, "unexpected end of input after `")
		}
		return nil, err
	}
	return value.NewList(value.NewSymbol("syntax-quote"), inner), nil
}

// readUnquote implements ~x -> (unquote x) and ~@x -> (unquote-splicing x).
func (r *Reader) readUnquote() (value.Value, error) {
	sym := "unquote"
	if ch, err := r.peekRune(); err == nil && ch == '@' {
		r.nextRune()
		sym = "unquote-splicing"
	}
	inner, err := r.ReadOne()
	if err != nil {
		if err == io.EOF {
			return nil, r.errorf(r.offset, "unexpected end of input after ~")
		}
		return nil, err
	}
	return value.NewList(value.NewSymbol(sym), inner), nil
}
