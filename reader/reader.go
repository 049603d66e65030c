package reader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/value"
)

const eof = -1

// Reader converts a character stream into value.Value forms. It is not
// safe for concurrent use.
type Reader struct {
	rd       *bufio.Reader
	filename string
	offset   int

	peeked  rune
	hasPeek bool
}

// New wraps r as a Reader. filename is used only to annotate error
// messages; it may be empty.
func New(r io.Reader, filename string) *Reader {
	return &Reader{rd: bufio.NewReader(r), filename: filename}
}

func (r *Reader) errorf(offset int, format string, args ...interface{}) *xerr.ReaderErr {
	return &xerr.ReaderErr{Filename: r.filename, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// ReadOne reads exactly one top-level form. It returns io.EOF (unwrapped,
// so callers can compare with errors.Is) when the input has no more forms
// after skipping whitespace and comments.
func (r *Reader) ReadOne() (value.Value, error) {
	for {
		if err := r.skipIgnorable(); err != nil {
			return nil, err
		}
		ch, err := r.peekRune()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
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
			return v, nil
		}
		return r.readForm(ch)
	}
}

// ReadAll reads every top-level form to end-of-input, preserving source
// order. On partial failure it returns as many forms as it could read
// together with an xerr.ReaderErrs describing every malformed form
// encountered; a single well-formed input returns a nil error.
func (r *Reader) ReadAll() ([]value.Value, error) {
	var forms []value.Value
	var errs xerr.ReaderErrs
	for {
		v, err := r.ReadOne()
		if err == io.EOF {
			break
		}
		if err != nil {
			if re, ok := err.(*xerr.ReaderErr); ok {
				errs = append(errs, re)
			} else if res, ok := err.(xerr.ReaderErrs); ok {
				errs = append(errs, res...)
			} else {
				errs = append(errs, &xerr.ReaderErr{Filename: r.filename, Offset: r.offset, Msg: err.Error()})
			}
			if !r.resync() {
				break
			}
			continue
		}
		forms = append(forms, v)
	}
	if len(errs) > 0 {
		return forms, errs
	}
	return forms, nil
}

// resync skips forward past the rest of the current (malformed) top-level
// form so ReadAll can keep going after an error. It is a best-effort
// heuristic: skip to the next whitespace run at paren-depth 0.
func (r *Reader) resync() bool {
	depth := 0
	for {
		ch, err := r.nextRune()
		if err == io.EOF {
			return false
		}
		if err != nil {
			return false
		}
		switch ch {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ' ', '\t', '\n', '\r', ',':
			if depth == 0 {
				return true
			}
		}
	}
}

// --- low-level rune stream ---

func (r *Reader) nextRune() (rune, error) {
	if r.hasPeek {
		r.hasPeek = false
		ch := r.peeked
		if ch != eof {
			r.offset += runeLen(ch)
		}
		return ch, nil
	}
	ch, size, err := r.rd.ReadRune()
	if err != nil {
		return eof, err
	}
	r.offset += size
	return ch, nil
}

func (r *Reader) peekRune() (rune, error) {
	if r.hasPeek {
		if r.peeked == eof {
			return eof, io.EOF
		}
		return r.peeked, nil
	}
	ch, _, err := r.rd.ReadRune()
	if err != nil {
		r.peeked = eof
		r.hasPeek = true
		return eof, err
	}
	r.peeked = ch
	r.hasPeek = true
	return ch, nil
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ','
}

func isDelimiter(ch rune) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}', '"', ';', '\'', '`', '~', '^', '@':
		return true
	}
	return isWhitespace(ch)
}

// skipIgnorable consumes whitespace, commas and ;-comments.
func (r *Reader) skipIgnorable() error {
	for {
		ch, err := r.peekRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case isWhitespace(ch):
			r.nextRune()
		case ch == ';':
			for {
				c, err := r.nextRune()
				if err == io.EOF || c == '\n' {
					break
				}
				if err != nil {
					return err
				}
			}
		default:
			return nil
		}
	}
}
