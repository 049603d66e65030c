// Package errwriter wraps an io.Writer to latch the first write error
// instead of returning a fresh one on every subsequent call — useful for
// REPL output where callers print a result, then a prompt, then the next
// result, and only care about the first failure once the terminal or pipe
// is gone.
package errwriter

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps w, remembering the first error seen. Every Write after that
// returns the same error without touching w again.
type Writer struct {
	w   io.Writer
	Err error
}

// New returns a Writer wrapping w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}
