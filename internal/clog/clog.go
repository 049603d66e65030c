// Package clog provides the zerolog logger used by cmd/cljrepl for advisory
// diagnostics (unresolved require warnings, cycle reports). Core packages
// (value, reader, interp, expander, resolver) never import this package —
// they are pure and report failures through returned errors only.
package clog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a human-readable console logger writing to w. cmd/cljrepl uses
// it for the handful of non-fatal messages the core surfaces as data rather
// than errors (resolver advisories, REPL session notices).
func New(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: !isTerminal(w)}
	return zerolog.New(cw).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
