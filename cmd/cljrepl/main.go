package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/cljr/expander"
	"github.com/db47h/cljr/internal/clog"
	"github.com/db47h/cljr/internal/errwriter"
	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/interp"
	"github.com/db47h/cljr/reader"
	"github.com/db47h/cljr/value"
)

// fileList implements flag.Value, collecting repeated -with flags in the
// order given on the command line.
type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// session carries the shared state one line-at-a-time run accumulates:
// macros registered via defmacro and bindings introduced via def both
// persist across successive top-level forms (spec.md §1).
type session struct {
	i   *interp.Interp
	e   *expander.Expander
	env *interp.Env
}

func newSession() *session {
	i := interp.New()
	return &session{i: i, e: expander.New(i), env: interp.NewEnv(nil)}
}

// evalTopLevel expands then evaluates one top-level form read from the
// input, returning its value.
func (s *session) evalTopLevel(form value.Value) (value.Value, error) {
	expanded, err := s.e.Expand(form)
	if err != nil {
		return nil, errors.Wrap(err, "expand")
	}
	v, err := s.i.Eval(s.env, expanded)
	if err != nil {
		return nil, errors.Wrap(err, "eval")
	}
	return v, nil
}

// loadFile reads and evaluates every top-level form in path, in source
// order, stopping at the first error.
func (s *session) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	return s.loadSource(path, string(data))
}

// loadSource evaluates every top-level form of source, in order, stopping
// at the first error. name annotates reader error messages.
func (s *session) loadSource(name, source string) error {
	rd := reader.New(strings.NewReader(source), name)
	for {
		form, err := rd.ReadOne()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}
		if _, err := s.evalTopLevel(form); err != nil {
			return errors.Wrapf(err, "evaluating %s", name)
		}
	}
}

// incomplete reports whether err indicates the input read so far is a
// truncated prefix of a form (an unterminated list/vector/map/string)
// rather than a genuine syntax error — the signal that the REPL should
// read another line and retry instead of reporting failure.
func incomplete(err error) bool {
	re, ok := err.(*xerr.ReaderErr)
	return ok && strings.HasPrefix(re.Msg, "unterminated")
}

func main() {
	var withFiles fileList
	var roots rootList
	var namespaces nsList
	flagSet := newFlagSet(&withFiles, &roots, &namespaces)
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log := clog.New(os.Stderr)
	s := newSession()

	for _, f := range withFiles {
		if err := s.loadFile(f); err != nil {
			log.Error().Err(err).Str("file", f).Msg("failed to load")
			os.Exit(1)
		}
	}

	if len(namespaces) > 0 {
		result, err := resolveNamespaces(namespaces, roots)
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve namespaces")
			os.Exit(1)
		}
		for _, ref := range result.Unresolved {
			log.Warn().Str("file", ref.Path).Str("namespace", ref.NS).Msg("unresolved require")
		}
		for _, r := range result.Ordered {
			if err := s.loadSource(r.Path, r.Source); err != nil {
				log.Error().Err(err).Str("file", r.Path).Msg("failed to load")
				os.Exit(1)
			}
		}
	}

	out := errwriter.New(os.Stdout)
	runREPL(s, os.Stdin, out)
	if out.Err != nil {
		log.Error().Err(out.Err).Msg("output")
		os.Exit(1)
	}
}

// runREPL implements the line-at-a-time loop: input lines accumulate into
// buf until the reader can produce a complete form or reports a genuine
// syntax error; a blank buffer and a prompt are presented after each
// top-level result.
func runREPL(s *session, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder
	fmt.Fprint(out, "cljr=> ")
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')

		form, err := reader.New(strings.NewReader(buf.String()), "repl").ReadOne()
		switch {
		case err == io.EOF:
			// blank or all-comment input so far; keep prompting
			buf.Reset()
			fmt.Fprint(out, "cljr=> ")
		case incomplete(err):
			fmt.Fprint(out, "cljr.. ")
			continue
		case err != nil:
			fmt.Fprintf(out, "reader error: %v\n", err)
			buf.Reset()
			fmt.Fprint(out, "cljr=> ")
		default:
			buf.Reset()
			v, err := s.evalTopLevel(form)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			} else {
				fmt.Fprintf(out, "%v\n", v)
			}
			fmt.Fprint(out, "cljr=> ")
		}
	}
	fmt.Fprintln(out)
}
