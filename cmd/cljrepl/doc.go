// Command cljrepl is a minimal line-at-a-time interactive front end over
// the reader, expander, and macro interpreter. It is not the full REPL I/O
// shell or an nREPL server (no readline editing, no network listener);
// input is read a whole line at a time via bufio.Scanner.
//
// Each line is accumulated until the reader can produce a complete form
// (unbalanced parens simply cause the next line to be appended), then the
// form is macro-expanded and evaluated against a session-wide environment
// that persists across inputs, so later lines can refer to earlier
// `defmacro`s and `let`-style definitions carried forward via `def`.
package main
