// Package reader implements the streaming reader (spec.md §4.1): it
// converts source text into value.Value forms one at a time (ReadOne) or in
// bulk to end-of-input (ReadAll), preserving source order.
//
// The reader never produces a partially formed value on failure: a
// malformed top-level form surfaces a *xerr.ReaderErr carrying the byte
// offset (into the input as received) at which the problem was detected,
// and ReadOne stops there. ReadAll instead skips past the malformed form and
// keeps going, collecting every error it finds in one pass (useful for a
// front end that wants to report everything wrong with a file at once); on
// return it returns xerr.ReaderErrs if it collected one or more errors.
//
// Supported reader macros: ' (quote), ` (syntax-quote), ~ (unquote), ~@
// (unquote-splicing), @ (deref), ^ (metadata, read and discarded), #_
// (elide next form), #{ } (set), #"..." (regex pattern, preserved as a
// value.Regex). See forms.go and macros.go.
package reader
