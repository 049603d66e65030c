// Package expander implements the macro expander (spec.md §4.4): it walks
// a tree of C1 values, expanding macro calls to a fixed point at each node
// (outside-in) before recursing into children, maintaining a registry of
// built-in and user-defined (`defmacro`) macros.
//
// Syntax-quote's template transform (auto-gensym substitution, `~`/`~@`
// splicing) is implemented directly by package interp as part of
// evaluating `(syntax-quote x)` rather than as a separate rewrite pass
// here — see DESIGN.md. A `defmacro` body is therefore stored and later
// evaluated exactly as written; any syntax-quote forms inside it are
// transformed when the interpreter evaluates that body, not beforehand.
package expander
