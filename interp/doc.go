// Package interp implements the macro tree-walking interpreter (spec.md
// §4.3): evaluation of C1 values against a lexical Env, the special forms
// quote/if/do/let/fn/recur/syntax-quote, and the application rules that let
// an unresolved head symbol fall back to a code-literal list.
package interp
