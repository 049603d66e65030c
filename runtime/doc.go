// Package runtime implements the macro runtime function library (spec.md
// §4.2): a flat registry of pure functions over value.Value, used as the
// environment macro bodies compile against. Functions never perform I/O.
//
// Each registered name may have more than one Overload; Call resolves the
// right one by arity-and-type matching, the same table-driven dispatch
// shape the teacher uses for opcode tables in asm/parser.go, generalized
// from a fixed opcode set to an open, by-name function registry.
package runtime
