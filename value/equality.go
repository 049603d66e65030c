package value

// Eq is the nil-safe entry point for value equality used throughout the
// runtime, interpreter and reader round-trip tests: two Go nils are equal,
// a Go nil is never equal to a non-nil Value (use value.Nil for the Lisp
// nil atom, which compares through the normal Equal path).
func Eq(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
