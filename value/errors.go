package value

import "github.com/pkg/errors"

var (
	errInvoke      = errors.New("keyword invoke: expected 1 or 2 arguments")
	errEmptySeq    = errors.New("value: called on empty seq")
	errIndexRange  = errors.New("value: index out of range")
	errOddMap      = errors.New("value: map literal requires an even number of forms")
)
