package sizefmt

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/sizefmt/integer"
	"github.com/calebcase/sizefmt/prefix"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("sizefmt")

// ErrBaseTypeTooSmall is returned when the prefix system's size cannot
// be represented in the formatter's base type.
var ErrBaseTypeTooSmall = Error.New("prefix size is too large for number type")

// Formatter formats a magnitude using a prefix system and a decimal
// separator. It is immutable: every call recomputes its output from
// scratch, so a formatter may be formatted repeatedly, at different
// precisions, and concurrently.
type Formatter[T integer.Base[T]] struct {
	num       T
	system    prefix.System
	separator Separator
}

// New returns a formatter for num using the given prefix system and
// separator. The system must come from the prefix package's
// constructors.
func New[T integer.Base[T]](num T, system prefix.System, separator Separator) Formatter[T] {
	return Formatter[T]{
		num:       num,
		system:    system,
		separator: separator,
	}
}

// SI returns a formatter for num using SI prefixes and a point
// separator.
func SI(num uint64) Formatter[integer.Uint[uint64]] {
	return New(integer.NewUint(num), prefix.SI, Point)
}

// Binary returns a formatter for num using binary prefixes and a point
// separator.
func Binary(num uint64) Formatter[integer.Uint[uint64]] {
	return New(integer.NewUint(num), prefix.Binary, Point)
}

// intLog returns the number of times num can be divided by size before
// falling below it, capped at max.
func intLog[T integer.Base[T]](num, size T, max int) int {
	divisions := 0

	for num.Cmp(size) >= 0 && divisions < max {
		num, _ = num.QuoRem(size)
		divisions++
	}

	return divisions
}
