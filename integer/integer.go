// Package integer provides the numeric capability set used by the
// formatting pipeline along with implementations for machine unsigned
// integers, 128-bit integers, and arbitrary precision integers.
package integer

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Base is the capability set a magnitude type must provide: values are
// ordered, divisible with remainder, constructible from small unsigned
// constants, and exponentiable by a small unsigned exponent. All
// operations are exact within the type's representable range.
//
// FromUint64 acts as a factory: it builds a new value of the receiver's
// type from v and reports whether v is representable in that type. The
// receiver's own value is ignored.
type Base[T any] interface {
	FromUint64(v uint64) (_ T, ok bool)
	IsZero() bool
	Cmp(o T) int
	Mul(o T) T
	QuoRem(o T) (q, r T)
	Pow(n uint) T
	String() string
}

// Uint is a Base over any builtin unsigned integer type. Arithmetic
// wraps on overflow exactly as the underlying type does.
type Uint[T constraints.Unsigned] struct {
	v T
}

// NewUint returns a Uint wrapping v.
func NewUint[T constraints.Unsigned](v T) Uint[T] {
	return Uint[T]{v: v}
}

// Value returns the wrapped integer.
func (u Uint[T]) Value() T {
	return u.v
}

// FromUint64 returns v as a Uint and reports whether v is representable
// in T.
func (u Uint[T]) FromUint64(v uint64) (Uint[T], bool) {
	c := T(v)

	return Uint[T]{v: c}, uint64(c) == v
}

// IsZero reports whether the value is zero.
func (u Uint[T]) IsZero() bool {
	return u.v == 0
}

// Cmp compares u and o and returns -1 if u < o, 0 if u == o, and +1 if
// u > o.
func (u Uint[T]) Cmp(o Uint[T]) int {
	switch {
	case u.v < o.v:
		return -1
	case u.v > o.v:
		return 1
	}

	return 0
}

// Mul returns u * o.
func (u Uint[T]) Mul(o Uint[T]) Uint[T] {
	return Uint[T]{v: u.v * o.v}
}

// QuoRem returns the quotient and remainder of u / o.
func (u Uint[T]) QuoRem(o Uint[T]) (q, r Uint[T]) {
	return Uint[T]{v: u.v / o.v}, Uint[T]{v: u.v % o.v}
}

// Pow returns u raised to the power n.
func (u Uint[T]) Pow(n uint) Uint[T] {
	var r T = 1
	for i := uint(0); i < n; i++ {
		r *= u.v
	}

	return Uint[T]{v: r}
}

// String returns the value in decimal.
func (u Uint[T]) String() string {
	return strconv.FormatUint(uint64(u.v), 10)
}
