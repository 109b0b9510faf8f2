package ratio

import (
	"unicode/utf8"

	"github.com/calebcase/sizefmt/integer"
)

// Ratio is an exact rational number. Num and Den are never mutated:
// every operation returns a new value.
type Ratio[T integer.Base[T]] struct {
	Num T
	Den T
}

// New returns the ratio num/den. It panics if den is zero.
func New[T integer.Base[T]](num, den T) Ratio[T] {
	if den.IsZero() {
		panic("denominator is zero")
	}

	return Ratio[T]{Num: num, Den: den}
}

// Trunc returns the integer part of the ratio.
func (r Ratio[T]) Trunc() T {
	q, _ := r.Num.QuoRem(r.Den)

	return q
}

// Fract returns the fractional part of the ratio. The result's
// numerator is strictly less than its denominator.
func (r Ratio[T]) Fract() Ratio[T] {
	_, rem := r.Num.QuoRem(r.Den)

	return Ratio[T]{Num: rem, Den: r.Den}
}

// IsInteger reports whether the denominator evenly divides the
// numerator.
func (r Ratio[T]) IsInteger() bool {
	_, rem := r.Num.QuoRem(r.Den)

	return rem.IsZero()
}

// Mul returns the ratio scaled by x.
func (r Ratio[T]) Mul(x T) Ratio[T] {
	return Ratio[T]{Num: r.Num.Mul(x), Den: r.Den}
}

// String returns the ratio as "num/den".
func (r Ratio[T]) String() string {
	return r.Num.String() + "/" + r.Den.String()
}

// Append appends the ratio to dst as a decimal number with exactly prec
// fractional digits and returns the extended buffer. The integer part
// comes first; if prec is greater than zero, sep and then prec digits
// follow. Digits are truncated, never rounded. Once the running
// remainder reaches zero the remaining positions are filled with '0'.
func (r Ratio[T]) Append(dst []byte, sep rune, prec int) []byte {
	dst = append(dst, r.Trunc().String()...)

	if prec <= 0 {
		return dst
	}

	dst = utf8.AppendRune(dst, sep)

	// The decimal base fits every supported width (8 bits and up).
	ten, _ := r.Num.FromUint64(10)

	frac := r.Fract()
	for i := 0; i < prec; i++ {
		if frac.IsInteger() {
			dst = append(dst, '0')

			continue
		}

		frac = frac.Mul(ten)
		dst = append(dst, frac.Trunc().String()...)
		frac = frac.Fract()
	}

	return dst
}
