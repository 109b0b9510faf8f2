package integer

import "lukechampine.com/uint128"

// U128 is a Base over unsigned 128-bit integers. Mul and Pow panic if
// the result overflows 128 bits.
type U128 struct {
	u uint128.Uint128
}

// NewU128 returns a U128 wrapping u.
func NewU128(u uint128.Uint128) U128 {
	return U128{u: u}
}

// U128From64 returns v as a U128.
func U128From64(v uint64) U128 {
	return U128{u: uint128.From64(v)}
}

// Uint128 returns the wrapped integer.
func (u U128) Uint128() uint128.Uint128 {
	return u.u
}

// FromUint64 returns v as a U128. Every uint64 is representable.
func (u U128) FromUint64(v uint64) (U128, bool) {
	return U128From64(v), true
}

// IsZero reports whether the value is zero.
func (u U128) IsZero() bool {
	return u.u.IsZero()
}

// Cmp compares u and o and returns -1 if u < o, 0 if u == o, and +1 if
// u > o.
func (u U128) Cmp(o U128) int {
	return u.u.Cmp(o.u)
}

// Mul returns u * o.
func (u U128) Mul(o U128) U128 {
	return U128{u: u.u.Mul(o.u)}
}

// QuoRem returns the quotient and remainder of u / o.
func (u U128) QuoRem(o U128) (q, r U128) {
	qu, ru := u.u.QuoRem(o.u)

	return U128{u: qu}, U128{u: ru}
}

// Pow returns u raised to the power n.
func (u U128) Pow(n uint) U128 {
	r := uint128.From64(1)
	for i := uint(0); i < n; i++ {
		r = r.Mul(u.u)
	}

	return U128{u: r}
}

// String returns the value in decimal.
func (u U128) String() string {
	return u.u.String()
}
