package integer

import "math/big"

var bigZero = new(big.Int)

// Big is a Base with arbitrary precision. The zero value represents
// zero and is ready to use. Values are immutable: operations never
// modify their operands and constructors copy their input.
type Big struct {
	i *big.Int
}

// NewBig returns a Big holding a copy of i. A nil i is treated as zero.
// It panics if i is negative.
func NewBig(i *big.Int) Big {
	if i == nil {
		return Big{}
	}
	if i.Sign() < 0 {
		panic("negative magnitude")
	}

	return Big{i: new(big.Int).Set(i)}
}

// BigFromUint64 returns v as a Big.
func BigFromUint64(v uint64) Big {
	return Big{i: new(big.Int).SetUint64(v)}
}

// Int returns a copy of the value.
func (b Big) Int() *big.Int {
	return new(big.Int).Set(b.val())
}

func (b Big) val() *big.Int {
	if b.i == nil {
		return bigZero
	}

	return b.i
}

// FromUint64 returns v as a Big. Every uint64 is representable.
func (b Big) FromUint64(v uint64) (Big, bool) {
	return BigFromUint64(v), true
}

// IsZero reports whether the value is zero.
func (b Big) IsZero() bool {
	return b.val().Sign() == 0
}

// Cmp compares b and o and returns -1 if b < o, 0 if b == o, and +1 if
// b > o.
func (b Big) Cmp(o Big) int {
	return b.val().Cmp(o.val())
}

// Mul returns b * o.
func (b Big) Mul(o Big) Big {
	return Big{i: new(big.Int).Mul(b.val(), o.val())}
}

// QuoRem returns the quotient and remainder of b / o.
func (b Big) QuoRem(o Big) (q, r Big) {
	qi, ri := new(big.Int).QuoRem(b.val(), o.val(), new(big.Int))

	return Big{i: qi}, Big{i: ri}
}

// Pow returns b raised to the power n.
func (b Big) Pow(n uint) Big {
	return Big{i: new(big.Int).Exp(b.val(), new(big.Int).SetUint64(uint64(n)), nil)}
}

// String returns the value in decimal.
func (b Big) String() string {
	return b.val().String()
}
