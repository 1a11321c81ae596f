package ring

import "math/big"

// Integers is the ring of arbitrary-precision integers with *big.Int elements.
type Integers struct{}

// NewIntegers returns the ring of integers.
func NewIntegers() Integers { return Integers{} }

func (Integers) Zero() *big.Int             { return new(big.Int) }
func (Integers) One() *big.Int              { return big.NewInt(1) }
func (Integers) FromInt64(v int64) *big.Int { return big.NewInt(v) }

func (Integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (Integers) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (Integers) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (Integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (z Integers) Pow(a *big.Int, n int64) (*big.Int, error) {
	return powSigned[*big.Int](z, a, n)
}

func (Integers) IsZero(a *big.Int) bool   { return a.Sign() == 0 }
func (Integers) IsOne(a *big.Int) bool    { return a.Cmp(bigOne) == 0 }
func (Integers) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

// IsUnit reports whether a is 1 or -1, the only invertible integers.
func (Integers) IsUnit(a *big.Int) bool { return a.CmpAbs(bigOne) == 0 }

func (z Integers) Inverse(a *big.Int) (*big.Int, error) {
	if !z.IsUnit(a) {
		return new(big.Int), ErrNotInvertible
	}

	return new(big.Int).Set(a), nil
}

func (Integers) ExactDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return new(big.Int), ErrDivisionByZero
	}

	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return new(big.Int), ErrInexactDivision
	}

	return q, nil
}

// CanonicalUnit is the sign of a, so the canonical associate has a positive
// leading value.
func (Integers) CanonicalUnit(a *big.Int) *big.Int {
	if a.Sign() < 0 {
		return big.NewInt(-1)
	}

	return big.NewInt(1)
}

func (Integers) Characteristic() *big.Int { return new(big.Int) }

func (Integers) String(a *big.Int) string { return a.String() }

var bigOne = big.NewInt(1)

var _ Ring[*big.Int] = Integers{}
