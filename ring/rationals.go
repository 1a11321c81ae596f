package ring

import "math/big"

// Rationals is the field of arbitrary-precision rationals with *big.Rat
// elements.
type Rationals struct{}

// NewRationals returns the field of rationals.
func NewRationals() Rationals { return Rationals{} }

func (Rationals) Zero() *big.Rat             { return new(big.Rat) }
func (Rationals) One() *big.Rat              { return big.NewRat(1, 1) }
func (Rationals) FromInt64(v int64) *big.Rat { return big.NewRat(v, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (q Rationals) Pow(a *big.Rat, n int64) (*big.Rat, error) {
	return powSigned[*big.Rat](q, a, n)
}

func (Rationals) IsZero(a *big.Rat) bool   { return a.Sign() == 0 }
func (Rationals) IsOne(a *big.Rat) bool    { return a.Cmp(ratOne) == 0 }
func (Rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (Rationals) IsUnit(a *big.Rat) bool { return a.Sign() != 0 }

func (Rationals) Inverse(a *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 {
		return new(big.Rat), ErrNotInvertible
	}

	return new(big.Rat).Inv(a), nil
}

func (Rationals) ExactDiv(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return new(big.Rat), ErrDivisionByZero
	}

	return new(big.Rat).Quo(a, b), nil
}

// CanonicalUnit of a nonzero rational is the rational itself, so canonical
// associates are exactly 1.
func (Rationals) CanonicalUnit(a *big.Rat) *big.Rat {
	if a.Sign() == 0 {
		return big.NewRat(1, 1)
	}

	return new(big.Rat).Set(a)
}

func (Rationals) Characteristic() *big.Int { return new(big.Int) }

func (Rationals) String(a *big.Rat) string { return a.RatString() }

var ratOne = big.NewRat(1, 1)

var _ Ring[*big.Rat] = Rationals{}
