package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// BLS377 is the scalar field of the BLS12-377 curve, with fr.Element values
// in Montgomery form.
type BLS377 struct{}

// NewBLS377 returns the BLS12-377 scalar field.
func NewBLS377() BLS377 { return BLS377{} }

func (BLS377) Zero() fr.Element { return fr.Element{} }

func (BLS377) One() fr.Element {
	var e fr.Element
	e.SetOne()

	return e
}

func (BLS377) FromInt64(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)

	return e
}

func (BLS377) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)

	return z
}

func (BLS377) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)

	return z
}

func (BLS377) Neg(a fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&a)

	return z
}

func (BLS377) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)

	return z
}

func (f BLS377) Pow(a fr.Element, n int64) (fr.Element, error) {
	if n < 0 {
		inv, err := f.Inverse(a)
		if err != nil {
			return fr.Element{}, err
		}

		a, n = inv, -n
	}

	var z fr.Element
	z.Exp(a, big.NewInt(n))

	return z, nil
}

func (BLS377) IsZero(a fr.Element) bool   { return a.IsZero() }
func (BLS377) IsOne(a fr.Element) bool    { return a.IsOne() }
func (BLS377) Equal(a, b fr.Element) bool { return a.Equal(&b) }

func (BLS377) IsUnit(a fr.Element) bool { return !a.IsZero() }

func (BLS377) Inverse(a fr.Element) (fr.Element, error) {
	if a.IsZero() {
		return fr.Element{}, ErrNotInvertible
	}

	var z fr.Element
	z.Inverse(&a)

	return z, nil
}

func (f BLS377) ExactDiv(a, b fr.Element) (fr.Element, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return fr.Element{}, ErrDivisionByZero
	}

	return f.Mul(a, inv), nil
}

func (f BLS377) CanonicalUnit(a fr.Element) fr.Element {
	if a.IsZero() {
		return f.One()
	}

	return a
}

func (BLS377) Characteristic() *big.Int { return fr.Modulus() }

func (BLS377) String(a fr.Element) string { return a.String() }

var _ Ring[fr.Element] = BLS377{}
