package ring

import (
	"errors"
	"math/big"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNotInvertible   = errors.New("element is not invertible")
	ErrInexactDivision = errors.New("division is not exact")
)

/*
Ring is a commutative coefficient ring. Operations live on the ring object and
elements are plain values of type E; every operation returns a fresh value and
never mutates its operands, so elements may be shared freely once handed to a
ring.
*/
type Ring[E any] interface {
	Zero() E
	One() E
	FromInt64(v int64) E

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E

	// Pow computes a^n. A negative n requires a to be a unit and fails with
	// ErrNotInvertible otherwise.
	Pow(a E, n int64) (E, error)

	IsZero(a E) bool
	IsOne(a E) bool
	Equal(a, b E) bool

	IsUnit(a E) bool
	Inverse(a E) (E, error)
	// ExactDiv computes a/b, failing with ErrInexactDivision when b does not
	// divide a, and with ErrDivisionByZero when b is zero.
	ExactDiv(a, b E) (E, error)

	// CanonicalUnit returns the unit u such that a/u is the chosen
	// representative of a's associate class (1 for zero).
	CanonicalUnit(a E) E

	Characteristic() *big.Int
	String(a E) string
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func powSquareMul[E any](r Ring[E], base E, exp uint64) E {
	x := r.One()
	for exp > 0 {
		if exp%2 == 1 {
			x = r.Mul(x, base)
		}

		base = r.Mul(base, base)
		exp /= 2
	}

	return x
}

// powSigned implements Ring.Pow on top of Inverse for the negative half.
func powSigned[E any](r Ring[E], a E, n int64) (E, error) {
	if n >= 0 {
		return powSquareMul(r, a, uint64(n)), nil
	}

	inv, err := r.Inverse(a)
	if err != nil {
		return r.Zero(), err
	}

	return powSquareMul(r, inv, uint64(-n)), nil
}
