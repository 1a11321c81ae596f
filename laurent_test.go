package laurent

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-laurent/ring"
)

func intRing() *Ring[*big.Int] {
	return NewRing[*big.Int](ring.NewIntegers(), "x")
}

func ratRing() *Ring[*big.Rat] {
	return NewRing[*big.Rat](ring.NewRationals(), "x")
}

func fieldRing(t *testing.T) *Ring[uint64] {
	t.Helper()

	f, err := ring.NewPrimeField(157)
	if err != nil {
		t.Fatal(err)
	}

	return NewRing[uint64](f, "x")
}

func mustParse[E any](t *testing.T, r *Ring[E], s string) *Polynomial[E] {
	t.Helper()

	p, err := Parse(r, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}

	return p
}

func TestRepresentation(t *testing.T) {
	a := assert.New(t)
	r := intRing()

	// p = x^-2 + 3x + 5
	p := mustParse(t, r, "x^-2 + 3*x + 5")

	td, ok := p.TrailingDegree()
	a.True(ok)
	a.Equal(-2, td)

	ld, ok := p.LeadingDegree()
	a.True(ok)
	a.Equal(1, ld)

	a.Equal(int64(5), p.Coeff(0).Int64())
	a.Equal(int64(3), p.Coeff(1).Int64())
	a.Equal(int64(1), p.Coeff(-2).Int64())
	a.Equal(int64(0), p.Coeff(-100).Int64())

	lo, hi, ok := p.DegreeRange()
	a.True(ok)
	a.Equal(-2, lo)
	a.Equal(1, hi)

	a.Equal("3*x + 5 + x^-2", p.String())
}

func TestZeroValueQueries(t *testing.T) {
	a := assert.New(t)
	r := intRing()
	zero := r.Zero()

	a.True(zero.IsZero())
	a.Equal(0, zero.MinDeg())

	_, ok := zero.TrailingDegree()
	a.False(ok)

	_, ok = zero.LeadingDegree()
	a.False(ok)

	_, _, ok = zero.DegreeRange()
	a.False(ok)

	a.Equal("0", zero.String())
}

func TestSetCoeff(t *testing.T) {
	a := assert.New(t)
	r := intRing()

	t.Run("growsDownward", func(t *testing.T) {
		p := mustParse(t, r, "x + 2")
		p.SetCoeff(-3, big.NewInt(7))

		a.Equal(-3, p.MinDeg())
		a.Equal(int64(7), p.Coeff(-3).Int64())
		a.Equal(int64(2), p.Coeff(0).Int64())
		a.Equal(int64(1), p.Coeff(1).Int64())
	})

	t.Run("withinRange", func(t *testing.T) {
		p := mustParse(t, r, "x^-1 + 1")
		p.SetCoeff(0, big.NewInt(9))

		a.Equal(int64(9), p.Coeff(0).Int64())
		a.Equal(-1, p.MinDeg())
	})

	t.Run("clearToZero", func(t *testing.T) {
		p := r.Monomial(big.NewInt(4), -2)
		p.SetCoeff(-2, new(big.Int))

		a.True(p.IsZero())
		a.Equal(0, p.MinDeg())
	})
}

func TestPredicates(t *testing.T) {
	a := assert.New(t)
	r := intRing()

	a.True(r.One().IsOne())
	a.True(r.Gen().IsGen())
	a.True(r.Gen().IsUnit()) // the generator is a unit here
	a.False(r.Zero().IsOne())

	t.Run("isGenScansTrueDegrees", func(t *testing.T) {
		// x stored non-canonically as x^2 * x^-1
		p := r.Gen().Mul(r.Gen()).Mul(r.Monomial(big.NewInt(1), -1))
		a.True(p.IsGen())
	})

	t.Run("isOneIsRepresentationSensitive", func(t *testing.T) {
		p := r.Gen().Mul(r.Monomial(big.NewInt(1), -1))
		a.False(p.IsOne()) // raw representation x * x^-1
		a.True(p.Equal(r.One()))
	})
}

func TestEqualAcrossAlignment(t *testing.T) {
	a := assert.New(t)
	r := intRing()

	p := mustParse(t, r, "2*x^-1 + 3")
	q := mustParse(t, r, "3 + 2*x^-1")

	a.True(p.Equal(q))
	a.False(p.Equal(r.One()))

	// same value, different mindeg offsets
	shifted := p.Mul(r.Monomial(big.NewInt(1), 2)).Mul(r.Monomial(big.NewInt(1), -2))
	a.True(p.Equal(shifted))
}

func TestMismatchedRings(t *testing.T) {
	a := assert.New(t)

	r1 := intRing()
	r2 := intRing()

	p := r1.One()
	q := r2.One()

	a.Panics(func() { p.Add(q) })

	_, _, _, err := p.GcdExt(q)
	a.ErrorIs(err, ErrMismatchedRings)

	_, err = p.ExactDiv(q, true)
	a.ErrorIs(err, ErrMismatchedRings)
}

func TestCopyIsDeep(t *testing.T) {
	a := assert.New(t)
	r := intRing()

	p := mustParse(t, r, "x + 1")
	q := p.Copy()
	q.SetCoeff(0, big.NewInt(5))

	a.Equal(int64(1), p.Coeff(0).Int64())
	a.Equal(int64(5), q.Coeff(0).Int64())
}

func TestString(t *testing.T) {
	a := assert.New(t)
	r := intRing()

	cases := []struct {
		in, out string
	}{
		{"x", "x"},
		{"1", "1"},
		{"-1", "-1"},
		{"x^2 + x", "x^2 + x"},
		{"-x^2 + 2", "-x^2 + 2"},
		{"2*x^-1", "2*x^-1"},
		{"x^-1 - x^-2", "x^-1 - x^-2"},
		{"5 - 3*x", "-3*x + 5"},
	}

	for _, tc := range cases {
		a.Equal(tc.out, mustParse(t, r, tc.in).String())
	}
}

func TestCharacteristicAndVariable(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, intRing().Characteristic().Sign())
	a.Equal("x", intRing().Variable())

	fr := fieldRing(t)
	a.Equal(int64(157), fr.Characteristic().Int64())
}
