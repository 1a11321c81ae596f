package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-laurent/ring"
)

func newTestField(t *testing.T) *ring.PrimeField {
	t.Helper()

	f, err := ring.NewPrimeField(157)
	if err != nil {
		t.Fatal(err)
	}

	return f
}

func TestPolyAdd(t *testing.T) {
	a := assert.New(t)

	f := newTestField(t)
	r := NewRing[uint64](f)

	t.Run("sameSize", func(t *testing.T) {
		p1 := r.New(1, 2, 0, 3)
		p2 := r.New(1, 2, 0, 3)

		sum := r.Add(p1, p2)
		a.Equal([]uint64{2, 4, 0, 6}, sum.Coeffs())
	})

	t.Run("differentSizes", func(t *testing.T) {
		p1 := r.New(1, 2, 0, 3)
		p2 := r.New(1, 2, 0)

		a.Equal([]uint64{2, 4, 0, 3}, r.Add(p1, p2).Coeffs())
		a.Equal([]uint64{2, 4, 0, 3}, r.Add(p2, p1).Coeffs())
	})

	t.Run("wrapAroundElems", func(t *testing.T) {
		q := f.Modulus() - 1

		p1 := r.New(q, q, q, q)
		p2 := r.New(1, 1, 1, 1)

		a.True(r.Add(p1, p2).IsZero())
	})
}

func TestPolySub(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	p1 := r.New(1, 2, 0, 3)
	p2 := r.New(0, 1)

	diff := r.Sub(p1, p1)
	a.True(diff.IsZero())

	a.Equal([]uint64{1, 1, 0, 3}, r.Sub(p1, p2).Coeffs())
	a.Equal([]uint64{156, 156, 0, 154}, r.Sub(p2, p1).Coeffs())
}

func TestPolyMul(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	t.Run("schoolbook", func(t *testing.T) {
		// (1 + x)(1 + 2x) = 1 + 3x + 2x^2
		prod := r.Mul(r.New(1, 1), r.New(1, 2))
		a.Equal([]uint64{1, 3, 2}, prod.Coeffs())
	})

	t.Run("byZero", func(t *testing.T) {
		a.True(r.Mul(r.New(1, 1), r.Zero()).IsZero())
	})

	t.Run("scalar", func(t *testing.T) {
		a.Equal([]uint64{2, 4, 6}, r.MulScalar(r.New(1, 2, 3), 2).Coeffs())
		a.True(r.MulScalar(r.New(1, 2, 3), 0).IsZero())
	})

	t.Run("aliasedInto", func(t *testing.T) {
		p := r.New(1, 1)
		r.MulInto(p, p, p)
		a.Equal([]uint64{1, 2, 1}, p.Coeffs())
	})

	t.Run("aliasedIntoWithSpareCapacity", func(t *testing.T) {
		// dst's storage is big enough to hold the product while it still
		// backs the left operand
		p := r.New(2, 3, 1)
		got := r.MulInto(p, p, r.Constant(2))

		a.True(got == p)
		a.Equal([]uint64{4, 6, 2}, got.Coeffs())
	})

	t.Run("selfSquareWithSpareCapacity", func(t *testing.T) {
		p := &Polynomial[uint64]{coeff: append(make([]uint64, 0, 8), 1, 1), ring: r.coeff}
		r.MulInto(p, p, p)

		a.Equal([]uint64{1, 2, 1}, p.Coeffs())
	})
}

func TestDegreeAndCoeffs(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	p := r.New(5, 0, 3)
	a.Equal(2, p.Degree())
	a.Equal(uint64(3), p.LeadingCoeff())
	a.Equal(uint64(5), p.Coeff(0))
	a.Equal(uint64(0), p.Coeff(1))
	a.Equal(uint64(0), p.Coeff(100))

	a.Equal(-1, r.Zero().Degree())

	t.Run("trimOnConstruction", func(t *testing.T) {
		a.Equal(1, r.New(1, 1, 0, 0).Degree())
	})

	t.Run("setCoeffGrows", func(t *testing.T) {
		p := r.Zero()
		p.SetCoeff(3, 7)
		a.Equal(3, p.Degree())
		a.Equal([]uint64{0, 0, 0, 7}, p.Coeffs())
	})

	t.Run("setCoeffTrims", func(t *testing.T) {
		p := r.New(1, 2)
		p.SetCoeff(1, 0)
		a.Equal(0, p.Degree())
	})

	t.Run("valuation", func(t *testing.T) {
		v, ok := r.New(0, 0, 4, 1).Valuation()
		a.True(ok)
		a.Equal(2, v)

		_, ok = r.Zero().Valuation()
		a.False(ok)
	})
}

func TestPredicates(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	a.True(r.One().IsOne())
	a.True(r.Gen().IsGen())
	a.False(r.Gen().IsOne())
	a.False(r.New(0, 2).IsGen())
	a.True(r.Monomial(1, 1).IsGen())
}

func TestShifts(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	p := r.New(1, 2)

	left, err := r.ShiftLeft(p, 2)
	a.NoError(err)
	a.Equal([]uint64{0, 0, 1, 2}, left.Coeffs())

	right, err := r.ShiftRight(left, 2)
	a.NoError(err)
	a.True(right.Equal(p))

	_, err = r.ShiftLeft(p, -1)
	a.ErrorIs(err, ErrNegativeShift)

	all, err := r.ShiftRight(p, 10)
	a.NoError(err)
	a.True(all.IsZero())
}

func TestRemoveFactor(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	v, u := r.RemoveFactor(r.New(0, 0, 3, 1))
	a.Equal(2, v)
	a.Equal([]uint64{3, 1}, u.Coeffs())

	v, u = r.RemoveFactor(r.New(5))
	a.Equal(0, v)
	a.Equal([]uint64{5}, u.Coeffs())

	v, u = r.RemoveFactor(r.Zero())
	a.Equal(0, v)
	a.True(u.IsZero())
}

func TestEvaluate(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	// p(x) = 1 + 2x + x^2, p(3) = 16
	a.Equal(uint64(16), r.Evaluate(r.New(1, 2, 1), 3))
	a.Equal(uint64(0), r.Evaluate(r.Zero(), 3))
}

func TestPolyOverIntegers(t *testing.T) {
	a := assert.New(t)
	z := ring.NewIntegers()
	r := NewRing[*big.Int](z)

	p := r.New(big.NewInt(-1), big.NewInt(0), big.NewInt(2))

	a.Equal(2, p.Degree())
	a.Equal("2*x^2 - 1", p.String())

	sq := r.Mul(p, p)
	a.Equal("4*x^4 - 4*x^2 + 1", sq.String())

	t.Run("copyIsDeep", func(t *testing.T) {
		q := p.Copy()
		q.SetCoeff(0, big.NewInt(9))
		a.Equal(int64(-1), p.Coeff(0).Int64())
	})
}

func TestPow(t *testing.T) {
	a := assert.New(t)
	r := NewRing[uint64](newTestField(t))

	p := r.New(1, 1)

	cube := r.Pow(p, 3)
	a.Equal([]uint64{1, 3, 3, 1}, cube.Coeffs())

	a.True(r.Pow(p, 0).IsOne())
	a.True(r.Pow(r.Zero(), 0).IsOne())
	a.True(r.Pow(r.Zero(), 2).IsZero())
}
