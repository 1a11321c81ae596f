package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBLS377(t *testing.T) {
	a := assert.New(t)
	f := NewBLS377()

	x := f.FromInt64(7)
	y := f.FromInt64(-3)

	a.True(f.Equal(f.FromInt64(4), f.Add(x, y)))
	a.True(f.Equal(f.FromInt64(-21), f.Mul(x, y)))
	a.True(f.IsZero(f.Add(y, f.Neg(y))))

	inv, err := f.Inverse(x)
	a.NoError(err)
	a.True(f.IsOne(f.Mul(x, inv)))

	_, err = f.Inverse(f.Zero())
	a.ErrorIs(err, ErrNotInvertible)

	p, err := f.Pow(x, -2)
	a.NoError(err)
	a.True(f.IsOne(f.Mul(p, f.Mul(x, x))))

	a.True(f.Characteristic().ProbablyPrime(1))
}
