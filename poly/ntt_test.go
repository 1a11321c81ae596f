package poly

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-laurent/ring"
)

func TestNTTMulMatchesSchoolbook(t *testing.T) {
	a := assert.New(t)

	f, err := ring.NewPrimeField(65537) // 2^16 | p-1, NTT friendly
	a.NoError(err)

	r := NewRing[uint64](f)
	rnd := rand.New(rand.NewSource(12345))

	for _, size := range []int{64, 100, 200, 255} {
		coeffsA := make([]uint64, size)
		coeffsB := make([]uint64, size)

		for i := range coeffsA {
			coeffsA[i] = rnd.Uint64() % f.Modulus()
			coeffsB[i] = rnd.Uint64() % f.Modulus()
		}

		p := r.New(coeffsA...)
		q := r.New(coeffsB...)

		fast, ok := r.mulNTT(p, q)
		a.True(ok)

		slow := r.MulInto(r.Zero(), p, q)
		a.True(fast.Equal(slow))
	}
}

func TestNTTFallback(t *testing.T) {
	a := assert.New(t)

	t.Run("smallOperands", func(t *testing.T) {
		f, err := ring.NewPrimeField(65537)
		a.NoError(err)

		r := NewRing[uint64](f)

		_, ok := r.mulNTT(r.New(1, 2), r.New(3, 4))
		a.False(ok)
	})

	t.Run("unfriendlyModulus", func(t *testing.T) {
		// 157-1 has no large power-of-two factor, so Mul must stay on the
		// schoolbook path for any sizeable operand.
		f, err := ring.NewPrimeField(157)
		a.NoError(err)

		r := NewRing[uint64](f)

		coeffs := make([]uint64, 80)
		for i := range coeffs {
			coeffs[i] = uint64(i % 157)
		}

		p := r.New(coeffs...)

		_, ok := r.mulNTT(p, p)
		a.False(ok)

		prod := r.Mul(p, p)
		a.Equal(158, prod.Degree())
	})
}
