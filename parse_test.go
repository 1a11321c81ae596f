package laurent

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-laurent/ring"
)

func TestParse(t *testing.T) {
	a := assert.New(t)
	r := intRing()

	t.Run("roundTrip", func(t *testing.T) {
		for _, s := range []string{
			"0",
			"1",
			"-1",
			"x",
			"-x^-1",
			"3*x + 5",
			"x^3 - 2*x + 1",
			"2*x^2 - 1",
			"3*x + 5 + x^-2",
			"x^-1 - 7*x^-4",
		} {
			p, err := Parse(r, s)
			a.NoError(err)
			a.Equal(s, p.String())
		}
	})

	t.Run("flexibleInput", func(t *testing.T) {
		for in, want := range map[string]string{
			"5x":         "5*x",
			"x^2+x":      "x^2 + x",
			"- x":        "-x",
			"+x + -x^-1": "x - x^-1",
			"x + x":      "2*x",
			"2 - 2":      "0",
		} {
			p, err := Parse(r, in)
			a.NoError(err)
			a.Equal(want, p.String())
		}
	})

	t.Run("collectsLikeTerms", func(t *testing.T) {
		p, err := Parse(r, "x^-2 + 3*x^-2 - x^-2")
		a.NoError(err)
		a.True(p.Equal(r.Monomial(big.NewInt(3), -2)))
	})

	t.Run("errors", func(t *testing.T) {
		for _, s := range []string{
			"",
			"x +",
			"*x",
			"y^2",
			"x^",
			"x^--2",
			"3*",
		} {
			_, err := Parse(r, s)
			a.ErrorIs(err, ErrParse, "input %q", s)
		}
	})

	t.Run("customVariable", func(t *testing.T) {
		rt := NewRing[*big.Int](ring.NewIntegers(), "t")

		p, err := Parse(rt, "t^-1 + 2")
		a.NoError(err)
		a.Equal("2 + t^-1", p.String())

		_, err = Parse(rt, "x^-1 + 2")
		a.ErrorIs(err, ErrParse)
	})
}
