package poly

import (
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-laurent/ring"
)

/*
Polynomial is a dense univariate polynomial over a coefficient ring.
Coefficients are ordered from lowest to highest degree (e.g. [1, 2, 3] is
1 + 2x + 3x^2) and kept trimmed: the zero polynomial has no coefficients, and
a nonzero polynomial has a nonzero leading coefficient.

Construct polynomials through a Ring; the zero value is not usable.
*/
type Polynomial[E any] struct {
	coeff []E
	ring  ring.Ring[E]
}

func (p *Polynomial[E]) Ring() ring.Ring[E] { return p.ring }

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p *Polynomial[E]) Degree() int {
	return len(p.coeff) - 1
}

func (p *Polynomial[E]) IsZero() bool {
	return len(p.coeff) == 0
}

func (p *Polynomial[E]) IsOne() bool {
	return len(p.coeff) == 1 && p.ring.IsOne(p.coeff[0])
}

// IsGen reports whether p is the generator x.
func (p *Polynomial[E]) IsGen() bool {
	return len(p.coeff) == 2 && p.ring.IsZero(p.coeff[0]) && p.ring.IsOne(p.coeff[1])
}

// LeadingCoeff returns the highest-degree coefficient, or zero for the zero
// polynomial.
func (p *Polynomial[E]) LeadingCoeff() E {
	if len(p.coeff) == 0 {
		return p.ring.Zero()
	}

	return p.coeff[len(p.coeff)-1]
}

// Coeff returns the coefficient of x^i, or zero when i is out of range.
func (p *Polynomial[E]) Coeff(i int) E {
	if i < 0 || i >= len(p.coeff) {
		return p.ring.Zero()
	}

	return p.coeff[i]
}

// SetCoeff sets the coefficient of x^i, growing the polynomial as needed.
// Negative i panics.
func (p *Polynomial[E]) SetCoeff(i int, v E) {
	if i < 0 {
		panic("poly: negative coefficient index")
	}

	for len(p.coeff) <= i {
		p.coeff = append(p.coeff, p.ring.Zero())
	}

	p.coeff[i] = v
	p.trim()
}

// Valuation returns the lowest degree with a nonzero coefficient. The second
// return is false for the zero polynomial.
func (p *Polynomial[E]) Valuation() (int, bool) {
	for i, c := range p.coeff {
		if !p.ring.IsZero(c) {
			return i, true
		}
	}

	return 0, false
}

// SetZero truncates p to the zero polynomial in place, keeping its storage.
func (p *Polynomial[E]) SetZero() {
	p.coeff = p.coeff[:0]
}

func (p *Polynomial[E]) trim() {
	i := len(p.coeff) - 1
	for i >= 0 && p.ring.IsZero(p.coeff[i]) {
		i--
	}

	p.coeff = p.coeff[:i+1]
}

func (p *Polynomial[E]) Copy() *Polynomial[E] {
	inner := make([]E, len(p.coeff))
	copy(inner, p.coeff)

	return &Polynomial[E]{coeff: inner, ring: p.ring}
}

func (p *Polynomial[E]) Equal(q *Polynomial[E]) bool {
	if len(p.coeff) != len(q.coeff) {
		return false
	}

	for i := range p.coeff {
		if !p.ring.Equal(p.coeff[i], q.coeff[i]) {
			return false
		}
	}

	return true
}

// Coeffs returns a copy of the coefficient slice, lowest degree first.
func (p *Polynomial[E]) Coeffs() []E {
	out := make([]E, len(p.coeff))
	copy(out, p.coeff)

	return out
}

// String renders the polynomial with terms in descending degree order.
func (p *Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}

	bldr := strings.Builder{}
	for i := len(p.coeff) - 1; i >= 0; i-- {
		if p.ring.IsZero(p.coeff[i]) {
			continue
		}

		WriteTerm(&bldr, p.ring.String(p.coeff[i]), "x", i, bldr.Len() > 0)
	}

	return bldr.String()
}

// WriteTerm appends one rendered term, special-casing exponents 0 and 1 and
// coefficient 1, folding a leading minus sign of the coefficient into the
// joining operator.
func WriteTerm(bldr *strings.Builder, coeff, variable string, exp int, joined bool) {
	neg := strings.HasPrefix(coeff, "-")
	if neg {
		coeff = coeff[1:]
	}

	switch {
	case joined && neg:
		bldr.WriteString(" - ")
	case joined:
		bldr.WriteString(" + ")
	case neg:
		bldr.WriteString("-")
	}

	if exp == 0 {
		bldr.WriteString(coeff)

		return
	}

	if coeff != "1" {
		bldr.WriteString(coeff)
		bldr.WriteString("*")
	}

	bldr.WriteString(variable)

	if exp != 1 {
		bldr.WriteString("^")
		bldr.WriteString(strconv.Itoa(exp))
	}
}
