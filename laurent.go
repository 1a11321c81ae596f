// Package laurent implements Laurent polynomials, univariate polynomials
// whose exponents may be negative, generically over a coefficient ring.
//
// A value is stored as an ordinary polynomial together with mindeg, the
// exponent assigned to that polynomial's constant term. mindeg is a lower
// bound on the exponents with nonzero coefficients, not necessarily the
// tight one: the underlying polynomial may carry a zero constant term.
// Canonicalize produces the tight representation on demand.
package laurent

import (
	"math/big"
	"strings"

	"github.com/jonathanmweiss/go-laurent/poly"
	"github.com/jonathanmweiss/go-laurent/ring"
)

// Ring describes the ring of Laurent polynomials over a base coefficient
// ring in one named variable. All elements of a ring must be created through
// the same Ring value; mixing elements of two Ring values panics or fails
// with ErrMismatchedRings even when the rings are mathematically equal.
type Ring[E any] struct {
	polys    *poly.Ring[E]
	variable string
}

func NewRing[E any](coeff ring.Ring[E], variable string) *Ring[E] {
	return &Ring[E]{
		polys:    poly.NewRing(coeff),
		variable: variable,
	}
}

// Base returns the coefficient ring.
func (r *Ring[E]) Base() ring.Ring[E] { return r.polys.Coeff() }

// PolyRing returns the underlying ordinary-polynomial ring.
func (r *Ring[E]) PolyRing() *poly.Ring[E] { return r.polys }

func (r *Ring[E]) Variable() string { return r.variable }

func (r *Ring[E]) Characteristic() *big.Int { return r.Base().Characteristic() }

/*
Polynomial is one Laurent polynomial. The coefficient of exponent k is the
underlying polynomial's coefficient of k - mindeg when k >= mindeg, and zero
otherwise. The zero polynomial keeps mindeg = 0.
*/
type Polynomial[E any] struct {
	ring   *Ring[E]
	num    *poly.Polynomial[E]
	mindeg int
}

func (r *Ring[E]) wrap(num *poly.Polynomial[E], mindeg int) *Polynomial[E] {
	if num.IsZero() {
		mindeg = 0
	}

	return &Polynomial[E]{ring: r, num: num, mindeg: mindeg}
}

// ---------- constructors ----------

func (r *Ring[E]) Zero() *Polynomial[E] { return r.wrap(r.polys.Zero(), 0) }
func (r *Ring[E]) One() *Polynomial[E]  { return r.wrap(r.polys.One(), 0) }

// Gen returns the generator, the variable itself.
func (r *Ring[E]) Gen() *Polynomial[E] { return r.wrap(r.polys.Gen(), 0) }

// FromPoly wraps an ordinary polynomial with mindeg 0. The result aliases
// p's storage; pass p.Copy() when the caller keeps mutating p.
func (r *Ring[E]) FromPoly(p *poly.Polynomial[E]) *Polynomial[E] {
	return r.wrap(p, 0)
}

// FromElement returns the constant Laurent polynomial c.
func (r *Ring[E]) FromElement(c E) *Polynomial[E] {
	return r.wrap(r.polys.Constant(c), 0)
}

func (r *Ring[E]) FromInt64(v int64) *Polynomial[E] {
	return r.FromElement(r.Base().FromInt64(v))
}

// Monomial returns c * x^deg for any integer deg.
func (r *Ring[E]) Monomial(c E, deg int) *Polynomial[E] {
	return r.wrap(r.polys.Constant(c), deg)
}

// ---------- representation queries ----------

func (p *Polynomial[E]) Ring() *Ring[E] { return p.ring }

// MinDeg returns the stored minimum-degree offset. It is a lower bound on
// the trailing degree, tight only after Canonicalize.
func (p *Polynomial[E]) MinDeg() int { return p.mindeg }

// Poly returns the underlying ordinary polynomial. It aliases p's storage.
func (p *Polynomial[E]) Poly() *poly.Polynomial[E] { return p.num }

// DegreeRange returns the inclusive exponent range covered by the stored
// representation, mindeg through mindeg + deg. ok is false for zero. The
// lower bound is the raw mindeg; use TrailingDegree for the tight bound.
func (p *Polynomial[E]) DegreeRange() (lo, hi int, ok bool) {
	if p.IsZero() {
		return 0, 0, false
	}

	return p.mindeg, p.mindeg + p.num.Degree(), true
}

// TrailingDegree returns the lowest exponent with a nonzero coefficient.
// ok is false for zero.
func (p *Polynomial[E]) TrailingDegree() (int, bool) {
	v, ok := p.num.Valuation()
	if !ok {
		return 0, false
	}

	return p.mindeg + v, true
}

// LeadingDegree returns the highest exponent with a nonzero coefficient.
// ok is false for zero.
func (p *Polynomial[E]) LeadingDegree() (int, bool) {
	if p.IsZero() {
		return 0, false
	}

	return p.mindeg + p.num.Degree(), true
}

// Coeff returns the coefficient of x^i.
func (p *Polynomial[E]) Coeff(i int) E {
	if i < p.mindeg {
		return p.ring.Base().Zero()
	}

	return p.num.Coeff(i - p.mindeg)
}

// SetCoeff sets the coefficient of x^i in place. Exponents below mindeg grow
// the representation downward: mindeg is lowered to i and the stored
// polynomial is shifted up to keep the alignment.
func (p *Polynomial[E]) SetCoeff(i int, v E) {
	if i < p.mindeg {
		shifted, err := p.ring.polys.ShiftLeft(p.num, p.mindeg-i)
		if err != nil {
			panic(err)
		}

		p.num = shifted
		p.mindeg = i
	}

	p.num.SetCoeff(i-p.mindeg, v)

	if p.num.IsZero() {
		p.mindeg = 0
	}
}

func (p *Polynomial[E]) IsZero() bool { return p.num.IsZero() }

// IsOne reports whether the stored representation is exactly the constant 1
// at exponent 0. A non-canonical representation of 1 (say x * x^-1) is not
// recognized; Equal against the ring's One is representation-insensitive.
func (p *Polynomial[E]) IsOne() bool {
	return p.mindeg == 0 && p.num.IsOne()
}

// IsGen reports whether p is the single-term monomial 1 * x^1.
func (p *Polynomial[E]) IsGen() bool {
	td, ok := p.TrailingDegree()
	if !ok || td != 1 {
		return false
	}

	ld, _ := p.LeadingDegree()

	return ld == 1 && p.ring.Base().IsOne(p.Coeff(1))
}

// Copy returns a deep copy.
func (p *Polynomial[E]) Copy() *Polynomial[E] {
	return &Polynomial[E]{ring: p.ring, num: p.num.Copy(), mindeg: p.mindeg}
}

// Equal compares values, not representations: operands are aligned to a
// common mindeg first. Panics when the operands come from different rings.
func (p *Polynomial[E]) Equal(q *Polynomial[E]) bool {
	p.mustSameRing(q)

	an, bn, _ := p.ring.align(p, q)

	return an.Equal(bn)
}

func (p *Polynomial[E]) mustSameRing(q *Polynomial[E]) {
	if p.ring != q.ring {
		panic(ErrMismatchedRings)
	}
}

func (p *Polynomial[E]) sameRing(q *Polynomial[E]) error {
	if p.ring != q.ring {
		return ErrMismatchedRings
	}

	return nil
}

// align shifts the operand with the larger mindeg up so both share the
// common minimum. The returned polynomials may alias the inputs' storage.
func (r *Ring[E]) align(p, q *Polynomial[E]) (an, bn *poly.Polynomial[E], mindeg int) {
	mindeg = min(p.mindeg, q.mindeg)

	an = p.num
	if p.mindeg > mindeg {
		an, _ = r.polys.ShiftLeft(p.num, p.mindeg-mindeg)
	}

	bn = q.num
	if q.mindeg > mindeg {
		bn, _ = r.polys.ShiftLeft(q.num, q.mindeg-mindeg)
	}

	return an, bn, mindeg
}

// String renders nonzero terms in descending exponent order, writing
// exponent 0 as a bare coefficient, exponent 1 without the caret and unit
// coefficients without the explicit factor.
func (p *Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}

	base := p.ring.Base()
	bldr := strings.Builder{}

	for i := p.num.Degree(); i >= 0; i-- {
		c := p.num.Coeff(i)
		if base.IsZero(c) {
			continue
		}

		poly.WriteTerm(&bldr, base.String(c), p.ring.variable, p.mindeg+i, bldr.Len() > 0)
	}

	return bldr.String()
}
