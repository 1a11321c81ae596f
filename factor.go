package laurent

import "github.com/jonathanmweiss/go-laurent/poly"

// Division, inversion, GCD and canonical units all follow one idiom: write
// the underlying polynomial as x^v * u with u of nonzero constant term,
// solve the problem on the unit parts u in the ordinary ring, and recombine
// the exponent bookkeeping on mindeg and v. The generator itself is a unit
// here, so it carries no arithmetic content beyond those integers.

// removeGen factors p.num = x^v * u.
func (p *Polynomial[E]) removeGen() (v int, u *poly.Polynomial[E]) {
	return p.ring.polys.RemoveFactor(p.num)
}

// CanonicalUnit returns the unit u such that p/u is the canonical
// representative of p's associate class; the ring's one for zero.
func (p *Polynomial[E]) CanonicalUnit() *Polynomial[E] {
	if p.IsZero() {
		return p.ring.One()
	}

	v, u := p.removeGen()

	return p.ring.wrap(p.ring.polys.CanonicalUnit(u), p.mindeg+v)
}

// IsUnit reports whether p is invertible: a single-term monomial whose
// coefficient is a unit of the base ring. Every power of the generator is a
// unit.
func (p *Polynomial[E]) IsUnit() bool {
	if p.IsZero() {
		return false
	}

	_, u := p.removeGen()

	return p.ring.polys.IsUnit(u)
}

// Inverse returns p^-1, failing with ErrNotInvertible when p is not a unit.
func (p *Polynomial[E]) Inverse() (*Polynomial[E], error) {
	if p.IsZero() {
		return nil, ErrNotInvertible
	}

	v, g := p.removeGen()

	inv, err := p.ring.polys.Inverse(g)
	if err != nil {
		return nil, err
	}

	return p.ring.wrap(inv, -p.mindeg-v), nil
}

// ExactDiv returns p/q. The generator part of q is divided out as an
// exponent shift and only q's unit part participates in the polynomial
// division. With check set, an inexact division fails with
// ErrInexactDivision; without it the result of an inexact division is
// unspecified.
func (p *Polynomial[E]) ExactDiv(q *Polynomial[E], check bool) (*Polynomial[E], error) {
	if err := p.sameRing(q); err != nil {
		return nil, err
	}

	if q.IsZero() {
		return nil, ErrDivisionByZero
	}

	vq, uq := q.removeGen()

	quot, err := p.ring.polys.ExactDiv(p.num, uq, check)
	if err != nil {
		return nil, err
	}

	return p.ring.wrap(quot, p.mindeg-q.mindeg-vq), nil
}

// TryDiv reports whether q divides p, returning the quotient when it does.
func (p *Polynomial[E]) TryDiv(q *Polynomial[E]) (*Polynomial[E], bool) {
	if p.ring != q.ring || q.IsZero() {
		return p.ring.Zero(), false
	}

	vq, uq := q.removeGen()

	quot, ok := p.ring.polys.TryDiv(p.num, uq)
	if !ok {
		return p.ring.Zero(), false
	}

	return p.ring.wrap(quot, p.mindeg-q.mindeg-vq), true
}

// DivRem returns quotient and remainder of p by q. Both operands are reduced
// to their unit parts for the ordinary division; the remainder keeps p's
// original valuation, while the quotient absorbs the generator exponents of
// both operands.
func (p *Polynomial[E]) DivRem(q *Polynomial[E]) (quo, rem *Polynomial[E], err error) {
	if err := p.sameRing(q); err != nil {
		return nil, nil, err
	}

	if q.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	if p.IsZero() {
		return p.ring.One(), p.ring.Zero(), nil
	}

	vp, up := p.removeGen()
	vq, uq := q.removeGen()

	qq, rr, err := p.ring.polys.LongDiv(up, uq)
	if err != nil {
		return nil, nil, err
	}

	quo = p.ring.wrap(qq, p.mindeg+vp-q.mindeg-vq)
	rem = p.ring.wrap(rr, p.mindeg+vp)

	return quo, rem, nil
}

// Gcd returns the greatest common divisor of p and q, normalized to the
// canonical associate with trailing degree 0: the generator is a unit, so
// only the unit parts contribute.
func (p *Polynomial[E]) Gcd(q *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.sameRing(q); err != nil {
		return nil, err
	}

	if p.IsZero() {
		return q.divOwnCanonicalUnit()
	}

	if q.IsZero() {
		return p.divOwnCanonicalUnit()
	}

	_, up := p.removeGen()
	_, uq := q.removeGen()

	g, err := p.ring.polys.Gcd(up, uq)
	if err != nil {
		return nil, err
	}

	return p.ring.wrap(g, 0), nil
}

// GcdExt returns (g, s, t) with g = gcd(p, q) = s*p + t*q.
func (p *Polynomial[E]) GcdExt(q *Polynomial[E]) (g, s, t *Polynomial[E], err error) {
	if err := p.sameRing(q); err != nil {
		return nil, nil, nil, err
	}

	r := p.ring

	switch {
	case p.IsZero() && q.IsZero():
		return r.Zero(), r.Zero(), r.Zero(), nil

	case p.IsZero():
		g, err := q.divOwnCanonicalUnit()
		if err != nil {
			return nil, nil, nil, err
		}

		t, err := q.CanonicalUnit().Inverse()
		if err != nil {
			return nil, nil, nil, err
		}

		return g, r.Zero(), t, nil

	case q.IsZero():
		g, err := p.divOwnCanonicalUnit()
		if err != nil {
			return nil, nil, nil, err
		}

		s, err := p.CanonicalUnit().Inverse()
		if err != nil {
			return nil, nil, nil, err
		}

		return g, s, r.Zero(), nil
	}

	vp, up := p.removeGen()
	vq, uq := q.removeGen()

	gg, ss, tt, err := r.polys.GcdExt(up, uq)
	if err != nil {
		return nil, nil, nil, err
	}

	// s*p recovers the generator power factored out of p, so the Bezout
	// coefficients carry the opposite shift.
	g = r.wrap(gg, 0)
	s = r.wrap(ss, -p.mindeg-vp)
	t = r.wrap(tt, -q.mindeg-vq)

	return g, s, t, nil
}

// Lcm returns the least common multiple of p and q with trailing degree 0,
// matching the Gcd convention for the generator.
func (p *Polynomial[E]) Lcm(q *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.sameRing(q); err != nil {
		return nil, err
	}

	if p.IsZero() || q.IsZero() {
		return p.ring.Zero(), nil
	}

	_, up := p.removeGen()
	_, uq := q.removeGen()

	l, err := p.ring.polys.Lcm(up, uq)
	if err != nil {
		return nil, err
	}

	return p.ring.wrap(l, 0), nil
}

// divOwnCanonicalUnit returns p divided by its own canonical unit, the
// normalized associate returned for gcd with a zero operand.
func (p *Polynomial[E]) divOwnCanonicalUnit() (*Polynomial[E], error) {
	if p.IsZero() {
		return p.ring.Zero(), nil
	}

	return p.ExactDiv(p.CanonicalUnit(), true)
}
