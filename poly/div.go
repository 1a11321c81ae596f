package poly

import (
	"github.com/jonathanmweiss/go-laurent/ring"
)

// LongDiv returns q, rem such that a = q*b + rem and deg(rem) < deg(b).
//
// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard.
// Requires the leading coefficient of b to be invertible; fails with
// ring.ErrNotInvertible otherwise.
func (r *Ring[E]) LongDiv(a, b *Polynomial[E]) (q, rem *Polynomial[E], err error) {
	if b.IsZero() {
		return nil, nil, ring.ErrDivisionByZero
	}

	n, m := a.Degree(), b.Degree()
	if n < m {
		return r.Zero(), a.Copy(), nil
	}

	u, err := r.coeff.Inverse(b.LeadingCoeff())
	if err != nil {
		return nil, nil, ring.ErrNotInvertible
	}

	rem = a.Copy()
	qInner := r.zeros(n - m + 1)

	for i := n - m; i >= 0; i-- {
		if rem.Degree() == m+i {
			qInner[i] = r.coeff.Mul(rem.LeadingCoeff(), u)
			r.SubInto(rem, rem, r.monomialMul(qInner[i], i, b))
		}
	}

	q = &Polynomial[E]{coeff: qInner, ring: r.coeff}
	q.trim()

	return q, rem, nil
}

// ExactDiv returns a/b using only exact coefficient divisions, so it works
// over rings whose elements are not all invertible. With check set it fails
// with ring.ErrInexactDivision whenever b does not divide a; without it the
// remainder test is skipped and the quotient of an inexact division is
// unspecified.
func (r *Ring[E]) ExactDiv(a, b *Polynomial[E], check bool) (*Polynomial[E], error) {
	if b.IsZero() {
		return nil, ring.ErrDivisionByZero
	}

	if a.IsZero() {
		return r.Zero(), nil
	}

	m := b.Degree()
	if a.Degree() < m {
		if check {
			return nil, ring.ErrInexactDivision
		}

		return r.Zero(), nil
	}

	rem := a.Copy()
	qInner := r.zeros(a.Degree() - m + 1)

	for !rem.IsZero() && rem.Degree() >= m {
		k := rem.Degree() - m

		c, err := r.coeff.ExactDiv(rem.LeadingCoeff(), b.LeadingCoeff())
		if err != nil {
			return nil, ring.ErrInexactDivision
		}

		qInner[k] = c
		r.SubInto(rem, rem, r.monomialMul(c, k, b))
	}

	if check && !rem.IsZero() {
		return nil, ring.ErrInexactDivision
	}

	q := &Polynomial[E]{coeff: qInner, ring: r.coeff}
	q.trim()

	return q, nil
}

// TryDiv reports whether b divides a exactly, returning the quotient when it
// does. The quotient is meaningless when ok is false.
func (r *Ring[E]) TryDiv(a, b *Polynomial[E]) (*Polynomial[E], bool) {
	q, err := r.ExactDiv(a, b, true)
	if err != nil {
		return r.Zero(), false
	}

	return q, true
}

// Gcd returns the canonical-associate greatest common divisor of a and b.
func (r *Ring[E]) Gcd(a, b *Polynomial[E]) (*Polynomial[E], error) {
	if a.IsZero() {
		return r.normalize(b), nil
	}

	if b.IsZero() {
		return r.normalize(a), nil
	}

	A := a.Copy()
	B := b.Copy()

	for !B.IsZero() {
		// gcd(A, B) = gcd(B, A mod B)
		_, rem, err := r.LongDiv(A, B)
		if err != nil {
			return nil, err
		}

		A, B = B, rem
	}

	return r.normalize(A), nil
}

// GcdExt returns (g, s, t) with g = gcd(a, b) = s*a + t*b, g a canonical
// associate.
func (r *Ring[E]) GcdExt(a, b *Polynomial[E]) (g, s, t *Polynomial[E], err error) {
	// Invariants:
	//   A = x0*a + y0*b
	//   B = x1*a + y1*b
	A := a.Copy()
	B := b.Copy()
	x0, x1 := r.One(), r.Zero()
	y0, y1 := r.Zero(), r.One()

	for !B.IsZero() {
		q, rem, err := r.LongDiv(A, B)
		if err != nil {
			return nil, nil, nil, err
		}

		A, B = B, rem

		// following Bézout's identity:
		// (x0, x1) = (x1, x0 - q*x1), same for y.
		x0, x1 = x1, r.Sub(x0, r.Mul(q, x1))
		y0, y1 = y1, r.Sub(y0, r.Mul(q, y1))
	}

	if A.IsZero() {
		return A, x0, y0, nil
	}

	inv, err := r.canonicalUnitInverse(A)
	if err != nil {
		return nil, nil, nil, err
	}

	return r.MulScalar(A, inv), r.MulScalar(x0, inv), r.MulScalar(y0, inv), nil
}

// Lcm returns the canonical-associate least common multiple of a and b.
func (r *Ring[E]) Lcm(a, b *Polynomial[E]) (*Polynomial[E], error) {
	if a.IsZero() || b.IsZero() {
		return r.Zero(), nil
	}

	g, err := r.Gcd(a, b)
	if err != nil {
		return nil, err
	}

	q, err := r.ExactDiv(r.Mul(a, b), g, true)
	if err != nil {
		return nil, err
	}

	return r.normalize(q), nil
}

// CanonicalUnit returns the constant polynomial holding the canonical unit of
// p's leading coefficient (1 for the zero polynomial).
func (r *Ring[E]) CanonicalUnit(p *Polynomial[E]) *Polynomial[E] {
	if p.IsZero() {
		return r.One()
	}

	return r.Constant(r.coeff.CanonicalUnit(p.LeadingCoeff()))
}

// IsUnit reports whether p is invertible, i.e. a constant whose coefficient
// is a unit of the coefficient ring.
func (r *Ring[E]) IsUnit(p *Polynomial[E]) bool {
	return p.Degree() == 0 && r.coeff.IsUnit(p.coeff[0])
}

func (r *Ring[E]) Inverse(p *Polynomial[E]) (*Polynomial[E], error) {
	if p.Degree() != 0 {
		return nil, ring.ErrNotInvertible
	}

	inv, err := r.coeff.Inverse(p.coeff[0])
	if err != nil {
		return nil, ring.ErrNotInvertible
	}

	return r.Constant(inv), nil
}

// normalize divides p by its canonical unit, picking the stable associate
// representative (monic over fields).
func (r *Ring[E]) normalize(p *Polynomial[E]) *Polynomial[E] {
	if p.IsZero() {
		return p.Copy()
	}

	inv, err := r.canonicalUnitInverse(p)
	if err != nil {
		// canonical units are units by the coefficient-ring contract
		panic(err)
	}

	return r.MulScalar(p, inv)
}

func (r *Ring[E]) canonicalUnitInverse(p *Polynomial[E]) (E, error) {
	return r.coeff.Inverse(r.coeff.CanonicalUnit(p.LeadingCoeff()))
}
