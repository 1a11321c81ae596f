package laurent

// Neg returns -p.
func (p *Polynomial[E]) Neg() *Polynomial[E] {
	return p.ring.wrap(p.ring.polys.Neg(p.num), p.mindeg)
}

// Add returns p + q. The operands are aligned to the smaller mindeg and the
// underlying polynomials added. Panics when the operands come from different
// rings.
func (p *Polynomial[E]) Add(q *Polynomial[E]) *Polynomial[E] {
	p.mustSameRing(q)

	return p.ring.AddInto(p.ring.Zero(), p, q)
}

// Sub returns p - q.
func (p *Polynomial[E]) Sub(q *Polynomial[E]) *Polynomial[E] {
	p.mustSameRing(q)

	return p.ring.SubInto(p.ring.Zero(), p, q)
}

// Mul returns p * q. Exponents add under multiplication, so the result's
// mindeg is the sum of the operands' offsets regardless of canonicalization.
func (p *Polynomial[E]) Mul(q *Polynomial[E]) *Polynomial[E] {
	p.mustSameRing(q)

	return p.ring.wrap(p.ring.polys.Mul(p.num, q.num), p.mindeg+q.mindeg)
}

// AddScalar returns p + c for a base-ring element c.
func (p *Polynomial[E]) AddScalar(c E) *Polynomial[E] {
	return p.Add(p.ring.FromElement(c))
}

// SubScalar returns p - c.
func (p *Polynomial[E]) SubScalar(c E) *Polynomial[E] {
	return p.Sub(p.ring.FromElement(c))
}

// MulScalar returns c * p; mindeg is unchanged.
func (p *Polynomial[E]) MulScalar(c E) *Polynomial[E] {
	return p.ring.wrap(p.ring.polys.MulScalar(p.num, c), p.mindeg)
}

// Pow returns p^n. For n >= 0 this is ordinary powering with mindeg scaled
// by n. A negative n requires p to be a single-term monomial with a unit
// coefficient and fails with ErrNegativePower otherwise; the identity
// coefficient is kept as-is so 1 survives rings where powering it negatively
// would fail.
func (p *Polynomial[E]) Pow(n int) (*Polynomial[E], error) {
	r := p.ring

	if n >= 0 {
		return r.wrap(r.polys.Pow(p.num, uint64(n)), p.mindeg*n), nil
	}

	td, ok := p.TrailingDegree()
	if !ok {
		return nil, ErrNegativePower
	}

	ld, _ := p.LeadingDegree()
	if td != ld {
		return nil, ErrNegativePower
	}

	base := r.Base()
	c := p.Coeff(td)

	if base.IsOne(c) {
		return r.Monomial(base.One(), td*n), nil
	}

	cn, err := base.Pow(c, int64(n))
	if err != nil {
		return nil, ErrNegativePower
	}

	return r.Monomial(cn, td*n), nil
}

// Evaluate computes p(x). A negative mindeg requires x to be invertible; the
// base ring's failure is propagated.
func (p *Polynomial[E]) Evaluate(x E) (E, error) {
	base := p.ring.Base()

	val := p.ring.polys.Evaluate(p.num, x)

	scale, err := base.Pow(x, int64(p.mindeg))
	if err != nil {
		return base.Zero(), err
	}

	return base.Mul(val, scale), nil
}
