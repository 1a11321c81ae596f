package laurent

// Canonicalize returns a copy of p whose mindeg equals the true trailing
// degree, i.e. the underlying polynomial has a nonzero constant term. The
// result never aliases p's storage; ShiftLeft and ShiftRight rely on that to
// adjust mindeg without touching a shared polynomial.
func (p *Polynomial[E]) Canonicalize() *Polynomial[E] {
	if p.IsZero() {
		return p.ring.Zero()
	}

	v, u := p.removeGen()

	return p.ring.wrap(u, p.mindeg+v)
}

// ShiftLeft returns p * x^n for n >= 0, failing with ErrNegativeShift
// otherwise. The result is canonicalized.
func (p *Polynomial[E]) ShiftLeft(n int) (*Polynomial[E], error) {
	if n < 0 {
		return nil, ErrNegativeShift
	}

	out := p.Canonicalize()
	if !out.IsZero() {
		out.mindeg += n
	}

	return out, nil
}

// ShiftRight returns p * x^-n for n >= 0, failing with ErrNegativeShift
// otherwise. The result is canonicalized.
func (p *Polynomial[E]) ShiftRight(n int) (*Polynomial[E], error) {
	if n < 0 {
		return nil, ErrNegativeShift
	}

	out := p.Canonicalize()
	if !out.IsZero() {
		out.mindeg -= n
	}

	return out, nil
}
