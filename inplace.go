package laurent

// In-place variants reuse dst's underlying storage when its capacity allows
// and allocate otherwise. Callers must use the returned value and must have
// established unique ownership of dst's storage; values built with FromPoly
// may still share their polynomial with the caller.

// SetZero truncates p to zero in place and returns it.
func (r *Ring[E]) SetZero(p *Polynomial[E]) *Polynomial[E] {
	p.num.SetZero()
	p.mindeg = 0

	return p
}

// AddInto computes a + b into dst and returns it. dst may alias a or b.
func (r *Ring[E]) AddInto(dst, a, b *Polynomial[E]) *Polynomial[E] {
	an, bn, mindeg := r.align(a, b)

	r.polys.AddInto(dst.num, an, bn)
	dst.mindeg = mindeg
	dst.ring = r

	if dst.num.IsZero() {
		dst.mindeg = 0
	}

	return dst
}

// SubInto computes a - b into dst and returns it. dst may alias a or b.
func (r *Ring[E]) SubInto(dst, a, b *Polynomial[E]) *Polynomial[E] {
	an, bn, mindeg := r.align(a, b)

	r.polys.SubInto(dst.num, an, bn)
	dst.mindeg = mindeg
	dst.ring = r

	if dst.num.IsZero() {
		dst.mindeg = 0
	}

	return dst
}

// MulInto computes a * b into dst and returns it. dst may alias a or b.
func (r *Ring[E]) MulInto(dst, a, b *Polynomial[E]) *Polynomial[E] {
	mindeg := a.mindeg + b.mindeg

	r.polys.MulInto(dst.num, a.num, b.num)
	dst.mindeg = mindeg
	dst.ring = r

	if dst.num.IsZero() {
		dst.mindeg = 0
	}

	return dst
}

// AddAssign computes p += q in place and returns p.
func (p *Polynomial[E]) AddAssign(q *Polynomial[E]) *Polynomial[E] {
	p.mustSameRing(q)

	return p.ring.AddInto(p, p, q)
}
