package poly

import (
	"errors"
	"sync"

	"github.com/jonathanmweiss/go-laurent/ring"
)

var ErrNegativeShift = errors.New("poly: negative shift amount")

// Ring is the ring of polynomials over a coefficient ring. Arithmetic lives
// on the ring object; the ...Into variants write into dst (reusing its
// storage when capacity allows) and return it, the plain variants allocate.
type Ring[E any] struct {
	coeff ring.Ring[E]

	mu       sync.RWMutex
	twiddles map[int]*twiddleSet
}

func NewRing[E any](coeff ring.Ring[E]) *Ring[E] {
	return &Ring[E]{
		coeff:    coeff,
		twiddles: make(map[int]*twiddleSet),
	}
}

// Coeff returns the coefficient ring.
func (r *Ring[E]) Coeff() ring.Ring[E] { return r.coeff }

// ---------- constructors ----------

func (r *Ring[E]) Zero() *Polynomial[E] {
	return &Polynomial[E]{ring: r.coeff}
}

func (r *Ring[E]) One() *Polynomial[E] {
	return r.Constant(r.coeff.One())
}

// Gen returns the generator x.
func (r *Ring[E]) Gen() *Polynomial[E] {
	return &Polynomial[E]{coeff: []E{r.coeff.Zero(), r.coeff.One()}, ring: r.coeff}
}

func (r *Ring[E]) Constant(c E) *Polynomial[E] {
	p := &Polynomial[E]{coeff: []E{c}, ring: r.coeff}
	p.trim()

	return p
}

// New builds a polynomial from coefficients ordered lowest degree first.
func (r *Ring[E]) New(coeffs ...E) *Polynomial[E] {
	inner := make([]E, len(coeffs))
	copy(inner, coeffs)

	p := &Polynomial[E]{coeff: inner, ring: r.coeff}
	p.trim()

	return p
}

// Monomial returns c * x^deg. Negative deg panics.
func (r *Ring[E]) Monomial(c E, deg int) *Polynomial[E] {
	if deg < 0 {
		panic("poly: negative monomial degree")
	}

	if r.coeff.IsZero(c) {
		return r.Zero()
	}

	inner := r.zeros(deg + 1)
	inner[deg] = c

	return &Polynomial[E]{coeff: inner, ring: r.coeff}
}

func (r *Ring[E]) zeros(n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = r.coeff.Zero()
	}

	return out
}

func ensureLen[E any](c *Polynomial[E], n int) {
	if cap(c.coeff) >= n {
		c.coeff = c.coeff[:n]
	} else {
		tmp := make([]E, n)
		copy(tmp, c.coeff)
		c.coeff = tmp
	}
}

// ---------- additive ops ----------

func (r *Ring[E]) AddInto(dst, a, b *Polynomial[E]) *Polynomial[E] {
	return r.combineInto(dst, a, b, r.coeff.Add)
}

func (r *Ring[E]) SubInto(dst, a, b *Polynomial[E]) *Polynomial[E] {
	return r.combineInto(dst, a, b, r.coeff.Sub)
}

func (r *Ring[E]) combineInto(dst, a, b *Polynomial[E], op func(E, E) E) *Polynomial[E] {
	alen := len(a.coeff)
	blen := len(b.coeff)
	n := max(alen, blen)
	ensureLen(dst, n)

	for i := 0; i < n; i++ {
		av := r.coeff.Zero()
		if i < alen {
			av = a.coeff[i]
		}

		bv := r.coeff.Zero()
		if i < blen {
			bv = b.coeff[i]
		}

		dst.coeff[i] = op(av, bv)
	}

	dst.ring = r.coeff
	dst.trim()

	return dst
}

func (r *Ring[E]) Add(a, b *Polynomial[E]) *Polynomial[E] {
	return r.AddInto(r.Zero(), a, b)
}

func (r *Ring[E]) Sub(a, b *Polynomial[E]) *Polynomial[E] {
	return r.SubInto(r.Zero(), a, b)
}

func (r *Ring[E]) Neg(a *Polynomial[E]) *Polynomial[E] {
	inner := make([]E, len(a.coeff))
	for i, c := range a.coeff {
		inner[i] = r.coeff.Neg(c)
	}

	return &Polynomial[E]{coeff: inner, ring: r.coeff}
}

// ---------- multiplicative ops ----------

func (r *Ring[E]) MulScalarInto(dst, a *Polynomial[E], s E) *Polynomial[E] {
	ensureLen(dst, len(a.coeff))
	for i := range a.coeff {
		dst.coeff[i] = r.coeff.Mul(a.coeff[i], s)
	}

	dst.ring = r.coeff
	dst.trim()

	return dst
}

func (r *Ring[E]) MulScalar(a *Polynomial[E], s E) *Polynomial[E] {
	return r.MulScalarInto(r.Zero(), a, s)
}

// MulInto computes a*b by schoolbook convolution into dst. Safe when dst
// aliases a or b.
func (r *Ring[E]) MulInto(dst, a, b *Polynomial[E]) *Polynomial[E] {
	if a.IsZero() || b.IsZero() {
		dst.coeff = dst.coeff[:0]
		dst.ring = r.coeff

		return dst
	}

	newLen := len(a.coeff) + len(b.coeff) - 1

	// Decide where to write: use dst's storage if capacity is enough; else
	// allocate. Reuse is off the table when dst shares its backing array with
	// an operand, since the zero-fill below would wipe the operand too.
	var out []E
	if cap(dst.coeff) >= newLen && !sharesStorage(dst.coeff, a.coeff) && !sharesStorage(dst.coeff, b.coeff) {
		out = dst.coeff[:newLen]
	} else {
		out = make([]E, newLen)
	}

	for i := range out {
		out[i] = r.coeff.Zero()
	}

	// out[i+j] += a[i] * b[j], O(n*m).
	for i := range a.coeff {
		ai := a.coeff[i]
		if r.coeff.IsZero(ai) {
			continue
		}

		for j := range b.coeff {
			out[i+j] = r.coeff.Add(out[i+j], r.coeff.Mul(ai, b.coeff[j]))
		}
	}

	// Writing `out` last keeps this correct when dst aliases an operand.
	dst.coeff = out
	dst.ring = r.coeff
	dst.trim()

	return dst
}

// sharesStorage reports whether two slices sit on the same backing array.
func sharesStorage[E any](x, y []E) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[:cap(x)][0] == &y[:cap(y)][0]
}

// Mul computes a*b, switching to the NTT fast path for large operands over
// coefficient fields that expose roots of unity.
func (r *Ring[E]) Mul(a, b *Polynomial[E]) *Polynomial[E] {
	if p, ok := r.mulNTT(a, b); ok {
		return p
	}

	return r.MulInto(r.Zero(), a, b)
}

func (r *Ring[E]) monomialMul(c E, deg int, p *Polynomial[E]) *Polynomial[E] {
	prod := r.zeros(len(p.coeff) + deg)
	for i := range p.coeff {
		prod[i+deg] = r.coeff.Mul(c, p.coeff[i])
	}

	out := &Polynomial[E]{coeff: prod, ring: r.coeff}
	out.trim()

	return out
}

// Pow computes p^n by repeated squaring.
func (r *Ring[E]) Pow(p *Polynomial[E], n uint64) *Polynomial[E] {
	x := r.One()
	base := p.Copy()

	for n > 0 {
		if n%2 == 1 {
			x = r.Mul(x, base)
		}

		base = r.Mul(base, base)
		n /= 2
	}

	return x
}

// ---------- shifting ----------

// ShiftLeft multiplies p by x^n.
func (r *Ring[E]) ShiftLeft(p *Polynomial[E], n int) (*Polynomial[E], error) {
	if n < 0 {
		return nil, ErrNegativeShift
	}

	if p.IsZero() {
		return r.Zero(), nil
	}

	inner := r.zeros(len(p.coeff) + n)
	copy(inner[n:], p.coeff)

	return &Polynomial[E]{coeff: inner, ring: r.coeff}, nil
}

// ShiftRight divides p by x^n, discarding the n lowest coefficients.
func (r *Ring[E]) ShiftRight(p *Polynomial[E], n int) (*Polynomial[E], error) {
	if n < 0 {
		return nil, ErrNegativeShift
	}

	if n >= len(p.coeff) {
		return r.Zero(), nil
	}

	inner := make([]E, len(p.coeff)-n)
	copy(inner, p.coeff[n:])

	out := &Polynomial[E]{coeff: inner, ring: r.coeff}
	out.trim()

	return out, nil
}

// RemoveFactor writes p = x^v * u with u having a nonzero constant term, and
// returns (v, u). The zero polynomial yields (0, 0).
func (r *Ring[E]) RemoveFactor(p *Polynomial[E]) (int, *Polynomial[E]) {
	v, ok := p.Valuation()
	if !ok {
		return 0, r.Zero()
	}

	u, _ := r.ShiftRight(p, v)

	return v, u
}

// ---------- evaluation ----------

// Evaluate computes p(x) by Horner's rule.
func (r *Ring[E]) Evaluate(p *Polynomial[E], x E) E {
	result := r.coeff.Zero()
	for i := len(p.coeff) - 1; i >= 0; i-- {
		result = r.coeff.Add(p.coeff[i], r.coeff.Mul(x, result))
	}

	return result
}
