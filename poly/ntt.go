package poly

import "github.com/jonathanmweiss/go-laurent/ring"

// nttField is the capability a coefficient ring must expose for the NTT
// multiplication fast path.
type nttField interface {
	ring.Ring[uint64]
	GetRootOfUnity(n uint64) (uint64, error)
}

// operand sizes below this stay on the schoolbook path.
const nttThreshold = 64

type twiddleSet struct {
	// For each stage s (m = 2<<s), fwd[s] (and inv[s]) has length m/2
	// holding w^j where w = psi^(n/m) for forward, and w = psiInv^(n/m) for inverse.
	fwd  [][]uint64
	inv  [][]uint64
	nInv uint64 // inverse of n (for inverse NTT scaling)
}

// mulNTT attempts a*b via forward transform, pointwise product and backward
// transform. Returns false when the coefficient ring lacks the capability,
// the operands are small, or no suitable root of unity exists.
func (r *Ring[E]) mulNTT(a, b *Polynomial[E]) (*Polynomial[E], bool) {
	f, ok := any(r.coeff).(nttField)
	if !ok || a.IsZero() || b.IsZero() {
		return nil, false
	}

	outLen := len(a.coeff) + len(b.coeff) - 1
	if outLen < nttThreshold {
		return nil, false
	}

	n := 1
	for n < outLen {
		n <<= 1
	}

	ts, err := r.getTwiddles(f, n)
	if err != nil {
		return nil, false
	}

	av := padUint64(a.coeff, n)
	bv := padUint64(b.coeff, n)

	nttTransform(f, av, ts.fwd)
	nttTransform(f, bv, ts.fwd)

	for i := range av {
		av[i] = f.Mul(av[i], bv[i])
	}

	nttTransform(f, av, ts.inv)

	// scale by n^{-1}
	for i := range av {
		av[i] = f.Mul(av[i], ts.nInv)
	}

	inner := make([]E, outLen)
	for i := range inner {
		inner[i] = any(av[i]).(E)
	}

	out := &Polynomial[E]{coeff: inner, ring: r.coeff}
	out.trim()

	return out, true
}

// padUint64 copies coefficients into a zero-padded power-of-two buffer. The
// element type is uint64 whenever the nttField assertion held.
func padUint64[E any](coeff []E, n int) []uint64 {
	out := make([]uint64, n)
	for i, c := range coeff {
		out[i] = any(c).(uint64)
	}

	return out
}

func (r *Ring[E]) getTwiddles(f nttField, n int) (*twiddleSet, error) {
	r.mu.RLock()
	if ts, ok := r.twiddles[n]; ok {
		r.mu.RUnlock()
		return ts, nil
	}
	r.mu.RUnlock()

	// Build outside the lock.
	psi, err := f.GetRootOfUnity(uint64(n))
	if err != nil {
		return nil, err
	}

	psiInv, err := f.Inverse(psi)
	if err != nil {
		return nil, err
	}

	nInv, err := f.Inverse(uint64(n))
	if err != nil {
		return nil, err
	}

	var fwd, inv [][]uint64

	// stages: m = 2,4,8,...,n  => stage index s = 0..(log2(n)-1)
	for m := 2; m <= n; m = m << 1 {
		half := m >> 1
		wmF, _ := f.Pow(psi, int64(n/m))    // forward stage root
		wmI, _ := f.Pow(psiInv, int64(n/m)) // inverse stage root

		rowF := make([]uint64, half)
		rowI := make([]uint64, half)

		wF := uint64(1)
		wI := uint64(1)
		for j := 0; j < half; j++ {
			rowF[j] = wF
			rowI[j] = wI
			wF = f.Mul(wF, wmF)
			wI = f.Mul(wI, wmI)
		}

		fwd = append(fwd, rowF)
		inv = append(inv, rowI)
	}

	ts := &twiddleSet{fwd: fwd, inv: inv, nInv: nInv}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have won the race; keep the first one.
	if existing, ok := r.twiddles[n]; ok {
		return existing, nil
	}

	r.twiddles[n] = ts

	return ts, nil
}

// nttTransform runs the in-place iterative butterfly network over xs using
// the per-stage twiddle rows (forward or inverse).
func nttTransform(f nttField, xs []uint64, stages [][]uint64) {
	n := len(xs)
	bitReverseInPlace(xs)

	// Stages: m = 2,4,8,...,n with precomputed ws per stage.
	for s, m := 0, 2; m <= n; s, m = s+1, m<<1 {
		half := m >> 1
		ws := stages[s] // length = half
		for k := 0; k < n; k += m {
			// breadth-first butterflies
			for j := 0; j < half; j++ {
				u := xs[k+j]
				t := f.Mul(ws[j], xs[k+j+half])
				xs[k+j] = f.Add(u, t)
				xs[k+j+half] = f.Sub(u, t)
			}
		}
	}
}

func bitReverseInPlace(xs []uint64) {
	n := len(xs)
	if n <= 1 {
		return
	}

	j := 0
	for i := 1; i < n-1; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j &= ^bit
			bit >>= 1
		}
		j |= bit
		if i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}
