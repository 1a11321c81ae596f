package ring

import (
	"errors"
	"math/big"
	"strconv"

	latring "github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is the field of integers modulo a prime, with uint64 elements
// held in reduced form.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("this package only supports prime fields. please use a prime order")
)

const maxBitUsage = 63

/*
NewPrimeField constructs the field of integers modulo the given prime.
Assumes you are using a prime; primality is probabilistically checked.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// Probably prime is 100% accurate for 64-bit numbers. Thus, we can use one base check.
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := latring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

// Generator returns a primitive root of the multiplicative group.
func (f *PrimeField) Generator() uint64 {
	return f.generator
}

func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

var (
	errNotPowerOfTwo = errors.New("n must be a power of 2")
	errNotDivisible  = errors.New("n must divide p-1")
	errNTooSmall     = errors.New("n must be >= 2")
)

func (f *PrimeField) GetRootOfUnity(n uint64) (uint64, error) {
	if n == 0 || n == 1 {
		return 0, errNTooSmall
	}

	if !isPowerOfTwo(n) {
		return 0, errNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return 0, errNotDivisible
	}

	// The nth root of unity is the generator raised to the power of (prime-1)/n
	// since g^(x) == 1 (mod p) iff x=p-1, then w=g^((p-1)/n) is not 1, and the following n powers of w != 1 too.
	// proof is by contradiction to g being the generator of the field.
	return f.powMod(f.generator, (f.prime-1)/n), nil
}

func isPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 }

func (f *PrimeField) FromInt64(v int64) uint64 {
	if v < 0 {
		return f.Neg(uint64(-v) % f.prime)
	}

	return uint64(v) % f.prime
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return f.prime - a
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b, mod uint64) uint64 {
	// full 64x64 product cannot overflow 128 bits.
	return uint128.From64(a).Mul(uint128.From64(b)).Mod64(mod)
}

func (f *PrimeField) powMod(base, exp uint64) uint64 {
	mod := f.prime

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 { // If exponent is odd, multiply base with x
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod) // Square the base
		exp /= 2                         // Halve the exponent
	}

	return x % mod
}

func (f *PrimeField) Pow(a uint64, n int64) (uint64, error) {
	if n >= 0 {
		return f.powMod(a, uint64(n)), nil
	}

	inv, err := f.Inverse(a)
	if err != nil {
		return 0, err
	}

	return f.powMod(inv, uint64(-n)), nil
}

func (f *PrimeField) IsZero(a uint64) bool   { return a%f.prime == 0 }
func (f *PrimeField) IsOne(a uint64) bool    { return a%f.prime == 1 }
func (f *PrimeField) Equal(a, b uint64) bool { return a%f.prime == b%f.prime }

func (f *PrimeField) IsUnit(a uint64) bool { return a%f.prime != 0 }

func (f *PrimeField) Inverse(a uint64) (uint64, error) {
	// Fermat's little theorem: a^(p) = a (mod p)
	// thus:
	// a^(p-2)*a^p = a^(2p-2) = a^(p-1)^2 = 1*1=1 (mod p)
	// a^(p-2) is the inverse of a
	if a%f.prime == 0 {
		return 0, ErrNotInvertible
	}

	return f.powMod(a, f.prime-2), nil
}

func (f *PrimeField) ExactDiv(a, b uint64) (uint64, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return 0, ErrDivisionByZero
	}

	return f.Mul(a, inv), nil
}

func (f *PrimeField) CanonicalUnit(a uint64) uint64 {
	if a%f.prime == 0 {
		return 1
	}

	return a % f.prime
}

func (f *PrimeField) Characteristic() *big.Int {
	return new(big.Int).SetUint64(f.prime)
}

func (f *PrimeField) String(a uint64) string {
	return strconv.FormatUint(a%f.prime, 10)
}

var _ Ring[uint64] = (*PrimeField)(nil)
