package numeric

import (
	"math"
	"math/bits"
)

// CheckedMul returns a*b and whether the product fits in a uint64.
func CheckedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// Isqrt returns the largest x with x*x <= n.
//
// The float64 square root seeds x to within 1 of the true root across the
// full uint64 range; at most two checked correction steps follow. Squaring
// is overflow-checked so x near 2^32 never wraps.
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	x := uint64(math.Sqrt(float64(n)))

	for x > 0 {
		sq, ok := CheckedMul(x, x)
		if ok && sq <= n {
			break
		}
		x--
	}
	for {
		sq, ok := CheckedMul(x+1, x+1)
		if !ok || sq > n {
			break
		}
		x++
	}

	return x
}

// PrimeCountUpper returns an upper bound on the number of primes <= n.
//
// For n >= 10 this is ceil(n/ln(n) * 1.15); the 15% margin absorbs the
// under-count of the raw n/ln(n) approximation at moderate n. The bound is
// used only to size allocations, never for correctness.
func PrimeCountUpper(n uint64) int {
	if n < 10 {
		return 4
	}
	nf := float64(n)
	return int(nf/math.Log(nf)*1.15) + 1
}
