package testutil

import "github.com/bits-and-blooms/bitset"

// IsPrime reports whether v is prime, by trial division.
// Exhaustive and slow; intended as ground truth for small values.
func IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	if v%2 == 0 {
		return v == 2
	}
	for d := uint64(3); d <= v/d; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// NaiveSieve returns all primes <= n using a textbook full-range sieve.
//
// Every integer gets its own bit (no odd-only compression, no segmentation,
// no packed-word extraction), so its output is an independent reference for
// the optimized engines.
func NaiveSieve(n uint64) []uint64 {
	if n < 2 {
		return nil
	}

	composite := bitset.New(uint(n + 1))
	for i := uint64(2); i <= n/i; i++ {
		if composite.Test(uint(i)) {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite.Set(uint(j))
		}
	}

	var primes []uint64
	for v := uint64(2); v <= n; v++ {
		if !composite.Test(uint(v)) {
			primes = append(primes, v)
		}
	}
	return primes
}
