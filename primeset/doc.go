// Package primeset provides immutable membership, rank, and select queries
// over the output of a prime sieve.
//
// A Set answers within its sieved bound only: the sieve is deterministic,
// exhaustive enumeration, so a query beyond the bound cannot be answered and
// returns ErrOutOfBound rather than a guess.
//
//	primes, _ := primer.Sieve(1_000_000)
//	set := primeset.New(primes, 1_000_000)
//
//	ok, _ := set.Contains(104729) // true
//	pi, _ := set.Pi(1_000)        // 168
//	p, _ := set.Nth(9_999)        // 104729
package primeset
