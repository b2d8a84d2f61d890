// Package primer provides a cache-aware, bit-packed, segmented Sieve of
// Eratosthenes for enumerating primes.
//
// Primer is deterministic, exhaustive enumeration: every prime in [2, n] is
// produced in strictly ascending order, with working memory independent of n.
// It is not a cryptographic primality tool and performs no probabilistic
// testing beyond the sieved bound.
//
// # Quick Start
//
//	primes, _ := primer.Sieve(500_000)
//	fmt.Println(len(primes)) // 41538
//
// Tuned invocation:
//
//	primes, _ := primer.Sieve(1_000_000_000,
//	    primer.WithSegmentBits(48*1024*8), // 48 KiB L1d
//	    primer.WithWorkers(8),
//	)
//
// # Design
//
// The candidate space holds only odd numbers: odd v maps to half-index
// h = (v-1)/2, one bit per candidate, packed 64 per word. The range is
// processed in segments sized to the L1 data cache (probed at startup,
// 32 KiB fallback) so the strike loop never leaves the fastest cache level.
// Each segment is struck with the base primes up to floor(sqrt(n)), then
// survivors are extracted with a count-trailing-zeros loop that touches only
// set bits. The segment buffer is allocated once and logically reset per
// window, never reallocated.
//
// With WithWorkers(k), k > 1, segments are sieved concurrently over the
// shared read-only base-prime set; per-segment outputs are concatenated in
// segment order, so the result is identical to the sequential engine.
//
// # Companion packages
//
//   - primeset: immutable membership/rank/select queries over a sieve result
//   - store: a compact persisted prime-table format (varint deltas + zstd)
package primer
