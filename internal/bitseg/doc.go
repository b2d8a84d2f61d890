// Package bitseg provides a reusable bit-packed window over the odd-only
// candidate space of a prime sieve.
//
// Layout:
//   - One bit per odd number: bit b of word w encodes half-index w*64+b,
//     representing the odd integer 2*(w*64+b)+1
//   - Bit value 1 means "still believed prime", 0 means "known composite"
//   - Plain []uint64 words, single-owner, no atomics
//
// The buffer is allocated once and logically reset per window via Reset,
// never reallocated. Extraction uses a count-trailing-zeros / clear-lowest-bit
// loop so cost is proportional to the number of surviving bits, not to the
// window width.
package bitseg
