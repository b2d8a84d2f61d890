// Package store persists sieve results as compact prime tables.
//
// A table is a self-describing binary file: a fixed header carrying a magic
// number, format version, sieved bound, and prime count, followed by a
// zstd-compressed stream of uvarint gaps between consecutive primes. Gap
// encoding keeps entries small (most gaps fit one byte well past 10^9) and
// zstd squeezes the remaining structure.
//
//	f, _ := os.Create("primes.tbl")
//	_ = store.Write(f, bound, primes)
//
//	bound, primes, err := store.ReadFile("primes.tbl")
//
// The format is versioned; Read rejects unknown versions and malformed
// input with typed errors instead of returning a partial table.
package store
