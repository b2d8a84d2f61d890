// Package testutil provides testing utilities for primer.
//
// This package is intended for use in tests and benchmarks only.
// It provides ground-truth prime generators that share nothing with the
// bit-packed engines, so differential tests cannot inherit their bugs.
//
// # Trial Division (Ground Truth)
//
//	testutil.IsPrime(104729) // true
//
// # Naive Reference Sieve
//
//	primes := testutil.NaiveSieve(500_000)
package testutil
