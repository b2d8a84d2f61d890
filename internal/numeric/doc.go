// Package numeric provides overflow-safe integer arithmetic for the sieve.
//
// The functions here never wrap silently: squaring near the 32-bit boundary
// uses a checked multiply, so Isqrt is exact for every uint64 input up to
// and including the maximum value.
package numeric
