// Package cachesize derives the default sieve segment size from the host
// CPU's cache topology.
package cachesize

import "github.com/klauspost/cpuid/v2"

// FallbackSegmentBytes is used when the L1 data cache size cannot be
// probed. 32 KiB is safe for virtually all x86 and ARM cores.
const FallbackSegmentBytes = 32 * 1024

// SegmentBits returns the default segment window size in bits: one bit per
// byte of L1 data cache times eight, i.e. the whole L1d filled with packed
// candidate bits.
func SegmentBits() int {
	l1d := cpuid.CPU.Cache.L1D
	if l1d <= 0 {
		l1d = FallbackSegmentBytes
	}
	return l1d * 8
}
