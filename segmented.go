package primer

import (
	"time"

	"github.com/whisprer/primer/internal/bitseg"
	"github.com/whisprer/primer/internal/numeric"
)

// sieveSegmented is the sequential segmented engine.
//
// It bootstraps the sieving primes up to floor(sqrt(n)) with the flat sieve,
// then walks the odd half-index space [0, n/2] in windows of segmentBits
// bits, reusing one buffer. Per window: reset to all-prime, strike
// composites for every base prime, then extract survivors. Strike and
// extraction are separate phases; extraction never begins until the strike
// pass over the window is complete.
func sieveSegmented(n uint64, o *options) []uint64 {
	if n < 2 {
		return nil
	}
	if n < 3 {
		return []uint64{2}
	}

	h := n / 2

	bootStart := time.Now()
	base := bootstrap(n)
	o.metrics.RecordBootstrap(numeric.Isqrt(n), len(base), time.Since(bootStart))

	result := make([]uint64, 0, numeric.PrimeCountUpper(n))
	result = append(result, 2)

	segBits := uint64(o.segmentBits)
	buf := bitseg.NewBuffer(o.segmentBits)

	for lo := uint64(0); ; lo += segBits {
		hi := lo + segBits - 1
		if hi > h {
			hi = h
		}

		buf.Reset(int(hi - lo + 1))
		if lo == 0 {
			buf.Clear(0) // half-index 0 is 1, not prime
		}

		strikeSegment(buf, base, lo, hi)
		result = buf.ExtractInto(result, lo, n)

		if hi == h {
			break
		}
	}

	return result
}

// bootstrap returns the odd sieving primes <= floor(sqrt(n)).
// 2 is excluded: even composites are never represented in the bit space.
func bootstrap(n uint64) []uint64 {
	small := FlatSieve(numeric.Isqrt(n))
	if len(small) == 0 {
		return nil
	}
	return small[1:]
}

// strikeSegment clears the bit of every odd multiple of every base prime
// within the window [lo, hi] of the half-index space.
//
// For prime p, striking starts at the half-index of p*p; when that point
// falls below the window it is advanced to the smallest half-index >= lo
// congruent to it modulo p, with a single modulo and no search loop.
func strikeSegment(buf *bitseg.Buffer, basePrimes []uint64, lo, hi uint64) {
	for _, p := range basePrimes {
		start := (p*p - 1) / 2
		if start < lo {
			if off := (lo - start) % p; off != 0 {
				start = lo + p - off
			} else {
				start = lo
			}
		}
		for j := start; j <= hi; j += p {
			buf.Clear(j - lo)
		}
	}
}
