package primer

import (
	"time"

	"github.com/whisprer/primer/internal/bitseg"
	"github.com/whisprer/primer/internal/numeric"
)

// Sieve returns every prime in [2, n] in strictly ascending order.
//
// n < 2 yields an empty result. The returned slice is owned by the caller;
// repeated calls with the same n and options yield identical sequences.
func Sieve(n uint64, opts ...Option) ([]uint64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	var primes []uint64
	if o.workers > 1 {
		primes = sieveParallel(n, o)
	} else {
		primes = sieveSegmented(n, o)
	}

	duration := time.Since(start)
	o.metrics.RecordSieve(n, len(primes), duration)
	o.logger.WithBound(n).WithWorkers(o.workers).Debug("sieve completed",
		"primes", len(primes),
		"segment_bits", o.segmentBits,
		"duration", duration,
	)

	return primes, nil
}

// FlatSieve returns every prime in [2, n] using a single flat bit buffer.
//
// It is the non-segmented reference engine: O(n) bit space, no windowing.
// Sieve outperforms it once the bit buffer outgrows the L1 data cache, but
// the two produce identical output for every n. FlatSieve also serves as
// the bootstrap that computes the sieving primes up to floor(sqrt(n)) for
// the segmented engine.
func FlatSieve(n uint64) []uint64 {
	if n < 2 {
		return nil
	}

	h := n / 2 // max half-index: bit i represents odd number 2i+1
	buf := bitseg.NewBuffer(int(h) + 1)
	buf.Reset(int(h) + 1)
	buf.Clear(0) // 1 is not prime

	sqrtN := numeric.Isqrt(n)

	// Strike phase: for each surviving half-index i, p = 2i+1 is prime;
	// odd multiples of p start at p*p (half-index 2i(i+1)) and are p apart
	// in half-index units.
	for i := uint64(1); i <= sqrtN/2; i++ {
		if !buf.Test(i) {
			continue
		}
		step := 2*i + 1
		for j := 2 * i * (i + 1); j <= h; j += step {
			buf.Clear(j)
		}
	}

	// Extraction phase: collect survivors, 2 first.
	r := make([]uint64, 0, numeric.PrimeCountUpper(n))
	r = append(r, 2)
	return buf.ExtractInto(r, 0, n)
}

// Isqrt returns the largest x with x*x <= n.
// Exact for every uint64 input, including the maximum value.
func Isqrt(n uint64) uint64 {
	return numeric.Isqrt(n)
}

// PrimeCountUpper returns an upper bound on the number of primes <= n,
// suitable for pre-sizing allocations.
func PrimeCountUpper(n uint64) int {
	return numeric.PrimeCountUpper(n)
}
