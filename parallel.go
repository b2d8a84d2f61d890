package primer

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/whisprer/primer/internal/bitseg"
	"github.com/whisprer/primer/internal/numeric"
)

// sieveParallel distributes segments over o.workers goroutines.
//
// Segments are embarrassingly parallel: each depends only on the immutable
// base-prime set and writes only to its own buffer and its own output slice.
// Ordering is restored deterministically by concatenating per-segment
// outputs in segment order, so the result is identical to sieveSegmented.
func sieveParallel(n uint64, o *options) []uint64 {
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

	segBits := uint64(o.segmentBits)
	numSegments := int(h/segBits) + 1
	outputs := make([][]uint64, numSegments)

	bufPool := sync.Pool{
		New: func() any { return bitseg.NewBuffer(o.segmentBits) },
	}

	var g errgroup.Group
	g.SetLimit(o.workers)

	for s := 0; s < numSegments; s++ {
		g.Go(func() error {
			lo := uint64(s) * segBits
			hi := lo + segBits - 1
			if hi > h {
				hi = h
			}

			buf := bufPool.Get().(*bitseg.Buffer)
			defer bufPool.Put(buf)

			buf.Reset(int(hi - lo + 1))
			if lo == 0 {
				buf.Clear(0)
			}

			strikeSegment(buf, base, lo, hi)
			outputs[s] = buf.ExtractInto(nil, lo, n)
			return nil
		})
	}

	// Workers never fail; Wait only synchronizes completion.
	_ = g.Wait()

	result := make([]uint64, 0, numeric.PrimeCountUpper(n))
	result = append(result, 2)
	for _, part := range outputs {
		result = append(result, part...)
	}
	return result
}
