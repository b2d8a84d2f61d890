package primer_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisprer/primer"
	"github.com/whisprer/primer/testutil"
)

// piTable maps bounds to known prime counts.
var piTable = map[uint64]int{
	0:       0,
	1:       0,
	2:       1,
	3:       2,
	10:      4,
	100:     25,
	1_000:   168,
	10_000:  1_229,
	500_000: 41_538,
}

func TestSieve_KnownCounts(t *testing.T) {
	for n, pi := range piTable {
		primes, err := primer.Sieve(n)
		require.NoError(t, err)
		assert.Len(t, primes, pi, "π(%d)", n)
	}
}

func TestSieve_SmallBounds(t *testing.T) {
	for _, n := range []uint64{0, 1} {
		primes, err := primer.Sieve(n)
		require.NoError(t, err)
		assert.Empty(t, primes, "Sieve(%d)", n)
	}

	primes, err := primer.Sieve(2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, primes)

	primes, err = primer.Sieve(3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, primes)

	primes, err = primer.Sieve(20)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19}, primes)
}

func TestSieve_StrictlyAscending(t *testing.T) {
	primes, err := primer.Sieve(100_000)
	require.NoError(t, err)

	for i := 1; i < len(primes); i++ {
		require.Greater(t, primes[i], primes[i-1],
			"output not strictly ascending at index %d", i)
	}
}

func TestSieve_TrialDivisionCrossCheck(t *testing.T) {
	const n = 5_000

	primes, err := primer.Sieve(n)
	require.NoError(t, err)

	for _, p := range primes {
		assert.GreaterOrEqual(t, p, uint64(2))
		assert.LessOrEqual(t, p, uint64(n))
		assert.True(t, testutil.IsPrime(p), "%d reported prime", p)
	}

	// No prime may be missing either.
	assert.Equal(t, testutil.NaiveSieve(n), primes)
}

func TestSieve_MatchesFlat(t *testing.T) {
	bounds := []uint64{0, 1, 2, 3, 10, 100, 1_000, 10_000, 100_000, 500_000}

	// Include tiny segment sizes to force many windows and partial tails.
	for _, segBits := range []int{64, 128, 1024, primer.DefaultSegmentBits()} {
		for _, n := range bounds {
			want := primer.FlatSieve(n)
			got, err := primer.Sieve(n, primer.WithSegmentBits(segBits))
			require.NoError(t, err)
			assert.Equal(t, want, got, "n=%d segmentBits=%d", n, segBits)
		}
	}
}

func TestSieve_ParallelMatchesSequential(t *testing.T) {
	bounds := []uint64{0, 1, 2, 3, 10, 10_000, 500_000}

	for _, workers := range []int{2, 4, 8} {
		for _, n := range bounds {
			want, err := primer.Sieve(n, primer.WithSegmentBits(1024))
			require.NoError(t, err)

			got, err := primer.Sieve(n,
				primer.WithSegmentBits(1024),
				primer.WithWorkers(workers),
			)
			require.NoError(t, err)
			assert.Equal(t, want, got, "n=%d workers=%d", n, workers)
		}
	}
}

func TestSieve_Boundary500000(t *testing.T) {
	primes, err := primer.Sieve(500_000)
	require.NoError(t, err)

	require.NotEmpty(t, primes)
	assert.Equal(t, uint64(499_979), primes[len(primes)-1])

	// 499999 = 31 * 127 * 127 is composite and must be absent.
	i := sort.Search(len(primes), func(i int) bool { return primes[i] >= 499_999 })
	assert.True(t, i == len(primes) || primes[i] != 499_999)
}

func TestSieve_NthPrimeRegression(t *testing.T) {
	primes, err := primer.Sieve(500_000)
	require.NoError(t, err)

	require.Greater(t, len(primes), 10_001)
	assert.Equal(t, uint64(104_729), primes[9_999])
	assert.Equal(t, uint64(104_743), primes[10_000])
}

func TestSieve_Idempotent(t *testing.T) {
	first, err := primer.Sieve(50_000)
	require.NoError(t, err)

	second, err := primer.Sieve(50_000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSieve_InvalidOptions(t *testing.T) {
	_, err := primer.Sieve(100, primer.WithSegmentBits(63))
	assert.ErrorIs(t, err, primer.ErrInvalidSegmentBits)

	_, err = primer.Sieve(100, primer.WithSegmentBits(-64))
	assert.ErrorIs(t, err, primer.ErrInvalidSegmentBits)

	_, err = primer.Sieve(100, primer.WithWorkers(0))
	assert.ErrorIs(t, err, primer.ErrInvalidWorkers)
}

func TestSieve_Metrics(t *testing.T) {
	var mc primer.BasicMetricsCollector

	_, err := primer.Sieve(10_000, primer.WithMetricsCollector(&mc))
	require.NoError(t, err)

	assert.Equal(t, int64(1), mc.SieveCount.Load())
	assert.Equal(t, int64(1_229), mc.PrimesTotal.Load())
	assert.GreaterOrEqual(t, mc.BootstrapCount.Load(), int64(1))
}

func TestFlatSieve_KnownCounts(t *testing.T) {
	for n, pi := range piTable {
		assert.Len(t, primer.FlatSieve(n), pi, "π(%d)", n)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{(1 << 52) - 1, (1 << 26) - 1},
		{1 << 52, 1 << 26},
		{(1 << 52) + 1, 1 << 26},
		{^uint64(0), 4_294_967_295},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, primer.Isqrt(tt.n), "Isqrt(%d)", tt.n)
	}
}

func TestPrimeCountUpper(t *testing.T) {
	for n, pi := range piTable {
		assert.GreaterOrEqual(t, primer.PrimeCountUpper(n), pi, "PrimeCountUpper(%d)", n)
	}
}
