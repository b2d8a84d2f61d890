package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsqrt_KnownValues(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{15, 3},
		{16, 4},
		{1 << 52, 1 << 26},
		{(1 << 52) - 1, (1 << 26) - 1},
		{(1 << 52) + 1, 1 << 26},
		{math.MaxUint64, 4294967295},
		{math.MaxUint64 - 1, 4294967295},
		{4294967295 * 4294967295, 4294967295},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Isqrt(tt.n), "Isqrt(%d)", tt.n)
	}
}

func TestIsqrt_Property(t *testing.T) {
	// x*x <= n and (x+1)*(x+1) > n (or overflows) for a spread of inputs.
	inputs := []uint64{
		0, 1, 2, 3, 5, 10, 99, 100, 101, 65535, 65536, 65537,
		1<<32 - 1, 1 << 32, 1<<32 + 1,
		1<<52 - 1, 1 << 52, 1<<52 + 1,
		1<<63 - 1, 1 << 63, math.MaxUint64,
	}

	for _, n := range inputs {
		x := Isqrt(n)

		sq, ok := CheckedMul(x, x)
		assert.True(t, ok, "Isqrt(%d)=%d: x*x overflows", n, x)
		assert.LessOrEqual(t, sq, n, "Isqrt(%d)=%d: x*x > n", n, x)

		next, ok := CheckedMul(x+1, x+1)
		if ok {
			assert.Greater(t, next, n, "Isqrt(%d)=%d: (x+1)^2 <= n", n, x)
		}
	}
}

func TestIsqrt_ExhaustiveSmall(t *testing.T) {
	for n := uint64(0); n <= 100_000; n++ {
		x := Isqrt(n)
		if x*x > n || (x+1)*(x+1) <= n {
			t.Fatalf("Isqrt(%d) = %d is wrong", n, x)
		}
	}
}

func TestCheckedMul(t *testing.T) {
	got, ok := CheckedMul(3, 7)
	assert.True(t, ok)
	assert.Equal(t, uint64(21), got)

	_, ok = CheckedMul(1<<32, 1<<32)
	assert.False(t, ok)

	got, ok = CheckedMul(1<<32-1, 1<<32-1)
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<32-1)*uint64(1<<32-1), got)

	_, ok = CheckedMul(math.MaxUint64, 2)
	assert.False(t, ok)

	got, ok = CheckedMul(math.MaxUint64, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestPrimeCountUpper(t *testing.T) {
	// Known prime counts; the estimate must never fall below them.
	known := map[uint64]int{
		0:       0,
		1:       0,
		2:       1,
		9:       4,
		10:      4,
		100:     25,
		1_000:   168,
		10_000:  1_229,
		100_000: 9_592,
		500_000: 41_538,
	}

	for n, pi := range known {
		assert.GreaterOrEqual(t, PrimeCountUpper(n), pi, "PrimeCountUpper(%d)", n)
	}
}
