package primer

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSieve is called after each completed sieve invocation.
	// n is the bound, primes is the number of primes produced,
	// duration is the total time taken.
	RecordSieve(n uint64, primes int, duration time.Duration)

	// RecordBootstrap is called after the base-prime bootstrap phase.
	// limit is floor(sqrt(n)), basePrimes is the number of sieving primes found.
	RecordBootstrap(limit uint64, basePrimes int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSieve(uint64, int, time.Duration)     {}
func (NoopMetricsCollector) RecordBootstrap(uint64, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SieveCount          atomic.Int64
	SieveTotalNanos     atomic.Int64
	PrimesTotal         atomic.Int64
	BootstrapCount      atomic.Int64
	BootstrapTotalNanos atomic.Int64
}

// RecordSieve records a completed sieve invocation.
func (m *BasicMetricsCollector) RecordSieve(n uint64, primes int, duration time.Duration) {
	m.SieveCount.Add(1)
	m.SieveTotalNanos.Add(duration.Nanoseconds())
	m.PrimesTotal.Add(int64(primes))
}

// RecordBootstrap records a base-prime bootstrap phase.
func (m *BasicMetricsCollector) RecordBootstrap(limit uint64, basePrimes int, duration time.Duration) {
	m.BootstrapCount.Add(1)
	m.BootstrapTotalNanos.Add(duration.Nanoseconds())
}

// AverageSieveDuration returns the mean duration of recorded sieve invocations.
func (m *BasicMetricsCollector) AverageSieveDuration() time.Duration {
	count := m.SieveCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(m.SieveTotalNanos.Load() / count)
}
