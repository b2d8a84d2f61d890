package primer

import (
	"fmt"

	"github.com/whisprer/primer/internal/cachesize"
)

type options struct {
	segmentBits int
	workers     int
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures a sieve invocation.
type Option func(*options)

// WithSegmentBits sets the segment window size in bits.
// Must be a positive multiple of 64.
//
// The default is sized to the L1 data cache of the host CPU (32 KiB when the
// cache topology cannot be probed). Segment size affects only performance and
// memory footprint, never output contents.
func WithSegmentBits(bits int) Option {
	return func(o *options) {
		o.segmentBits = bits
	}
}

// WithWorkers sets the number of concurrent segment workers.
//
// With workers > 1, segments are sieved in parallel over the shared
// read-only base-prime set and merged in segment order; output is identical
// to the sequential engine. The default is 1 (sequential).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func defaultOptions() *options {
	return &options{
		segmentBits: cachesize.SegmentBits(),
		workers:     1,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}

// validate rejects invalid configuration before any sieve state is built.
func (o *options) validate() error {
	if o.segmentBits <= 0 || o.segmentBits%64 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSegmentBits, o.segmentBits)
	}
	if o.workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.workers)
	}
	return nil
}

// DefaultSegmentBits returns the segment size in bits used when
// WithSegmentBits is not given: the probed L1 data cache size of the host
// CPU, or 262,144 bits (32 KiB) when the topology cannot be determined.
func DefaultSegmentBits() int {
	return cachesize.SegmentBits()
}
