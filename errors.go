package primer

import "errors"

var (
	// ErrInvalidSegmentBits is returned when the configured segment size is
	// not a positive multiple of 64 bits.
	ErrInvalidSegmentBits = errors.New("segment bits must be a positive multiple of 64")

	// ErrInvalidWorkers is returned when the configured worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")
)
