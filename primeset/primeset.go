package primeset

import (
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ErrOutOfBound is returned when a query value exceeds the sieved bound.
var ErrOutOfBound = errors.New("value exceeds sieved bound")

// ErrNoSuchIndex is returned when Nth is asked for more primes than the set holds.
var ErrNoSuchIndex = errors.New("prime index out of range")

// Set is an immutable queryable view over a sieve result.
// It wraps a 64-bit Roaring bitmap; all queries are read-only and safe for
// concurrent use after construction.
type Set struct {
	rb    *roaring64.Bitmap
	bound uint64
}

// New builds a Set from primes, which must be the complete ascending output
// of a sieve over [2, bound] (e.g. primer.Sieve(bound)).
func New(primes []uint64, bound uint64) *Set {
	rb := roaring64.New()
	rb.AddMany(primes)
	return &Set{
		rb:    rb,
		bound: bound,
	}
}

// Bound returns the sieved bound.
func (s *Set) Bound() uint64 {
	return s.bound
}

// Count returns the number of primes in the set.
func (s *Set) Count() uint64 {
	return s.rb.GetCardinality()
}

// Contains reports whether v is prime.
// Returns ErrOutOfBound if v exceeds the sieved bound.
func (s *Set) Contains(v uint64) (bool, error) {
	if v > s.bound {
		return false, fmt.Errorf("%w: %d > %d", ErrOutOfBound, v, s.bound)
	}
	return s.rb.Contains(v), nil
}

// Pi returns the number of primes <= x (the prime-counting function).
// Returns ErrOutOfBound if x exceeds the sieved bound.
func (s *Set) Pi(x uint64) (uint64, error) {
	if x > s.bound {
		return 0, fmt.Errorf("%w: %d > %d", ErrOutOfBound, x, s.bound)
	}
	return s.rb.Rank(x), nil
}

// Nth returns the i-th prime, 0-indexed: Nth(0) is 2.
func (s *Set) Nth(i uint64) (uint64, error) {
	v, err := s.rb.Select(i)
	if err != nil {
		return 0, fmt.Errorf("%w: %d", ErrNoSuchIndex, i)
	}
	return v, nil
}

// Max returns the largest prime in the set, or 0 if the set is empty.
func (s *Set) Max() uint64 {
	if s.rb.IsEmpty() {
		return 0
	}
	return s.rb.Maximum()
}

// Iterator returns an ascending iterator over the primes in the set.
func (s *Set) Iterator() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
