package bitseg

import "math/bits"

// WordBits is the number of bits per word.
const WordBits = 64

// Buffer is a reusable packed bit window over the half-index space.
// It is not safe for concurrent use; each goroutine owns its own Buffer.
type Buffer struct {
	words []uint64
	valid int // bits in use since the last Reset
}

// NewBuffer creates a Buffer holding at least the given number of bits,
// rounded up to a whole number of words.
func NewBuffer(numBits int) *Buffer {
	if numBits < 1 {
		numBits = 1
	}
	return &Buffer{
		words: make([]uint64, (numBits+WordBits-1)/WordBits),
	}
}

// Bits returns the buffer capacity in bits.
func (b *Buffer) Bits() int {
	return len(b.words) * WordBits
}

// Valid returns the number of bits in use since the last Reset.
func (b *Buffer) Valid() int {
	return b.valid
}

// Reset marks the first numBits bits "prime" and clears every bit beyond
// them in the tail word, so extraction never reads past the window.
func (b *Buffer) Reset(numBits int) {
	numWords := (numBits + WordBits - 1) / WordBits
	for i := 0; i < numWords; i++ {
		b.words[i] = ^uint64(0)
	}
	if r := numBits % WordBits; r != 0 {
		b.words[numWords-1] = (uint64(1) << r) - 1
	}
	b.valid = numBits
}

// Clear strikes the bit at local index i.
func (b *Buffer) Clear(i uint64) {
	b.words[i>>6] &^= uint64(1) << (i & 63)
}

// Test reports whether the bit at local index i is still set.
func (b *Buffer) Test(i uint64) bool {
	return b.words[i>>6]&(uint64(1)<<(i&63)) != 0
}

// ExtractInto appends the odd integer value of every surviving bit to dst
// in ascending order and returns the extended slice.
//
// baseHalf is the absolute half-index of local bit 0; a local bit at index i
// yields the value 2*(baseHalf+i)+1. Values above limit are not appended;
// since values ascend, extraction stops at the first one past the limit.
func (b *Buffer) ExtractInto(dst []uint64, baseHalf, limit uint64) []uint64 {
	numWords := (b.valid + WordBits - 1) / WordBits
	for wi := 0; wi < numWords; wi++ {
		w := b.words[wi]
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			half := baseHalf + uint64(wi)<<6 + uint64(tz)
			v := 2*half + 1
			if v > limit {
				return dst
			}
			dst = append(dst, v)
			w &= w - 1 // clear lowest set bit
		}
	}
	return dst
}

// Count returns the number of surviving bits in the window.
func (b *Buffer) Count() int {
	count := 0
	numWords := (b.valid + WordBits - 1) / WordBits
	for i := 0; i < numWords; i++ {
		count += bits.OnesCount64(b.words[i])
	}
	return count
}
