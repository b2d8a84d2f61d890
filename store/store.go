package store

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

var (
	// ErrBadMagic is returned when the input does not start with a prime-table header.
	ErrBadMagic = errors.New("not a prime table: bad magic")

	// ErrUnsupportedVersion is returned for tables written by an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported prime table version")

	// ErrCorrupt is returned when the table body contradicts its header.
	ErrCorrupt = errors.New("corrupt prime table")
)

var magic = [4]byte{'P', 'R', 'M', 'R'}

// formatVersion is the current table format. Bump on incompatible layout changes.
const formatVersion = 1

// header layout: magic (4) | version (1) | bound (8, LE) | count (8, LE)
const headerSize = 4 + 1 + 8 + 8

// maxPreallocEntries caps the allocation made from an untrusted header
// count (8 MiB of uint64s). Larger tables grow while decoding; a hostile
// count fails decode long before the cap matters.
const maxPreallocEntries = 1 << 20

// Write writes primes as a prime table. primes must be the strictly
// ascending output of a sieve over [2, bound].
func Write(w io.Writer, bound uint64, primes []uint64) error {
	var hdr [headerSize]byte
	copy(hdr[:4], magic[:])
	hdr[4] = formatVersion
	binary.LittleEndian.PutUint64(hdr[5:13], bound)
	binary.LittleEndian.PutUint64(hdr[13:21], uint64(len(primes)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}

	var (
		buf  [binary.MaxVarintLen64]byte
		prev uint64
	)
	for i, p := range primes {
		if (i > 0 && p <= prev) || p > bound {
			zw.Close()
			return fmt.Errorf("store: prime %d at entry %d is not ascending within bound %d", p, i, bound)
		}
		n := binary.PutUvarint(buf[:], p-prev)
		if _, err := zw.Write(buf[:n]); err != nil {
			zw.Close()
			return fmt.Errorf("write gap: %w", err)
		}
		prev = p
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zstd stream: %w", err)
	}
	return nil
}

// Read reads a prime table, returning the sieved bound and the primes.
func Read(r io.Reader) (uint64, []uint64, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrBadMagic, err)
	}
	if [4]byte(hdr[:4]) != magic {
		return 0, nil, ErrBadMagic
	}
	if hdr[4] != formatVersion {
		return 0, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr[4])
	}
	bound := binary.LittleEndian.Uint64(hdr[5:13])
	count := binary.LittleEndian.Uint64(hdr[13:21])
	if count > bound/2+1 {
		// More entries than odd numbers plus 2: header cannot be honest.
		return 0, nil, fmt.Errorf("%w: count %d exceeds bound %d", ErrCorrupt, count, bound)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer zr.Close()

	capHint := count
	if capHint > maxPreallocEntries {
		capHint = maxPreallocEntries
	}

	br := bufio.NewReader(zr)
	primes := make([]uint64, 0, capHint)
	var prev uint64
	for i := uint64(0); i < count; i++ {
		gap, err := binary.ReadUvarint(br)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: truncated at entry %d: %w", ErrCorrupt, i, err)
		}
		if gap == 0 && i > 0 {
			return 0, nil, fmt.Errorf("%w: duplicate entry %d", ErrCorrupt, i)
		}
		prev += gap
		if prev < 2 {
			return 0, nil, fmt.Errorf("%w: entry %d is not a prime value", ErrCorrupt, i)
		}
		if prev > bound {
			return 0, nil, fmt.Errorf("%w: entry %d exceeds bound", ErrCorrupt, i)
		}
		primes = append(primes, prev)
	}

	return bound, primes, nil
}

// WriteFile writes a prime table to the named file.
func WriteFile(name string, bound uint64, primes []uint64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, bound, primes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a prime table from the named file.
func ReadFile(name string) (uint64, []uint64, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()
	return Read(f)
}
