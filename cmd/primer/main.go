// Command primer enumerates primes with the segmented bit-packed sieve and
// reports timing, either as text or JSON. Results can be saved as a prime
// table for later reuse.
//
// Usage:
//
//	primer -n 500000
//	primer -n 1000000000 -workers 8 -json
//	primer -n 100000000 -o primes.tbl
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/whisprer/primer"
	"github.com/whisprer/primer/store"
)

type report struct {
	Bound       uint64   `json:"bound"`
	Count       int      `json:"count"`
	First       []uint64 `json:"first"`
	Last        []uint64 `json:"last"`
	SegmentBits int      `json:"segment_bits"`
	Workers     int      `json:"workers"`
	ElapsedMS   float64  `json:"elapsed_ms"`
}

func main() {
	var (
		n           = flag.Uint64("n", 500_000, "sieve bound (inclusive)")
		segmentBits = flag.Int("segment-bits", 0, "segment size in bits (0 = probe L1d)")
		workers     = flag.Int("workers", 1, "concurrent segment workers")
		jsonOut     = flag.Bool("json", false, "emit the report as JSON")
		out         = flag.String("o", "", "write the result as a prime table to this file")
		quiet       = flag.Bool("quiet", false, "suppress the report (useful with -o)")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	opts := []primer.Option{
		primer.WithWorkers(*workers),
	}
	if *segmentBits > 0 {
		opts = append(opts, primer.WithSegmentBits(*segmentBits))
	}
	if *verbose {
		opts = append(opts, primer.WithLogger(primer.NewTextLogger(slog.LevelDebug)))
	}

	effectiveBits := *segmentBits
	if effectiveBits == 0 {
		effectiveBits = primer.DefaultSegmentBits()
	}

	start := time.Now()
	primes, err := primer.Sieve(*n, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "primer:", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if *out != "" {
		if err := store.WriteFile(*out, *n, primes); err != nil {
			fmt.Fprintln(os.Stderr, "primer: write table:", err)
			os.Exit(1)
		}
	}

	if *quiet {
		return
	}

	r := report{
		Bound:       *n,
		Count:       len(primes),
		First:       head(primes, 10),
		Last:        tail(primes, 10),
		SegmentBits: effectiveBits,
		Workers:     *workers,
		ElapsedMS:   float64(elapsed.Microseconds()) / 1000,
	}

	if *jsonOut {
		data, err := gojson.MarshalIndent(r, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "primer:", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Segmented bit-packed sieve\n\n")
	fmt.Printf("Segment size: %d KiB (%d bits)\n", effectiveBits/8/1024, effectiveBits)
	fmt.Printf("Generated %d primes up to %d\n", r.Count, r.Bound)
	fmt.Printf("Time: %v\n", elapsed)
	fmt.Printf("First 10 primes: %v\n", r.First)
	fmt.Printf("Last 10 primes:  %v\n", r.Last)
}

func head(s []uint64, k int) []uint64 {
	if len(s) < k {
		k = len(s)
	}
	return s[:k]
}

func tail(s []uint64, k int) []uint64 {
	if len(s) < k {
		k = len(s)
	}
	return s[len(s)-k:]
}
