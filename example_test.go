package primer_test

import (
	"fmt"

	"github.com/whisprer/primer"
	"github.com/whisprer/primer/primeset"
)

func ExampleSieve() {
	primes, err := primer.Sieve(30)
	if err != nil {
		panic(err)
	}
	fmt.Println(primes)
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

func ExampleSieve_parallel() {
	primes, err := primer.Sieve(500_000, primer.WithWorkers(4))
	if err != nil {
		panic(err)
	}
	fmt.Println(len(primes), primes[len(primes)-1])
	// Output: 41538 499979
}

func ExampleIsqrt() {
	fmt.Println(primer.Isqrt(10))
	fmt.Println(primer.Isqrt(^uint64(0)))
	// Output:
	// 3
	// 4294967295
}

func Example_primeset() {
	primes, _ := primer.Sieve(1_000_000)
	set := primeset.New(primes, 1_000_000)

	pi, _ := set.Pi(1_000)
	nth, _ := set.Nth(9_999)
	fmt.Println(pi, nth)
	// Output: 168 104729
}
