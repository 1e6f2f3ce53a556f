// Package goldbach enumerates prime pair decompositions of even integers,
// the core of the conjecture explorer. Every even integer greater than 2 is
// conjectured to be the sum of two primes; this package finds those pairs
// for single numbers and ranges.
//
// All functions are pure and never fail on numeric input: odd numbers,
// values at or below 2, and inverted ranges produce empty results rather
// than errors. Callers detect "no pairs" by emptiness, not by error checks.
package goldbach

import (
	"goldbach/internal/prime"
)

// Pair is one decomposition of an even number into two primes.
// P1 ≤ P2 always holds, so the mirror (P2, P1) is never emitted.
type Pair struct {
	P1 int
	P2 int
}

// Pairs returns every prime pair summing to even, ascending by P1.
//
// Odd input or input ≤ 2 yields an empty slice by policy: those numbers
// are outside the conjecture's domain, and the empty result is the defined
// answer rather than a failure.
//
// The scan walks the ascending prime sequence below even and stops once a
// prime passes even/2; pairs beyond that point are mirrors of ones already
// emitted, so early termination loses nothing.
func Pairs(even int) []Pair {
	if even <= 2 || even%2 != 0 {
		return []Pair{}
	}

	pairs := []Pair{}
	for _, p := range prime.Primes(even - 1) {
		if p > even/2 {
			break
		}
		if complement := even - p; prime.IsPrime(complement) {
			pairs = append(pairs, Pair{P1: p, P2: complement})
		}
	}
	return pairs
}

// Count returns the number of prime pairs summing to even. Defined as
// len(Pairs(even)); zero for inputs outside the conjecture's domain.
func Count(even int) int {
	return len(Pairs(even))
}
