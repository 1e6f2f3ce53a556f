// Package prime provides the primality oracle and prime enumeration used by
// the Goldbach analyzer. Both functions are pure and total: every integer
// input maps to a defined result, and no state is shared between calls.
//
// The implementation is deliberately trial division, not a sieve. The
// application targets interactive ranges (low tens of thousands); at that
// scale the 6k±1 wheel keeps single checks well under a microsecond, and
// keeping the enumerator on top of the oracle keeps the complexity profile
// predictable for callers that interleave UI work between numbers.
package prime

// IsPrime reports whether n is prime using 6k±1 trial division.
//
// Candidates divisible by 2 or 3 are rejected up front; the remaining
// divisor candidates are exactly the integers of the form 6k-1 and 6k+1,
// tested while their square does not exceed n. O(sqrt n) time, O(1) space.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Primes returns all primes up to limit inclusive, in ascending order.
// A limit below 2 yields an empty slice. The sequence is complete: every
// prime in [2, limit] appears exactly once, with no gaps.
//
// O(limit·sqrt(limit)) time. For the interactive workloads this package
// serves that beats the bookkeeping cost of a sieve; callers that need
// sieve-scale enumeration are outside this package's design envelope.
func Primes(limit int) []int {
	primes := []int{}
	for n := 2; n <= limit; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}
