package prime_test

import (
	"fmt"

	"goldbach/internal/prime"
)

func ExampleIsPrime() {
	fmt.Println(prime.IsPrime(97))
	fmt.Println(prime.IsPrime(98))
	// Output:
	// true
	// false
}

func ExamplePrimes() {
	fmt.Println(prime.Primes(30))
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}
