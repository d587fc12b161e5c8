/*
Package gintsieve enumerates Gaussian primes with a sieve of Eratosthenes.

Gaussian integers a+bi are the lattice points of the complex plane; a Gaussian
prime is one which cannot be written as a product of two non-units. Every
Gaussian prime has four associates {z, iz, −z, −iz}. This package returns
exactly one of them, the representative with a > 0 and b ≥ 0, i.e. the one in
the first quadrant including the positive real axis and excluding the positive
imaginary axis.

The sieve array holds one cell per lattice point of the quarter disk
a² + b² ≤ x. Candidates are visited in order of ascending norm. An unmarked
candidate is a prime; all of its multiples inside the disk are then crossed
off, either by stepping through the sublattice it generates or, cheaper, by
translating the additive subgroup of its multiples modulo its norm.

Usage:

	primes, err := gintsieve.ComputeGaussianPrimes(1000, true)

or, for access to the array and diagnostics:

	s, err := gintsieve.NewSieve(1000, gintsieve.WithBackend("packed"))
	...
	err = s.Run()
	n := s.Count()

Further Reading

	https://en.wikipedia.org/wiki/Gaussian_integer
	https://en.wikipedia.org/wiki/Sieve_of_Eratosthenes
	https://en.wikipedia.org/wiki/Gaussian_moat

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package gintsieve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gintsieve'
func tracer() tracing.Trace {
	return tracing.Select("gintsieve")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
