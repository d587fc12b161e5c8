package gintsieve

import "sort"

// Primes returns the points confirmed prime, row by row. Row 0 (the
// imaginary axis) is skipped, it never holds a canonical representative.
// If sortByNorm is set, the result is sorted with SortByNorm.
//
// Before Run there are no confirmed primes.
func (s *Sieve) Primes(sortByNorm bool) []Point {
	primes := make([]Point, 0, s.found)
	arr := s.array
	for a := 1; a < arr.Rows(); a++ {
		for b := 0; b < arr.RowLen(a); b++ {
			if arr.status(a, b) == ConfirmedPrime {
				primes = append(primes, Point{A: a, B: b})
			}
		}
	}
	if sortByNorm {
		SortByNorm(primes)
	}
	return primes
}

// Count returns the number of primes found, one per associate class.
func (s *Sieve) Count() int {
	n := 0
	arr := s.array
	for a := 1; a < arr.Rows(); a++ {
		for b := 0; b < arr.RowLen(a); b++ {
			if arr.status(a, b) == ConfirmedPrime {
				n++
			}
		}
	}
	return n
}

// CountWithAssociates returns the number of Gaussian primes with norm up to
// x, counting all four associates of each.
func (s *Sieve) CountWithAssociates() int {
	return 4 * s.Count()
}

// SortByNorm sorts points by ascending norm, points of equal norm by
// ascending real part.
func SortByNorm(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return lessByNorm(points[i], points[j])
	})
}
