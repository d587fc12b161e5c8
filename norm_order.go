package gintsieve

import "sort"

// NormOrder returns all points (a, b) with a ≥ 1, b ≥ 0 and a²+b² ≤ x,
// sorted by ascending norm. Points of equal norm are ordered by ascending a.
//
// The sieve reads this list front to back while crossing off entries further
// down the list, therefore it is built completely before sieving starts.
func NormOrder(x int64) ([]Point, error) {
	if err := checkBound(x); err != nil {
		return nil, err
	}
	r := isqrt(x)
	order := make([]Point, 0, candidateCount(x, r))
	for a := int64(1); a <= r; a++ {
		bmax := isqrt(x - a*a)
		for b := int64(0); b <= bmax; b++ {
			order = append(order, Point{A: int(a), B: int(b)})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		return lessByNorm(order[i], order[j])
	})
	return order, nil
}

// candidateCount is a capacity hint for the candidate list: there are about
// πx/4 candidates, which is more than 3x/4.
func candidateCount(x int64, r int64) int {
	return int(x/4*3 + r)
}
