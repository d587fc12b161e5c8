package gintsieve

import "fmt"

// ISqrt returns the largest integer m with m·m ≤ n.
//
// It uses Babylonian iteration, starting from n and stopping as soon as the
// sequence of approximations stops decreasing. A negative n is an error.
func ISqrt(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("integer square root of %d: %w", n, ErrInvalidInput)
	}
	return isqrt(n), nil
}

// isqrt is ISqrt for n ≥ 0.
func isqrt(n int64) int64 {
	x := n
	y := x/2 + x&1 // ⌈n/2⌉ without overflowing for n == MaxInt64
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
