package gintsieve

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Errors reported by the sieve. Clients should test with errors.Is, as most
// errors are wrapped with context.
var (
	// ErrInvalidInput is returned for a negative or non-integer norm bound.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOverflow is returned for norm bounds whose sieve would exceed the
	// integer range guaranteed by this package.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrOutOfRange is returned for array access outside the disk of the sieve array.
	ErrOutOfRange = errors.New("point outside of sieve array")
	// ErrNotConfirmed is returned by the subgroup crosser for a point which
	// has not been confirmed prime.
	ErrNotConfirmed = errors.New("point is not a confirmed prime")
	// ErrUnknownMethod is returned for an unknown crossing method name.
	ErrUnknownMethod = errors.New("unknown crossing method")
	// ErrUnknownBackend is returned for an unknown array backend name.
	ErrUnknownBackend = errors.New("unknown array backend")
)

// MaxBound is the largest norm bound accepted. Coordinates inside the array
// stay at most √MaxBound = 2³⁰; the crossing algorithms square a coordinate
// only after checking it against ⌊√x⌋, so no square exceeds MaxBound.
const MaxBound int64 = 1 << 60

// checkBound validates a norm bound before anything gets allocated.
func checkBound(x int64) error {
	if x < 0 {
		return fmt.Errorf("norm bound %d is negative: %w", x, ErrInvalidInput)
	}
	if x > MaxBound {
		return fmt.Errorf("norm bound %d exceeds %d: %w", x, MaxBound, ErrOverflow)
	}
	// number of cells is πx/4 + O(√x)
	cells := math.Pi/4*float64(x) + 2*math.Sqrt(float64(x)) + 2
	if cells >= float64(math.MaxInt) {
		return fmt.Errorf("norm bound %d needs more cells than addressable on this platform: %w",
			x, ErrOverflow)
	}
	return nil
}

// ParseBound parses a norm bound from its decimal text representation.
// Text which is not an integer (e.g., "12.5") is reported as ErrInvalidInput,
// integers beyond int64 as ErrOverflow.
func ParseBound(s string) (int64, error) {
	s = strings.TrimSpace(s)
	x, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("norm bound %q: %w", s, ErrOverflow)
		}
		return 0, fmt.Errorf("norm bound %q is not an integer: %w", s, ErrInvalidInput)
	}
	if err = checkBound(x); err != nil {
		return 0, err
	}
	return x, nil
}
