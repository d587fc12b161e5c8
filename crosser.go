package gintsieve

import (
	"fmt"
	"strings"
)

// Crosser marks all multiples of a prime p inside a sieve array as composite,
// p itself included.
type Crosser func(arr *SieveArray, p Point) error

// Method selects one of the two crossing algorithms.
type Method int

const (
	// SubgroupTranslation crosses off with CrossOffSubgroup (default).
	SubgroupTranslation Method = iota
	// LatticeStepping crosses off with CrossOffLattice.
	LatticeStepping
)

func (m Method) String() string {
	switch m {
	case SubgroupTranslation:
		return "subgroup"
	case LatticeStepping:
		return "lattice"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod finds a crossing method from its name, "subgroup" or "lattice".
// Comparison is case-insensitive.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "subgroup", "":
		return SubgroupTranslation, nil
	case "lattice":
		return LatticeStepping, nil
	}
	return 0, fmt.Errorf("crossing method %q: %w", name, ErrUnknownMethod)
}

// Crosser returns the crossing function for m.
func (m Method) Crosser() (Crosser, error) {
	switch m {
	case SubgroupTranslation:
		return CrossOffSubgroup, nil
	case LatticeStepping:
		return CrossOffLattice, nil
	}
	return nil, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
}

// CrossOffLattice crosses off the multiples of p = a+bi by walking the
// sublattice spanned by (a, b) and (−b, a).
//
// The multiple (c+di)(a+bi) = (ac−bd) + (ad+bc)i stays inside the array
// whenever c²+d² ≤ x/N(p). Cofactors c, d ≥ 0 suffice to reach one associate
// of every multiple; products landing in the second quadrant are rotated
// back by −i. Coordinates are accumulated additively: the outer accumulator
// steps by (a, b) per c, the inner one by (−b, a) per d.
//
// p need not be prime.
func CrossOffLattice(arr *SieveArray, p Point) error {
	if err := checkCandidate(arr, p); err != nil {
		return err
	}
	a, b := p.A, p.B
	q := arr.bound / p.Norm()
	cmax := isqrt(q)
	var outer Point // (ac, bc)
	for c := int64(0); c <= cmax; c++ {
		m := outer
		dmax := isqrt(q - c*c)
		for d := int64(0); d <= dmax; d++ {
			if m.A <= 0 {
				r := m.RotateNegI()
				arr.strike(r.A, r.B)
			} else {
				arr.strike(m.A, m.B)
			}
			m.A -= b
			m.B += a
		}
		outer.A += a
		outer.B += b
	}
	return nil
}

// CrossOffSubgroup crosses off the multiples of a prime p = a+bi by
// translating residue classes.
//
// For b ≠ 0, N(p) = a²+b² is a rational prime q, and the multiples of p form
// an additive subgroup of order q in Z[i]/qZ[i], generated by (a, b). Every
// multiple in the first quadrant is (s+kq, t+jq) for one of the q
// representatives (s, t) and k, j ≥ 0.
// For b = 0, a is a rational prime q ≡ 3 (mod 4) and the subgroup is trivial:
// the multiples are (kq, jq).
//
// This is correct for primes only. To guard against misuse, p has to be
// marked ConfirmedPrime in arr, otherwise ErrNotConfirmed is returned.
func CrossOffSubgroup(arr *SieveArray, p Point) error {
	if err := checkCandidate(arr, p); err != nil {
		return err
	}
	if arr.status(p.A, p.B) != ConfirmedPrime {
		return fmt.Errorf("subgroup crossing for %v: %w", p, ErrNotConfirmed)
	}
	a, b := int64(p.A), int64(p.B)
	q, reps := a, int64(1) // inert
	if b != 0 {
		q = a*a + b*b
		reps = q
	}
	x := arr.bound
	r := isqrt(x)
	s, t := a%q, b%q
	for k := int64(0); k < reps; k++ {
		if t <= r { // t < q may exceed √x, compare before squaring
			umax := isqrt(x - t*t)
			for u := s; u <= umax; u += q {
				vmax := isqrt(x - u*u)
				for v := t; v <= vmax; v += q {
					arr.strike(int(u), int(v))
				}
			}
		}
		s = (s + a) % q
		t = (t + b) % q
	}
	return nil
}

// checkCandidate checks that p is a canonical point inside arr.
func checkCandidate(arr *SieveArray, p Point) error {
	if p.A < 1 || p.B < 0 {
		return fmt.Errorf("%v is not of the form a+bi, a>0, b≥0: %w", p, ErrInvalidInput)
	}
	if !arr.Contains(p.A, p.B) {
		return arr.outOfRange(p.A, p.B)
	}
	return nil
}
