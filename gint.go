package gintsieve

import "fmt"

// Point is a lattice point (A, B) standing for the Gaussian integer A+Bi.
type Point struct {
	A, B int
}

// Norm returns A²+B².
func (p Point) Norm() int64 {
	a, b := int64(p.A), int64(p.B)
	return a*a + b*b
}

// RotateNegI multiplies p by −i, i.e. maps (u, v) to (v, −u).
// It takes points of the second quadrant to the first quadrant and points
// of the positive imaginary axis to the positive real axis.
func (p Point) RotateNegI() Point {
	return Point{A: p.B, B: -p.A}
}

// Mul returns the product of two Gaussian integers.
func (p Point) Mul(q Point) Point {
	return Point{A: p.A*q.A - p.B*q.B, B: p.A*q.B + p.B*q.A}
}

// Canonical returns the associate of p with A > 0 and B ≥ 0.
// Zero is its own canonical form.
func (p Point) Canonical() Point {
	if p.A == 0 && p.B == 0 {
		return p
	}
	for p.A <= 0 || p.B < 0 {
		p = p.RotateNegI()
	}
	return p
}

// Associates returns p, ip, −p and −ip.
func (p Point) Associates() [4]Point {
	return [4]Point{
		p,
		{A: -p.B, B: p.A},
		{A: -p.A, B: -p.B},
		{A: p.B, B: -p.A},
	}
}

func (p Point) String() string {
	switch {
	case p.B == 0:
		return fmt.Sprintf("%d", p.A)
	case p.B < 0:
		return fmt.Sprintf("%d-%di", p.A, -p.B)
	}
	return fmt.Sprintf("%d+%di", p.A, p.B)
}

// lessByNorm orders points by norm, then by real part.
func lessByNorm(p, q Point) bool {
	np, nq := p.Norm(), q.Norm()
	if np != nq {
		return np < nq
	}
	return p.A < q.A
}
