package gintsieve

import "fmt"

// Status is the sieve state of a lattice point.
type Status uint8

// A point starts Unvisited and ends either ConfirmedPrime or Composite.
const (
	Unvisited Status = iota
	Composite
	ConfirmedPrime
)

func (s Status) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Composite:
		return "composite"
	case ConfirmedPrime:
		return "prime"
	}
	return "<unknown>"
}

// SieveArray maps every lattice point (a, b) with a, b ≥ 0 and a²+b² ≤ x
// to its sieve status.
//
// Rows are indexed by the real part a ∈ [0, ⌊√x⌋], row a holds imaginary
// parts b ∈ [0, ⌊√(x−a²)⌋]. The units 1 and i and zero are Composite from
// the start.
type SieveArray struct {
	bound int64
	cells cellStore
}

// ArrayOption configures a sieve array.
type ArrayOption func(*arrayConfig) error

type arrayConfig struct {
	backend string
}

// WithArrayBackend selects the cell store of a sieve array, one of
// BackendDense (default) or BackendPacked.
func WithArrayBackend(name string) ArrayOption {
	return func(c *arrayConfig) error {
		if name != BackendDense && name != BackendPacked {
			return fmt.Errorf("array backend %q: %w", name, ErrUnknownBackend)
		}
		c.backend = name
		return nil
	}
}

// NewSieveArray allocates a sieve array for norm bound x.
// x is validated before anything is allocated.
func NewSieveArray(x int64, opts ...ArrayOption) (*SieveArray, error) {
	if err := checkBound(x); err != nil {
		return nil, err
	}
	conf := arrayConfig{backend: BackendDense}
	for _, opt := range opts {
		if err := opt(&conf); err != nil {
			return nil, err
		}
	}
	r := isqrt(x)
	rowLens := make([]int, r+1)
	for a := int64(0); a <= r; a++ {
		rowLens[a] = int(isqrt(x-a*a)) + 1
	}
	cells, err := newCellStore(conf.backend, rowLens)
	if err != nil {
		return nil, err
	}
	arr := &SieveArray{bound: x, cells: cells}
	for _, unit := range []Point{{0, 0}, {0, 1}, {1, 0}} {
		if arr.Contains(unit.A, unit.B) {
			arr.cells.Set(unit.A, unit.B, Composite)
		}
	}
	return arr, nil
}

// Bound returns the norm bound x of the array.
func (arr *SieveArray) Bound() int64 { return arr.bound }

// Rows returns the number of rows, ⌊√x⌋+1.
func (arr *SieveArray) Rows() int { return arr.cells.Rows() }

// RowLen returns the number of points in row a.
func (arr *SieveArray) RowLen(a int) int { return arr.cells.RowLen(a) }

// Contains is a predicate: is (a, b) covered by the array?
func (arr *SieveArray) Contains(a, b int) bool {
	if a < 0 || b < 0 || a >= arr.cells.Rows() {
		return false
	}
	return b < arr.cells.RowLen(a)
}

// StatusAt returns the status of point (a, b).
func (arr *SieveArray) StatusAt(a, b int) (Status, error) {
	if !arr.Contains(a, b) {
		return Unvisited, arr.outOfRange(a, b)
	}
	return arr.cells.Get(a, b), nil
}

// MarkComposite marks (a, b) as composite. Marking a point twice is harmless.
func (arr *SieveArray) MarkComposite(a, b int) error {
	if !arr.Contains(a, b) {
		return arr.outOfRange(a, b)
	}
	arr.cells.Set(a, b, Composite)
	return nil
}

// MarkPrime marks (a, b) as a confirmed prime.
func (arr *SieveArray) MarkPrime(a, b int) error {
	if !arr.Contains(a, b) {
		return arr.outOfRange(a, b)
	}
	arr.cells.Set(a, b, ConfirmedPrime)
	return nil
}

// Stats returns memory metrics for the array.
func (arr *SieveArray) Stats() ArrayStats {
	stats := arr.cells.Stats()
	stats.Bound = arr.bound
	return stats
}

// status and strike are unchecked accessors for the sieve's inner loops.
func (arr *SieveArray) status(a, b int) Status { return arr.cells.Get(a, b) }

func (arr *SieveArray) strike(a, b int) { arr.cells.Set(a, b, Composite) }

func (arr *SieveArray) outOfRange(a, b int) error {
	return fmt.Errorf("(%d,%d) with norm bound %d: %w", a, b, arr.bound, ErrOutOfRange)
}
