package gintsieve

import "fmt"

// ArrayStats reports memory metrics for a sieve array.
type ArrayStats struct {
	Backend string // name of the cell store
	Bound   int64  // norm bound x
	Rows    int    // ⌊√x⌋ + 1
	Cells   int    // number of lattice points with norm ≤ x in the first quadrant
	Bytes   int    // memory held by the cell store
}

// Utilization is the share of allocated bits actually carrying cell status.
func (s ArrayStats) Utilization() float64 {
	if s.Bytes == 0 {
		return 0
	}
	return float64(s.Cells*statusBits) / float64(s.Bytes*8)
}

func (s ArrayStats) String() string {
	return fmt.Sprintf("%s(x=%d, rows=%d, cells=%d, bytes=%d)",
		s.Backend, s.Bound, s.Rows, s.Cells, s.Bytes)
}

// statusBits is the number of bits needed for a Status.
const statusBits = 2

// cellStore is the internal backend abstraction for sieve array storage.
// Coordinates are not range-checked.
type cellStore interface {
	Get(a, b int) Status
	Set(a, b int, s Status)
	Rows() int
	RowLen(a int) int
	Stats() ArrayStats
}

// Backend names accepted by WithBackend.
const (
	BackendDense  = "dense"
	BackendPacked = "packed"
)

func newCellStore(backend string, rowLens []int) (cellStore, error) {
	switch backend {
	case BackendDense, "":
		return newDenseStore(rowLens), nil
	case BackendPacked:
		return newPackedStore(rowLens), nil
	}
	return nil, fmt.Errorf("array backend %q: %w", backend, ErrUnknownBackend)
}
