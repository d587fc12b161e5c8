package gintsieve

import (
	"fmt"

	"github.com/npillmayer/gintsieve/grid"
)

// denseStore keeps one byte per lattice point.
type denseStore struct {
	grid *grid.Dense
}

func newDenseStore(rowLens []int) *denseStore {
	return &denseStore{grid: grid.NewDense(rowLens)}
}

func (ds *denseStore) Get(a, b int) Status { return Status(ds.grid.Get(a, b)) }

func (ds *denseStore) Set(a, b int, s Status) { ds.grid.Set(a, b, uint8(s)) }

func (ds *denseStore) Rows() int { return ds.grid.Rows() }

func (ds *denseStore) RowLen(a int) int { return ds.grid.RowLen(a) }

func (ds *denseStore) String() string {
	return fmt.Sprintf("dense(rows=%d,cells=%d)", ds.grid.Rows(), ds.grid.Len())
}

func (ds *denseStore) Stats() ArrayStats {
	return ArrayStats{
		Backend: BackendDense,
		Rows:    ds.grid.Rows(),
		Cells:   ds.grid.Len(),
		Bytes:   ds.grid.SizeBytes(),
	}
}
