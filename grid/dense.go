/*
Package grid implements flat cell stores for the lattice points of a quarter
disk.

A quarter disk of radius √x holds rows a = 0 … ⌊√x⌋, row a holding the points
(a, 0) … (a, ⌊√(x−a²)⌋). Rows differ in length, so cells are stored
row after row in one flat slice and addressed through a table of row offsets:

	cell(a, b) = Cells[RowStart[a] + b]

Two stores share this layout: Dense keeps one byte per cell, Packed keeps
two bits per cell in 64-bit words. Cell values are small unsigned integers
(0…3); the meaning of a value is up to the client. Zero is the initial value
of every cell.

Stores do no range checking beyond what Go's slice indexing does; clients are
expected to check coordinates against the layout before storing.
*/
package grid

import "math/bits"

// Layout describes the row structure of a quarter disk.
//
//   - RowStart has one entry per row plus a sentinel, RowStart[len-1] == number of cells.
//   - Row a occupies cells RowStart[a] … RowStart[a+1]-1.
type Layout struct {
	RowStart []int
}

// NewLayout creates a layout from a vector of row lengths.
func NewLayout(rowLens []int) Layout {
	start := make([]int, len(rowLens)+1)
	for a, n := range rowLens {
		start[a+1] = start[a] + n
	}
	return Layout{RowStart: start}
}

// Rows returns the number of rows.
func (l Layout) Rows() int { return len(l.RowStart) - 1 }

// RowLen returns the number of cells in row a.
func (l Layout) RowLen(a int) int { return l.RowStart[a+1] - l.RowStart[a] }

// Len returns the total number of cells.
func (l Layout) Len() int {
	if len(l.RowStart) == 0 {
		return 0
	}
	return l.RowStart[len(l.RowStart)-1]
}

// Index returns the flat cell index of (a, b).
func (l Layout) Index(a, b int) int { return l.RowStart[a] + b }

// Dense is a cell store with one byte per cell.
type Dense struct {
	Layout
	Cells []uint8 // len == Len()
}

// NewDense allocates a zeroed dense store for the given row lengths.
func NewDense(rowLens []int) *Dense {
	l := NewLayout(rowLens)
	return &Dense{
		Layout: l,
		Cells:  make([]uint8, l.Len()),
	}
}

// Get returns the value of cell (a, b).
func (d *Dense) Get(a, b int) uint8 { return d.Cells[d.RowStart[a]+b] }

// Set sets cell (a, b) to v.
func (d *Dense) Set(a, b int, v uint8) { d.Cells[d.RowStart[a]+b] = v }

// Row returns the cells of row a. The slice aliases the store.
func (d *Dense) Row(a int) []uint8 {
	return d.Cells[d.RowStart[a]:d.RowStart[a+1]]
}

// SizeBytes returns the memory held by cells and row offsets.
func (d *Dense) SizeBytes() int {
	return len(d.Cells) + len(d.RowStart)*intSize
}

const intSize = bits.UintSize / 8
