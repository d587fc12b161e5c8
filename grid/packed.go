package grid

const (
	cellBits     = 2
	cellsPerWord = 64 / cellBits
	cellMask     = 1<<cellBits - 1
)

// Packed is a cell store keeping two bits per cell, 32 cells per word.
// Values above 3 are truncated to their lower two bits.
type Packed struct {
	Layout
	Words []uint64
}

// NewPacked allocates a zeroed packed store for the given row lengths.
func NewPacked(rowLens []int) *Packed {
	l := NewLayout(rowLens)
	return &Packed{
		Layout: l,
		Words:  make([]uint64, (l.Len()+cellsPerWord-1)/cellsPerWord),
	}
}

// Get returns the value of cell (a, b).
func (p *Packed) Get(a, b int) uint8 {
	i := p.RowStart[a] + b
	shift := uint(i%cellsPerWord) * cellBits
	return uint8(p.Words[i/cellsPerWord]>>shift) & cellMask
}

// Set sets cell (a, b) to v.
func (p *Packed) Set(a, b int, v uint8) {
	i := p.RowStart[a] + b
	shift := uint(i%cellsPerWord) * cellBits
	w := &p.Words[i/cellsPerWord]
	*w = *w&^(cellMask<<shift) | uint64(v&cellMask)<<shift
}

// SizeBytes returns the memory held by cell words and row offsets.
func (p *Packed) SizeBytes() int {
	return len(p.Words)*8 + len(p.RowStart)*intSize
}

// UsedBits returns the number of bits actually addressed by cells.
func (p *Packed) UsedBits() int { return p.Len() * cellBits }
