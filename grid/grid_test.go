package grid

import (
	"math/bits"
	"reflect"
	"testing"
)

func TestLayoutOffsets(t *testing.T) {
	l := NewLayout([]int{3, 3, 2, 1})
	if l.Rows() != 4 {
		t.Fatalf("expected 4 rows, got %d", l.Rows())
	}
	if l.Len() != 9 {
		t.Fatalf("expected 9 cells, got %d", l.Len())
	}
	want := []int{0, 3, 6, 8, 9}
	if !reflect.DeepEqual(l.RowStart, want) {
		t.Fatalf("row offsets mismatch: got %v, want %v", l.RowStart, want)
	}
	if l.RowLen(2) != 2 {
		t.Fatalf("expected row 2 to hold 2 cells, got %d", l.RowLen(2))
	}
	if l.Index(2, 1) != 7 {
		t.Fatalf("expected index 7 for (2,1), got %d", l.Index(2, 1))
	}
}

func TestEmptyLayout(t *testing.T) {
	var l Layout
	if l.Len() != 0 {
		t.Fatalf("zero layout should be empty, has %d cells", l.Len())
	}
}

func TestDenseSetGet(t *testing.T) {
	d := NewDense([]int{2, 2, 1})
	d.Set(1, 1, 2)
	d.Set(2, 0, 1)
	if v := d.Get(1, 1); v != 2 {
		t.Fatalf("(1,1) should be 2, is %d", v)
	}
	if v := d.Get(2, 0); v != 1 {
		t.Fatalf("(2,0) should be 1, is %d", v)
	}
	if v := d.Get(0, 1); v != 0 {
		t.Fatalf("(0,1) should be untouched, is %d", v)
	}
	if !reflect.DeepEqual(d.Row(1), []uint8{0, 2}) {
		t.Fatalf("row 1 mismatch: %v", d.Row(1))
	}
}

func TestPackedMatchesDense(t *testing.T) {
	rows := []int{40, 39, 37, 33, 10, 1}
	d := NewDense(rows)
	p := NewPacked(rows)
	v := uint8(0)
	for a, n := range rows {
		for b := 0; b < n; b++ {
			v = (v + uint8(a+b)) % 4
			d.Set(a, b, v)
			p.Set(a, b, v)
		}
	}
	for a, n := range rows {
		for b := 0; b < n; b++ {
			if d.Get(a, b) != p.Get(a, b) {
				t.Fatalf("cell (%d,%d): dense=%d packed=%d", a, b, d.Get(a, b), p.Get(a, b))
			}
		}
	}
}

func TestPackedOverwrite(t *testing.T) {
	p := NewPacked([]int{64})
	p.Set(0, 31, 3)
	p.Set(0, 32, 2)
	p.Set(0, 31, 1)
	if v := p.Get(0, 31); v != 1 {
		t.Fatalf("overwritten cell should be 1, is %d", v)
	}
	if v := p.Get(0, 32); v != 2 {
		t.Fatalf("neighbour in next word should be 2, is %d", v)
	}
	if v := p.Get(0, 30); v != 0 {
		t.Fatalf("neighbour in same word should be 0, is %d", v)
	}
	if len(p.Words) != 2 {
		t.Fatalf("expected 2 words for 64 cells, got %d", len(p.Words))
	}
	if p.UsedBits() != 128 {
		t.Fatalf("expected 128 used bits, got %d", p.UsedBits())
	}
}

func TestSizeBytes(t *testing.T) {
	rows := []int{5, 5, 4, 3}
	d := NewDense(rows)
	if want := 17 + 5*bits.UintSize/8; d.SizeBytes() != want {
		t.Fatalf("dense store should take %d bytes, takes %d", want, d.SizeBytes())
	}
	p := NewPacked(rows)
	if want := 8 + 5*bits.UintSize/8; p.SizeBytes() != want {
		t.Fatalf("packed store should take %d bytes, takes %d", want, p.SizeBytes())
	}
}
