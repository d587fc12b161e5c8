/*
Package textplot draws Gaussian primes as character pictures.

Pictures are oriented like the complex plane: the real part grows to the
right, the imaginary part grows upwards. Every lattice point inside the disk
of the norm bound is one character, '*' for a prime and '.' otherwise.
*/
package textplot

import (
	"bufio"
	"io"

	"github.com/npillmayer/gintsieve"
)

const (
	primeMark     = '*'
	compositeMark = '.'
	outsideMark   = ' '
)

// RenderArray draws the quarter disk of a sieve array. Every point not
// confirmed prime is drawn as '.', including points of an array not sieved yet.
func RenderArray(w io.Writer, arr *gintsieve.SieveArray) error {
	bw := bufio.NewWriter(w)
	rows := arr.Rows()
	line := make([]byte, 0, rows+1)
	for b := rows - 1; b >= 0; b-- {
		line = line[:0]
		for a := 0; a < rows; a++ {
			st, err := arr.StatusAt(a, b)
			if err != nil {
				line = append(line, outsideMark)
				continue
			}
			if st == gintsieve.ConfirmedPrime {
				line = append(line, primeMark)
			} else {
				line = append(line, compositeMark)
			}
		}
		if _, err := bw.Write(append(trimRight(line), '\n')); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderPrimes draws a list of primes within the disk of norm bound x.
// Primes outside the disk are ignored.
// With fullDisk unset only the first quadrant is drawn, otherwise the whole
// disk, with all four associates of every prime.
func RenderPrimes(w io.Writer, primes []gintsieve.Point, x int64, fullDisk bool) error {
	r64, err := gintsieve.ISqrt(x)
	if err != nil {
		return err
	}
	r := int(r64)
	lo := 0
	if fullDisk {
		lo = -r
	}
	width := r - lo + 1
	marked := make(map[gintsieve.Point]bool, len(primes)*4)
	for _, p := range primes {
		if p.Norm() > x {
			continue
		}
		if !fullDisk {
			marked[p] = true
			continue
		}
		for _, q := range p.Associates() {
			marked[q] = true
		}
	}
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, width+1)
	for b := r; b >= lo; b-- {
		line = line[:0]
		for a := lo; a <= r; a++ {
			p := gintsieve.Point{A: a, B: b}
			switch {
			case p.Norm() > x:
				line = append(line, outsideMark)
			case marked[p]:
				line = append(line, primeMark)
			default:
				line = append(line, compositeMark)
			}
		}
		if _, err := bw.Write(append(trimRight(line), '\n')); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func trimRight(line []byte) []byte {
	for len(line) > 0 && line[len(line)-1] == outsideMark {
		line = line[:len(line)-1]
	}
	return line
}
