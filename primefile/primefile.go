/*
Package primefile reads and writes lists of Gaussian primes as plain text.

A prime list holds one prime a+bi per line as "a,b". Lines starting with '#'
are comments; a writer may put a header comment naming the norm bound.
Readers are more lenient and accept "a b" and "(a, b)" as well.

	# gaussian primes, norm <= 10
	1,1
	1,2
	2,1
	3,0
*/
package primefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/gintsieve"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("gintsieve.primefile")
}

// Writer writes primes to a buffered text stream.
type Writer struct {
	w     *bufio.Writer
	count int
}

// NewWriter creates a prime writer on top of w. Clients have to call Flush
// when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Header writes a comment line. Newlines in comment are replaced by blanks.
func (pw *Writer) Header(comment string) error {
	comment = strings.ReplaceAll(comment, "\n", " ")
	_, err := fmt.Fprintf(pw.w, "# %s\n", comment)
	return err
}

// Write writes a single prime.
func (pw *Writer) Write(p gintsieve.Point) error {
	var buf [48]byte
	b := strconv.AppendInt(buf[:0], int64(p.A), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(p.B), 10)
	b = append(b, '\n')
	if _, err := pw.w.Write(b); err != nil {
		return err
	}
	pw.count++
	return nil
}

// Flush writes buffered data to the underlying writer.
func (pw *Writer) Flush() error {
	if err := pw.w.Flush(); err != nil {
		return err
	}
	tracer().Debugf("wrote %d primes", pw.count)
	return nil
}

// Count returns the number of primes written so far.
func (pw *Writer) Count() int { return pw.count }

// WriteAll writes a header for norm bound x, followed by all primes, and
// flushes. A bound < 0 suppresses the header.
func WriteAll(w io.Writer, x int64, primes []gintsieve.Point) error {
	pw := NewWriter(w)
	if x >= 0 {
		if err := pw.Header(fmt.Sprintf("gaussian primes, norm <= %d", x)); err != nil {
			return err
		}
	}
	for _, p := range primes {
		if err := pw.Write(p); err != nil {
			return err
		}
	}
	return pw.Flush()
}

// Reader streams primes from a text source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a prime reader for reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next prime. It returns io.EOF when exhausted.
// Malformed lines are reported with their line number.
func (r *Reader) Next() (gintsieve.Point, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := decodeLine(line)
		if err != nil {
			return gintsieve.Point{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return p, nil
	}
	if err := r.scanner.Err(); err != nil {
		return gintsieve.Point{}, err
	}
	return gintsieve.Point{}, io.EOF
}

// Line returns the number of the line read last.
func (r *Reader) Line() int { return r.line }

func decodeLine(line string) (gintsieve.Point, error) {
	if strings.HasPrefix(line, "(") {
		if !strings.HasSuffix(line, ")") {
			return gintsieve.Point{}, fmt.Errorf("unbalanced parenthesis in %q", line)
		}
		line = line[1 : len(line)-1]
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return gintsieve.Point{}, fmt.Errorf("expected two coordinates, got %q", line)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return gintsieve.Point{}, fmt.Errorf("real part %q: %w", fields[0], err)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return gintsieve.Point{}, fmt.Errorf("imaginary part %q: %w", fields[1], err)
	}
	return gintsieve.Point{A: a, B: b}, nil
}

// Load reads all primes from reader.
func Load(reader io.Reader) ([]gintsieve.Point, error) {
	r := NewReader(reader)
	var primes []gintsieve.Point
	for {
		p, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		primes = append(primes, p)
	}
	tracer().Debugf("loaded %d primes from %d lines", len(primes), r.Line())
	return primes, nil
}
