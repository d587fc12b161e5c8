package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/gintsieve"
)

// progressReporter is a sieve observer writing a memory report and a
// percentage to a console. On terminals the percentage is redrawn in place,
// otherwise a line is written for every 10 percent.
type progressReporter struct {
	w    io.Writer
	tty  bool
	last int
}

func newProgressReporter(w io.Writer) *progressReporter {
	r := &progressReporter{w: w, last: -1}
	if f, ok := w.(*os.File); ok {
		r.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

func (r *progressReporter) ArrayAllocated(stats gintsieve.ArrayStats) {
	fmt.Fprintf(r.w, "sieve array for x=%s: %s cells in %s rows, %s (%s, %.0f%% of bits used)\n",
		humanize.Comma(stats.Bound), humanize.Comma(int64(stats.Cells)),
		humanize.Comma(int64(stats.Rows)), humanize.IBytes(uint64(stats.Bytes)),
		stats.Backend, 100*stats.Utilization())
}

func (r *progressReporter) Progress(done, total float64) {
	pct := 100
	if total > 0 && done < total {
		pct = int(100 * done / total)
	}
	if pct == r.last {
		return
	}
	if r.tty {
		fmt.Fprintf(r.w, "\rsieving: %3d%%", pct)
	} else if pct/10 != r.last/10 || r.last < 0 {
		fmt.Fprintf(r.w, "sieving: %d%%\n", pct/10*10)
	}
	r.last = pct
}

// Finish writes the summary line.
func (r *progressReporter) Finish(count int, elapsed time.Duration) {
	if r.tty && r.last >= 0 {
		fmt.Fprintln(r.w)
	}
	fmt.Fprintf(r.w, "found %s primes (%s with associates) in %v\n",
		humanize.Comma(int64(count)), humanize.Comma(4*int64(count)),
		elapsed.Round(time.Millisecond))
}
