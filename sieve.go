package gintsieve

import (
	"fmt"
	"math"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// Observer is notified about the progress of a sieve run.
// Observers are passive: they cannot influence the result of a run.
type Observer interface {
	// ArrayAllocated reports the memory taken by a freshly allocated sieve array.
	ArrayAllocated(stats ArrayStats)
	// Progress is called after each confirmed prime. total is an estimate of
	// the overall work, done may therefore slightly overshoot it.
	Progress(done, total float64)
}

// Sieve is a sieve of Eratosthenes for the Gaussian primes with norm up
// to a bound x. A sieve owns its array exclusively and is not safe for
// concurrent use.
type Sieve struct {
	bound    int64
	method   Method
	backend  string
	observer Observer
	array    *SieveArray
	order    []Point // candidates by ascending norm, read-only
	done     bool
	found    int
	crossed  int // primes whose multiples were crossed off
	elapsed  time.Duration
}

// Option configures a Sieve.
type Option func(*Sieve) error

// WithMethod selects the crossing algorithm. Default is SubgroupTranslation.
func WithMethod(m Method) Option {
	return func(s *Sieve) error {
		if _, err := m.Crosser(); err != nil {
			return err
		}
		s.method = m
		return nil
	}
}

// WithBackend selects the sieve array storage, BackendDense (default) or
// BackendPacked.
func WithBackend(name string) Option {
	return func(s *Sieve) error {
		if name != BackendDense && name != BackendPacked {
			return fmt.Errorf("array backend %q: %w", name, ErrUnknownBackend)
		}
		s.backend = name
		return nil
	}
}

// WithObserver installs an observer for progress and memory reports.
func WithObserver(o Observer) Option {
	return func(s *Sieve) error {
		s.observer = o
		return nil
	}
}

// NewSieve prepares a sieve for norm bound x: it allocates the sieve array
// and builds the list of candidates ordered by norm.
//
// Errors are ErrInvalidInput for negative x and ErrOverflow for x beyond
// MaxBound; both are detected before any allocation.
func NewSieve(x int64, opts ...Option) (*Sieve, error) {
	if err := checkBound(x); err != nil {
		return nil, err
	}
	s := &Sieve{
		bound:   x,
		method:  SubgroupTranslation,
		backend: BackendDense,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	var err error
	if s.array, err = NewSieveArray(x, WithArrayBackend(s.backend)); err != nil {
		return nil, err
	}
	if s.order, err = NormOrder(x); err != nil {
		return nil, err
	}
	stats := s.array.Stats()
	tracer().Infof("sieve array %s: %d cells in %d rows, %d bytes, %d candidates",
		stats.Backend, stats.Cells, stats.Rows, stats.Bytes, len(s.order))
	tracing.With(tracer()).Dump("array stats", stats)
	if s.observer != nil {
		s.observer.ArrayAllocated(stats)
	}
	return s, nil
}

// Run sieves the array in one pass over the candidates. Every candidate
// still unvisited when its turn comes is prime and is marked as such.
// For primes of norm up to √x the multiples are crossed off, and the prime
// is re-marked, as crossing off strikes the prime itself. Primes of larger
// norm have no multiples left unstruck and are only marked.
//
// Calling Run on a sieve which has already run does nothing.
func (s *Sieve) Run() error {
	if s.done {
		return nil
	}
	cross, err := s.method.Crosser()
	if err != nil {
		return err
	}
	tracer().Debugf("sieving x=%d with %v crossing", s.bound, s.method)
	start := time.Now()
	total, done := progressTotal(s.bound), 0.0
	arr := s.array
	limit := isqrt(s.bound) // every composite has a prime factor of norm ≤ √x
	for _, p := range s.order {
		st := arr.status(p.A, p.B)
		if st == Composite {
			continue
		}
		assert(st == Unvisited, "candidate settled before its turn")
		arr.cells.Set(p.A, p.B, ConfirmedPrime)
		if p.Norm() <= limit {
			if err := cross(arr, p); err != nil {
				return fmt.Errorf("crossing off multiples of %v: %w", p, err)
			}
			arr.cells.Set(p.A, p.B, ConfirmedPrime)
			s.crossed++
		}
		s.found++
		if s.observer != nil {
			done += float64(s.bound) / float64(p.Norm())
			s.observer.Progress(done, total)
		}
	}
	s.done = true
	s.elapsed = time.Since(start)
	tracer().Infof("sieved x=%d: %d primes in %v", s.bound, s.found, s.elapsed)
	tracer().Debugf("crossed off multiples of %d primes", s.crossed)
	return nil
}

// progressTotal estimates the sum of x/N(p) over all primes p with N(p) ≤ x,
// which is about 0.8·x·ln ln x.
func progressTotal(x int64) float64 {
	f := float64(x)
	if f < 16 { // ln ln x is tiny or negative
		return math.Max(f, 1)
	}
	return 0.8 * f * math.Log(math.Log(f))
}

// Bound returns the norm bound x.
func (s *Sieve) Bound() int64 { return s.bound }

// Method returns the crossing method in use.
func (s *Sieve) Method() Method { return s.method }

// Array returns the sieve array. It must not be modified by clients.
func (s *Sieve) Array() *SieveArray { return s.array }

// Elapsed returns the time spent in Run.
func (s *Sieve) Elapsed() time.Duration { return s.elapsed }

// ComputeGaussianPrimes returns the Gaussian primes a+bi with a > 0, b ≥ 0
// and norm at most x, one per associate class. If sortByNorm is set, primes
// are ordered by ascending norm, otherwise by ascending (a, b).
//
// On error no primes are returned.
func ComputeGaussianPrimes(x int64, sortByNorm bool) ([]Point, error) {
	s, err := NewSieve(x)
	if err != nil {
		return nil, err
	}
	if err = s.Run(); err != nil {
		return nil, err
	}
	return s.Primes(sortByNorm), nil
}
