package gintsieve

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// isRationalPrime is trial division.
func isRationalPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// isGaussianPrime characterizes Gaussian primes a+bi, a > 0, b ≥ 0:
// either the norm is a rational prime, or b = 0 and a is a rational
// prime ≡ 3 (mod 4).
func isGaussianPrime(p Point) bool {
	if p.B == 0 {
		return isRationalPrime(int64(p.A)) && p.A%4 == 3
	}
	return isRationalPrime(p.Norm())
}

func bruteForcePrimes(x int64) []Point {
	var pp []Point
	for a := 1; int64(a*a) <= x; a++ {
		for b := 0; int64(a*a+b*b) <= x; b++ {
			if isGaussianPrime(Point{a, b}) {
				pp = append(pp, Point{a, b})
			}
		}
	}
	return pp
}

func TestSmallestPrime(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gintsieve")
	defer teardown()
	//
	primes, err := ComputeGaussianPrimes(2, true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Point{{1, 1}}, primes); diff != "" {
		t.Fatalf("x=2 should yield 1+i only:\n%s", diff)
	}
}

func TestSplitPrimeFive(t *testing.T) {
	primes, err := ComputeGaussianPrimes(5, true)
	if err != nil {
		t.Fatal(err)
	}
	// 5 = (2+i)(2-i), and 2-i is associated to 1+2i
	want := []Point{{1, 1}, {1, 2}, {2, 1}}
	if diff := cmp.Diff(want, primes); diff != "" {
		t.Fatalf("x=5 mismatch:\n%s", diff)
	}
}

func TestInertPrimeThree(t *testing.T) {
	primes, err := ComputeGaussianPrimes(9, false)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, p := range primes {
		if p == (Point{3, 0}) {
			found = true
		} else if p.Norm() == 9 {
			t.Fatalf("%v of norm 9 should not be prime", p)
		}
	}
	if !found {
		t.Fatalf("3 should be an inert prime, primes are %v", primes)
	}
}

func TestNoSplitRationalPrimes(t *testing.T) {
	primes, err := ComputeGaussianPrimes(2000, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range primes {
		if p.B == 0 && p.A%4 != 3 {
			t.Fatalf("rational integer %v may not be a Gaussian prime", p)
		}
	}
	// every split prime q shows up as a+bi with a≠b and a²+b²=q
	seen := make(map[int64]bool)
	for _, p := range primes {
		if p.B != 0 && p.A != p.B {
			seen[p.Norm()] = true
		}
	}
	for q := int64(5); q <= 2000; q += 4 {
		if isRationalPrime(q) && !seen[q] {
			t.Fatalf("split prime %d has no Gaussian prime factor in the result", q)
		}
	}
}

func TestTinyBoundsAreEmpty(t *testing.T) {
	for _, x := range []int64{0, 1} {
		primes, err := ComputeGaussianPrimes(x, true)
		if err != nil {
			t.Fatalf("x=%d should be valid, got %v", x, err)
		}
		if len(primes) != 0 {
			t.Fatalf("x=%d should yield no primes, got %v", x, primes)
		}
	}
}

func TestAgainstBruteForce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gintsieve")
	defer teardown()
	//
	const x = 2000
	want := bruteForcePrimes(x)
	for _, method := range []Method{LatticeStepping, SubgroupTranslation} {
		for _, backend := range backends {
			s, err := NewSieve(x, WithMethod(method), WithBackend(backend))
			if err != nil {
				t.Fatal(err)
			}
			if err = s.Run(); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, s.Primes(false)); diff != "" {
				t.Fatalf("%v/%s disagrees with brute force (-want +got):\n%s", method, backend, diff)
			}
			if s.Count() != len(want) {
				t.Fatalf("%v/%s: count should be %d, is %d", method, backend, len(want), s.Count())
			}
			if s.CountWithAssociates() != 4*len(want) {
				t.Fatalf("%v/%s: count with associates should be %d", method, backend, 4*len(want))
			}
		}
	}
}

func TestSortedByNorm(t *testing.T) {
	primes, err := ComputeGaussianPrimes(3000, true)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(primes); i++ {
		if !lessByNorm(primes[i-1], primes[i]) {
			t.Fatalf("%v and %v out of order", primes[i-1], primes[i])
		}
	}
}

func TestIdempotence(t *testing.T) {
	const x = 5000
	results := make([][]Point, 4)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			primes, err := ComputeGaussianPrimes(x, true)
			results[i] = primes
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(results); i++ {
		if diff := cmp.Diff(results[0], results[i]); diff != "" {
			t.Fatalf("run %d differs from run 0:\n%s", i, diff)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	bounds := []int64{10, 50, 333, 1000, 2500}
	var prev map[Point]bool
	var prevX int64
	for _, x := range bounds {
		primes, err := ComputeGaussianPrimes(x, false)
		if err != nil {
			t.Fatal(err)
		}
		cur := make(map[Point]bool, len(primes))
		for _, p := range primes {
			cur[p] = true
		}
		for p := range prev {
			if !cur[p] {
				t.Fatalf("%v is prime for x=%d but missing for x=%d", p, prevX, x)
			}
		}
		for p := range cur {
			if p.Norm() <= prevX && !prev[p] {
				t.Fatalf("%v with norm ≤ %d is prime for x=%d only", p, prevX, x)
			}
		}
		prev, prevX = cur, x
	}
}

func TestRunTwice(t *testing.T) {
	s, err := NewSieve(100)
	if err != nil {
		t.Fatal(err)
	}
	if err = s.Run(); err != nil {
		t.Fatal(err)
	}
	n := s.Count()
	if err = s.Run(); err != nil {
		t.Fatal(err)
	}
	if s.Count() != n {
		t.Fatalf("second run changed the count from %d to %d", n, s.Count())
	}
}

func TestSieveErrors(t *testing.T) {
	if _, err := ComputeGaussianPrimes(-5, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	primes, err := ComputeGaussianPrimes(MaxBound+1, false)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if primes != nil {
		t.Fatalf("no primes may be returned on error, got %d", len(primes))
	}
	if _, err := NewSieve(10, WithMethod(Method(3))); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
	if _, err := NewSieve(10, WithBackend("mmap")); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestParseBound(t *testing.T) {
	if x, err := ParseBound(" 1000 "); err != nil || x != 1000 {
		t.Fatalf("expected 1000, got %d (%v)", x, err)
	}
	for _, s := range []string{"12.5", "abc", "", "-3"} {
		if _, err := ParseBound(s); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", s, err)
		}
	}
	for _, s := range []string{"99999999999999999999", "2305843009213693952"} {
		if _, err := ParseBound(s); !errors.Is(err, ErrOverflow) {
			t.Fatalf("%q: expected ErrOverflow, got %v", s, err)
		}
	}
}

type recordingObserver struct {
	stats    ArrayStats
	calls    int
	lastDone float64
	total    float64
}

func (o *recordingObserver) ArrayAllocated(stats ArrayStats) { o.stats = stats }

func (o *recordingObserver) Progress(done, total float64) {
	o.calls++
	o.lastDone, o.total = done, total
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	s, err := NewSieve(1000, WithObserver(obs), WithBackend(BackendPacked))
	if err != nil {
		t.Fatal(err)
	}
	if obs.stats.Backend != BackendPacked || obs.stats.Cells == 0 {
		t.Fatalf("observer did not get array stats: %v", obs.stats)
	}
	if err = s.Run(); err != nil {
		t.Fatal(err)
	}
	if obs.calls != s.Count() {
		t.Fatalf("expected one progress call per prime (%d), got %d", s.Count(), obs.calls)
	}
	if obs.lastDone <= 0 || obs.total <= 0 {
		t.Fatalf("progress should be positive, is %f of %f", obs.lastDone, obs.total)
	}
	plain, _ := ComputeGaussianPrimes(1000, false)
	if diff := cmp.Diff(plain, s.Primes(false)); diff != "" {
		t.Fatalf("observer changed the result:\n%s", diff)
	}
}

func TestCrossOnlySmallPrimes(t *testing.T) {
	const x = 10000
	small := 0
	for _, p := range bruteForcePrimes(x) {
		if p.Norm() <= 100 {
			small++
		}
	}
	for _, method := range []Method{LatticeStepping, SubgroupTranslation} {
		s, err := NewSieve(x, WithMethod(method))
		if err != nil {
			t.Fatal(err)
		}
		if err = s.Run(); err != nil {
			t.Fatal(err)
		}
		if s.crossed != small {
			t.Fatalf("%v: expected crossing for the %d primes of norm ≤ 100, got %d", method, small, s.crossed)
		}
	}
}

func TestLargeBoundSubgroup(t *testing.T) {
	if testing.Short() {
		t.Skip("large sieve in short mode")
	}
	const x = 1000000
	counts := make(map[Method]int)
	for _, method := range []Method{LatticeStepping, SubgroupTranslation} {
		s, err := NewSieve(x, WithMethod(method), WithBackend(BackendPacked))
		if err != nil {
			t.Fatal(err)
		}
		if err = s.Run(); err != nil {
			t.Fatal(err)
		}
		if s.Elapsed().Seconds() > 10 {
			t.Fatalf("%v: sieving x=%d took %v", method, x, s.Elapsed())
		}
		counts[method] = s.Count()
	}
	if counts[LatticeStepping] != counts[SubgroupTranslation] {
		t.Fatalf("methods disagree on x=%d: %v", x, counts)
	}
}

func TestMaxBound(t *testing.T) {
	r := isqrt(MaxBound)
	if r != 1<<30 || r*r != MaxBound {
		t.Fatalf("√MaxBound should be 2³⁰, is %d", r)
	}
	if strconv.IntSize == 64 {
		if err := checkBound(MaxBound); err != nil {
			t.Fatalf("MaxBound should be accepted, got %v", err)
		}
	}
	if err := checkBound(MaxBound + 1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("MaxBound+1 should overflow, got %v", err)
	}
}
