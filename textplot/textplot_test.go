package textplot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/gintsieve"
)

func TestRenderArray(t *testing.T) {
	s, err := gintsieve.NewSieve(10)
	if err != nil {
		t.Fatal(err)
	}
	if err = s.Run(); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = RenderArray(&buf, s.Array()); err != nil {
		t.Fatal(err)
	}
	want := "..\n.*.\n.**.\n...*\n"
	if buf.String() != want {
		t.Fatalf("picture mismatch, got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRenderPrimesMatchesArray(t *testing.T) {
	const x = 400
	s, err := gintsieve.NewSieve(x, gintsieve.WithBackend(gintsieve.BackendPacked))
	if err != nil {
		t.Fatal(err)
	}
	if err = s.Run(); err != nil {
		t.Fatal(err)
	}
	var fromArray, fromList bytes.Buffer
	if err = RenderArray(&fromArray, s.Array()); err != nil {
		t.Fatal(err)
	}
	if err = RenderPrimes(&fromList, s.Primes(false), x, false); err != nil {
		t.Fatal(err)
	}
	if fromArray.String() != fromList.String() {
		t.Fatalf("pictures differ:\n%s\nvs\n%s", fromArray.String(), fromList.String())
	}
}

func TestRenderFullDisk(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPrimes(&buf, []gintsieve.Point{{A: 1, B: 1}}, 2, true); err != nil {
		t.Fatal(err)
	}
	want := "*.*\n...\n*.*\n"
	if buf.String() != want {
		t.Fatalf("picture mismatch, got\n%s", buf.String())
	}
}

func TestRenderFullDiskSymmetry(t *testing.T) {
	primes, err := gintsieve.ComputeGaussianPrimes(200, false)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = RenderPrimes(&buf, primes, 200, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 29 { // 2·⌊√200⌋+1
		t.Fatalf("expected 29 lines, got %d", len(lines))
	}
	for i := range lines {
		if lines[i] != lines[len(lines)-1-i] {
			t.Fatalf("picture not symmetric in line %d", i)
		}
	}
}

func TestRenderNegativeBound(t *testing.T) {
	if err := RenderPrimes(&bytes.Buffer{}, nil, -1, false); err == nil {
		t.Fatalf("negative bound should be rejected")
	}
}
