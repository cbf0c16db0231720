package colour

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestReduceSharesAndOrder(t *testing.T) {
	centroids := []Sample{{R: 1}, {G: 1}, {B: 1}, White}
	assignments := []int{2, 2, 2, 0, 1, 1, 2, 0, 0, 2}

	palette, err := Reduce(centroids, assignments)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}

	want := []PaletteEntry{
		{Colour: Sample{B: 1}, Share: 0.5, Cluster: 2},
		{Colour: Sample{R: 1}, Share: 0.3, Cluster: 0},
		{Colour: Sample{G: 1}, Share: 0.2, Cluster: 1},
	}
	if diff := cmp.Diff(want, palette.Entries); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceInvariants(t *testing.T) {
	samples := randomSamples(777, 11)
	clustering, err := Quantize(samples, 16, NewRand(5), DefaultKMeansOptions())
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}

	palette, err := Reduce(clustering.Centroids, clustering.Assignments)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}

	shares := make([]float64, palette.Len())
	for i, e := range palette.Entries {
		shares[i] = e.Share
		if e.Share <= 0 || e.Share > 1 {
			t.Errorf("entry %d share %f out of range", i, e.Share)
		}
		if i > 0 && e.Share > palette.Entries[i-1].Share {
			t.Errorf("entry %d share %f greater than previous %f", i, e.Share, palette.Entries[i-1].Share)
		}
	}
	if sum := floats.Sum(shares); !scalar.EqualWithinAbs(sum, 1, 1e-9) {
		t.Errorf("shares sum to %f, want 1", sum)
	}
}

func TestReduceTiesByClusterIndex(t *testing.T) {
	centroids := []Sample{Black, {R: 0.5}, White}
	assignments := []int{2, 0, 2, 0}

	palette, err := Reduce(centroids, assignments)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if palette.Len() != 2 {
		t.Fatalf("Reduce() returned %d entries, want 2", palette.Len())
	}
	if palette.Entries[0].Cluster != 0 || palette.Entries[1].Cluster != 2 {
		t.Errorf("tie order = [%d %d], want [0 2]", palette.Entries[0].Cluster, palette.Entries[1].Cluster)
	}
}

func TestReduceDiscardsEmptyClusters(t *testing.T) {
	centroids := make([]Sample, 16)
	centroids[3] = White
	assignments := []int{0, 3, 3, 0}

	palette, err := Reduce(centroids, assignments)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if palette.Len() != 2 {
		t.Errorf("Reduce() returned %d entries, want 2", palette.Len())
	}
}

func TestReduceErrors(t *testing.T) {
	if _, err := Reduce([]Sample{Black}, nil); !errors.Is(err, ErrEmptySampleSet) {
		t.Errorf("Reduce(no assignments) error = %v, want ErrEmptySampleSet", err)
	}
	if _, err := Reduce([]Sample{Black}, []int{0, 1}); err == nil {
		t.Error("Reduce() with out of range assignment should fail")
	}
}
