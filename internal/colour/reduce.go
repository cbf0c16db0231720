package colour

import (
	"fmt"
	"slices"
)

// Reduce turns a clustering into a palette. Each non-empty cluster becomes
// one entry whose share is its fraction of all samples. Empty clusters are
// dropped. Entries are ordered by descending share, then by ascending
// cluster index.
func Reduce(centroids []Sample, assignments []int) (*Palette, error) {
	if len(assignments) == 0 {
		return nil, ErrEmptySampleSet
	}

	counts := make([]int, len(centroids))
	for i, a := range assignments {
		if a < 0 || a >= len(centroids) {
			return nil, fmt.Errorf("sample %d assigned to cluster %d, only %d clusters exist", i, a, len(centroids))
		}
		counts[a]++
	}

	total := float64(len(assignments))
	entries := make([]PaletteEntry, 0, len(centroids))
	for i, c := range centroids {
		if counts[i] == 0 {
			continue
		}
		entries = append(entries, PaletteEntry{
			Colour:  c,
			Share:   float64(counts[i]) / total,
			Cluster: i,
		})
	}

	// Entries are appended in cluster order, so a stable sort keeps the
	// lower cluster index first on equal shares.
	slices.SortStableFunc(entries, func(a, b PaletteEntry) int {
		switch {
		case a.Share > b.Share:
			return -1
		case a.Share < b.Share:
			return 1
		default:
			return 0
		}
	})

	return NewPalette(entries), nil
}
