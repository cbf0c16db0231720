package colour

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"
)

// Default k-means parameters.
const (
	DefaultClusterCount  = 16
	DefaultMaxIterations = 20
	DefaultConvergence   = 0.0025
)

// boundSlack absorbs floating point drift in the Hamerly bounds. A sample is
// only skipped when its bounds prove the assignment with this much margin.
const boundSlack = 1e-9

// KMeansOptions configures a clustering run.
type KMeansOptions struct {
	// MaxIterations caps the number of assign/update rounds.
	MaxIterations int
	// Convergence stops iteration once the summed centroid movement falls below it.
	Convergence float64
	// Algorithm selects the assignment strategy. Both produce identical clusterings.
	Algorithm Algorithm
	// Logger receives per-run debug output. Nil disables logging.
	Logger hclog.Logger
}

// DefaultKMeansOptions returns the default clustering options.
func DefaultKMeansOptions() KMeansOptions {
	return KMeansOptions{
		MaxIterations: DefaultMaxIterations,
		Convergence:   DefaultConvergence,
		Algorithm:     AlgorithmHamerly,
	}
}

// Clustering is the result of a k-means run.
type Clustering struct {
	// Centroids holds exactly k centroids; some may have no samples assigned.
	Centroids []Sample
	// Assignments maps each sample index to its centroid index.
	Assignments []int
	// Iterations is the number of assign/update rounds performed.
	Iterations int
	// Converged reports whether the run stopped below the convergence threshold.
	Converged bool
}

// Quantize partitions samples into k clusters minimising the within-cluster
// squared Euclidean distance. Initial centroids are drawn from samples using
// rng, so a fixed seed gives a reproducible result.
func Quantize(samples []Sample, k int, rng *rand.Rand, opts KMeansOptions) (*Clustering, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidClusterCount, k)
	}
	if len(samples) == 0 {
		return nil, ErrEmptySampleSet
	}
	if rng == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmHamerly
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var a assigner
	switch opts.Algorithm {
	case AlgorithmHamerly:
		a = newHamerlyAssigner(len(samples), k)
	case AlgorithmLloyd:
		a = lloydAssigner{}
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", opts.Algorithm, ValidAlgorithms())
	}

	centroids := initialiseCentroids(samples, k, rng)
	assignments := make([]int, len(samples))
	result := &Clustering{Centroids: centroids, Assignments: assignments}

	drift := make([]float64, k)
	for iter := 0; iter < opts.MaxIterations; iter++ {
		a.assign(samples, centroids, assignments, iter == 0)

		next := recalculateCentroids(samples, assignments, centroids)

		movement := 0.0
		for i := range centroids {
			drift[i] = centroids[i].distance(next[i])
			movement += drift[i]
		}
		copy(centroids, next)
		a.moved(assignments, drift)

		result.Iterations = iter + 1
		logger.Trace("k-means iteration", "iteration", result.Iterations, "movement", movement)

		if movement < opts.Convergence {
			result.Converged = true
			break
		}
	}

	logger.Debug("k-means finished",
		"algorithm", opts.Algorithm,
		"samples", len(samples),
		"clusters", k,
		"iterations", result.Iterations,
		"converged", result.Converged)

	return result, nil
}

// initialiseCentroids picks k starting centroids uniformly from samples.
// Indices are drawn without replacement while enough samples exist; any
// remaining centroids are drawn with replacement.
func initialiseCentroids(samples []Sample, k int, rng *rand.Rand) []Sample {
	n := len(samples)
	centroids := make([]Sample, 0, k)

	// Partial Fisher-Yates over the sample indices.
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < min(k, n); i++ {
		j := i + rng.IntN(n-i)
		indices[i], indices[j] = indices[j], indices[i]
		centroids = append(centroids, samples[indices[i]])
	}
	for len(centroids) < k {
		centroids = append(centroids, samples[rng.IntN(n)])
	}

	return centroids
}

// recalculateCentroids returns the mean of the samples assigned to each
// cluster. A cluster without samples keeps its previous position.
func recalculateCentroids(samples []Sample, assignments []int, previous []Sample) []Sample {
	k := len(previous)
	sums := make([]Sample, k)
	counts := make([]int, k)

	for i, s := range samples {
		cluster := assignments[i]
		sums[cluster].R += s.R
		sums[cluster].G += s.G
		sums[cluster].B += s.B
		counts[cluster]++
	}

	centroids := make([]Sample, k)
	for i := range k {
		if counts[i] == 0 {
			centroids[i] = previous[i]
			continue
		}
		n := float64(counts[i])
		centroids[i] = Sample{
			R: sums[i].R / n,
			G: sums[i].G / n,
			B: sums[i].B / n,
		}
	}

	return centroids
}

// nearestTwo returns the index of the closest centroid to s together with
// the squared distances to the closest and second closest centroids. Ties go
// to the lowest index.
func nearestTwo(s Sample, centroids []Sample) (best int, bestDist, secondDist float64) {
	bestDist = math.Inf(1)
	secondDist = math.Inf(1)
	for j, c := range centroids {
		d := s.distanceSq(c)
		if d < bestDist {
			best, bestDist, secondDist = j, d, bestDist
		} else if d < secondDist {
			secondDist = d
		}
	}
	return best, bestDist, secondDist
}

// assigner performs the assignment step of k-means.
type assigner interface {
	// assign writes the nearest centroid index for every sample into assignments.
	assign(samples, centroids []Sample, assignments []int, first bool)
	// moved is called after centroids have been updated, with each centroid's drift.
	moved(assignments []int, drift []float64)
}

// lloydAssigner recomputes every sample-centroid distance each round.
type lloydAssigner struct{}

func (lloydAssigner) assign(samples, centroids []Sample, assignments []int, _ bool) {
	for i, s := range samples {
		assignments[i], _, _ = nearestTwo(s, centroids)
	}
}

func (lloydAssigner) moved([]int, []float64) {}

// hamerlyAssigner keeps, for every sample, an upper bound on the distance to
// its assigned centroid and a lower bound on the distance to any other
// centroid. Samples whose bounds prove the assignment unchanged are skipped.
type hamerlyAssigner struct {
	upper []float64
	lower []float64
	// half holds half the distance from each centroid to its nearest neighbour.
	half []float64
}

func newHamerlyAssigner(n, k int) *hamerlyAssigner {
	return &hamerlyAssigner{
		upper: make([]float64, n),
		lower: make([]float64, n),
		half:  make([]float64, k),
	}
}

func (h *hamerlyAssigner) assign(samples, centroids []Sample, assignments []int, first bool) {
	if first {
		for i, s := range samples {
			best, bestDist, secondDist := nearestTwo(s, centroids)
			assignments[i] = best
			h.upper[i] = math.Sqrt(bestDist)
			h.lower[i] = math.Sqrt(secondDist)
		}
		return
	}

	h.updateHalfDistances(centroids)

	for i, s := range samples {
		a := assignments[i]
		bound := math.Max(h.half[a], h.lower[i])
		if h.upper[i]+boundSlack < bound {
			continue
		}

		// Tighten the upper bound and test again before a full scan.
		h.upper[i] = s.distance(centroids[a])
		if h.upper[i]+boundSlack < bound {
			continue
		}

		best, bestDist, secondDist := nearestTwo(s, centroids)
		assignments[i] = best
		h.upper[i] = math.Sqrt(bestDist)
		h.lower[i] = math.Sqrt(secondDist)
	}
}

func (h *hamerlyAssigner) updateHalfDistances(centroids []Sample) {
	for j := range centroids {
		nearest := math.Inf(1)
		for o := range centroids {
			if o == j {
				continue
			}
			nearest = math.Min(nearest, centroids[j].distance(centroids[o]))
		}
		h.half[j] = nearest / 2
	}
}

func (h *hamerlyAssigner) moved(assignments []int, drift []float64) {
	// Largest and second largest drift, so each sample's lower bound can be
	// reduced by the largest drift of any centroid other than its own.
	largest, second := 0.0, 0.0
	largestIdx := -1
	for j, d := range drift {
		if d > largest {
			second = largest
			largest, largestIdx = d, j
		} else if d > second {
			second = d
		}
	}

	for i, a := range assignments {
		h.upper[i] += drift[a]
		if a == largestIdx {
			h.lower[i] -= second
		} else {
			h.lower[i] -= largest
		}
	}
}
