package colour

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"
	"slices"

	"github.com/hashicorp/go-hclog"
)

// Algorithm represents the k-means assignment strategy.
type Algorithm string

const (
	// AlgorithmHamerly skips distance computations using Hamerly's bounds.
	AlgorithmHamerly Algorithm = "hamerly"

	// AlgorithmLloyd recomputes every distance on every iteration.
	// It is the reference the accelerated variant must agree with.
	AlgorithmLloyd Algorithm = "lloyd"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmHamerly, AlgorithmLloyd}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	return slices.Contains(ValidAlgorithms(), alg)
}

// MaxClusterCount bounds the number of colours that can be requested.
const MaxClusterCount = 256

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm     Algorithm
	ColourCount   int
	MaxIterations int
	Convergence   float64
	Seed          int64
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:     AlgorithmHamerly,
		ColourCount:   DefaultClusterCount,
		MaxIterations: DefaultMaxIterations,
		Convergence:   DefaultConvergence,
		Seed:          0,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s (valid algorithms: %v)", c.Algorithm, ValidAlgorithms())
	}
	if c.ColourCount < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidClusterCount, c.ColourCount)
	}
	if c.ColourCount > MaxClusterCount {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", c.ColourCount, MaxClusterCount)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.Convergence < 0 {
		return fmt.Errorf("convergence threshold cannot be negative, got %g", c.Convergence)
	}
	return nil
}

// NewRand returns the deterministic random source used for centroid
// initialisation with the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0)) // #nosec G115,G404 -- seeded for reproducibility
}

// Result is the outcome of a full extraction run.
type Result struct {
	Palette    *Palette
	Extremes   Extremes
	Clustering *Clustering
	Samples    int
}

// Extractor runs the sampling, clustering, reduction and extreme selection
// pipeline over a decoded image.
type Extractor struct {
	config ExtractorConfig
	logger hclog.Logger
}

// NewExtractor creates an Extractor from a validated configuration.
func NewExtractor(config ExtractorConfig, logger hclog.Logger) (*Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Extractor{config: config, logger: logger}, nil
}

// Extract derives a palette and its extremes from buf.
func (e *Extractor) Extract(ctx context.Context, buf *image.NRGBA) (*Result, error) {
	samples, err := SamplePixels(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to sample pixels: %w", err)
	}
	e.logger.Debug("sampled opaque pixels", "samples", len(samples))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clustering, err := Quantize(samples, e.config.ColourCount, NewRand(e.config.Seed), KMeansOptions{
		MaxIterations: e.config.MaxIterations,
		Convergence:   e.config.Convergence,
		Algorithm:     e.config.Algorithm,
		Logger:        e.logger.Named("kmeans"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cluster colours: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	palette, err := Reduce(clustering.Centroids, clustering.Assignments)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce clusters: %w", err)
	}
	if dropped := e.config.ColourCount - palette.Len(); dropped > 0 {
		e.logger.Debug("discarded empty clusters", "dropped", dropped, "colours", palette.Len())
	}

	extremes := SelectExtremes(palette)
	if extremes.Fallback {
		e.logger.Warn("palette is empty, using black and white extremes")
	}

	return &Result{
		Palette:    palette,
		Extremes:   extremes,
		Clustering: clustering,
		Samples:    len(samples),
	}, nil
}
