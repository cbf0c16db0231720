package colour

import "errors"

var (
	// ErrEmptySampleSet is returned when an image contains no fully opaque pixels.
	ErrEmptySampleSet = errors.New("no opaque pixels to sample")

	// ErrInvalidClusterCount is returned when fewer than one cluster is requested.
	ErrInvalidClusterCount = errors.New("cluster count must be at least 1")
)
