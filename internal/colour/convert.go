// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Rec. 709 luma coefficients, applied to linear channels.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Sample is a colour in linear RGB space with each channel in [0, 1].
type Sample struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Black and White are the fallback extremes used when a palette is empty.
var (
	Black = Sample{R: 0, G: 0, B: 0}
	White = Sample{R: 1, G: 1, B: 1}
)

// srgbToLinear maps every 8-bit gamma-encoded value to its linear value.
var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		v := float64(i) / 255.0
		r, _, _ := colorful.Color{R: v, G: v, B: v}.LinearRgb()
		srgbToLinear[i] = r
	}
}

// ToLinear converts stored 8-bit sRGB channels to a linear Sample.
func ToLinear(r, g, b uint8) Sample {
	return Sample{
		R: srgbToLinear[r],
		G: srgbToLinear[g],
		B: srgbToLinear[b],
	}
}

// ToStored converts a linear Sample back to 8-bit sRGB channels.
// Out of range channels are clamped before encoding.
func ToStored(s Sample) (r, g, b uint8) {
	return s.Colorful().RGB255()
}

// Luma returns the relative luminance of a linear colour.
// It is only used to order colours by brightness.
func Luma(s Sample) float64 {
	return lumaR*s.R + lumaG*s.G + lumaB*s.B
}

// Colorful returns the sample as a gamma-encoded go-colorful colour.
func (s Sample) Colorful() colorful.Color {
	return colorful.LinearRgb(clamp01(s.R), clamp01(s.G), clamp01(s.B)).Clamped()
}

// distanceSq returns the squared Euclidean distance between two samples.
func (s Sample) distanceSq(o Sample) float64 {
	dr := s.R - o.R
	dg := s.G - o.G
	db := s.B - o.B
	return dr*dr + dg*dg + db*db
}

// distance returns the Euclidean distance between two samples.
func (s Sample) distance(o Sample) float64 {
	return math.Sqrt(s.distanceSq(o))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
