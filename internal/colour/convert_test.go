package colour

import (
	"math"
	"testing"
)

func TestToLinearRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		r, g, b := ToStored(ToLinear(c, c, c))
		for _, got := range []uint8{r, g, b} {
			if diff := math.Abs(float64(got) - float64(c)); diff > 1 {
				t.Fatalf("round trip of %d gave %d", c, got)
			}
		}
	}
}

func TestToLinearIsNotScaledDivision(t *testing.T) {
	got := ToLinear(128, 128, 128)
	// sRGB 128 is about 0.2159 in linear light.
	if math.Abs(got.R-0.2159) > 0.001 {
		t.Errorf("ToLinear(128).R = %f, want ~0.2159", got.R)
	}
	if got.R == 128.0/255.0 {
		t.Error("ToLinear must apply the sRGB transfer function")
	}
}

func TestToLinearEndpoints(t *testing.T) {
	if got := ToLinear(0, 0, 0); got != Black {
		t.Errorf("ToLinear(0) = %+v, want %+v", got, Black)
	}
	if got := ToLinear(255, 255, 255); got != White {
		t.Errorf("ToLinear(255) = %+v, want %+v", got, White)
	}
}

func TestToStoredClamps(t *testing.T) {
	r, g, b := ToStored(Sample{R: -0.5, G: 1.5, B: 0.5})
	if r != 0 || g != 255 {
		t.Errorf("ToStored() = (%d, %d, %d), want r=0 g=255", r, g, b)
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		name string
		s    Sample
		want float64
	}{
		{name: "black", s: Black, want: 0},
		{name: "white", s: White, want: 1},
		{name: "red", s: Sample{R: 1}, want: 0.2126},
		{name: "green", s: Sample{G: 1}, want: 0.7152},
		{name: "blue", s: Sample{B: 1}, want: 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luma(tt.s); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Luma() = %f, want %f", got, tt.want)
			}
		})
	}
}
