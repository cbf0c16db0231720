package colour

import (
	"image"
)

// SamplePixels returns a linear Sample for every fully opaque pixel of buf,
// in row-major scan order. Pixels with any transparency are skipped.
func SamplePixels(buf *image.NRGBA) ([]Sample, error) {
	if buf == nil {
		return nil, ErrEmptySampleSet
	}

	bounds := buf.Rect
	samples := make([]Sample, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := buf.Pix[buf.PixOffset(bounds.Min.X, y):]
		for x := 0; x < bounds.Dx(); x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			if px[3] != 0xff {
				continue
			}
			samples = append(samples, ToLinear(px[0], px[1], px[2]))
		}
	}

	if len(samples) == 0 {
		return nil, ErrEmptySampleSet
	}
	return samples, nil
}
