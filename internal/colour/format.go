package colour

import (
	"strings"

	"github.com/fatih/color"
)

// defaultSwatchWidth is the number of cells in a swatch block.
const defaultSwatchWidth = 3

// Hex formats a linear colour as a lowercase "#rrggbb" string.
func Hex(s Sample) string {
	return ToRGB(s).Hex()
}

// Swatch returns a block of width cells with the colour as truecolour
// background. With enabled false the block is plain spaces.
func Swatch(s Sample, width int, enabled bool) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	block := strings.Repeat(" ", width)
	if !enabled {
		return block
	}

	rgb := ToRGB(s)
	c := color.BgRGB(int(rgb.R), int(rgb.G), int(rgb.B))
	c.EnableColor()
	return c.Sprint(block)
}

// SwatchRow renders every palette colour as adjacent swatches.
func SwatchRow(p *Palette, width int, enabled bool) string {
	var sb strings.Builder
	for _, e := range p.All() {
		sb.WriteString(Swatch(e.Colour, width, enabled))
	}
	return sb.String()
}

// FormatColourWithPreview formats a colour with its swatch and hex code.
func FormatColourWithPreview(s Sample, width int, enabled bool) string {
	return Swatch(s, width, enabled) + " " + Hex(s)
}
