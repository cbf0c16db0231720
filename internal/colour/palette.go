package colour

import (
	"encoding/json"
	"fmt"
)

// PaletteEntry is one colour of a palette together with the fraction of
// sampled pixels its cluster received.
type PaletteEntry struct {
	Colour Sample
	Share  float64
	// Cluster is the index of the centroid this entry was built from.
	Cluster int
}

// Hex returns the entry colour as a hex string (e.g., "#1a2b3c").
func (e PaletteEntry) Hex() string {
	return Hex(e.Colour)
}

// Palette is an ordered set of colours, most populous first.
type Palette struct {
	Entries []PaletteEntry
}

// NewPalette creates a new Palette with the given entries.
func NewPalette(entries []PaletteEntry) *Palette {
	return &Palette{
		Entries: entries,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// RGB represents a colour as stored 8-bit sRGB channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a linear Sample to 8-bit sRGB.
func ToRGB(s Sample) RGB {
	r, g, b := ToStored(s)
	return RGB{R: r, G: g, B: b}
}

// ToHex converts the palette colours to hex strings.
// Returns a slice of hex colour codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColours := make([]string, p.Len())
	for i := range hexColours {
		hexColours[i] = p.Entries[i].Hex()
	}
	return hexColours
}

// ColourJSON represents a palette entry in JSON output format.
type ColourJSON struct {
	Hex   string  `json:"hex"`
	RGB   RGB     `json:"rgb"`
	Share float64 `json:"share"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, p.Len())
	for i := range colours {
		e := p.Entries[i]
		colours[i] = ColourJSON{
			Hex:   e.Hex(),
			RGB:   ToRGB(e.Colour),
			Share: e.Share,
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(colours),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if p.Len() == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", p.Len())
	for i, e := range p.Entries {
		rgb := ToRGB(e.Colour)
		result += fmt.Sprintf("  %2d: %s (%s) %5.1f%%\n", i+1, rgb.Hex(), rgb.String(), e.Share*100)
	}
	return result
}

// All returns an iterator over all entries in the palette.
func (p *Palette) All() func(func(int, PaletteEntry) bool) {
	return func(yield func(int, PaletteEntry) bool) {
		for i := range p.Len() {
			if !yield(i, p.Entries[i]) {
				return
			}
		}
	}
}
