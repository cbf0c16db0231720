package colour

// Extremes holds the darkest and lightest entries of a palette.
type Extremes struct {
	Darkest  PaletteEntry
	Lightest PaletteEntry
	// Fallback is set when the palette was empty and black/white were used.
	Fallback bool
}

// SelectExtremes returns the palette entries with the lowest and highest
// luma. On equal luma the entry that comes first in the palette wins, which
// favours the more populous colour. An empty palette yields black and white.
func SelectExtremes(p *Palette) Extremes {
	if p.Len() == 0 {
		return Extremes{
			Darkest:  PaletteEntry{Colour: Black, Cluster: -1},
			Lightest: PaletteEntry{Colour: White, Cluster: -1},
			Fallback: true,
		}
	}

	darkest, lightest := p.Entries[0], p.Entries[0]
	minLuma := Luma(darkest.Colour)
	maxLuma := minLuma
	for _, e := range p.Entries[1:] {
		l := Luma(e.Colour)
		if l < minLuma {
			darkest, minLuma = e, l
		}
		if l > maxLuma {
			lightest, maxLuma = e, l
		}
	}

	return Extremes{Darkest: darkest, Lightest: lightest}
}
