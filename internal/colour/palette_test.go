package colour

import (
	"encoding/json"
	"strings"
	"testing"
)

func testPalette() *Palette {
	return NewPalette([]PaletteEntry{
		{Colour: Sample{R: 1}, Share: 0.5, Cluster: 1},
		{Colour: Sample{G: 1}, Share: 0.3, Cluster: 0},
		{Colour: Sample{B: 1}, Share: 0.2, Cluster: 2},
	})
}

func TestPaletteLen(t *testing.T) {
	tests := []struct {
		name    string
		palette *Palette
		want    int
	}{
		{name: "nil palette", palette: nil, want: 0},
		{name: "empty palette", palette: NewPalette(nil), want: 0},
		{name: "multiple colours", palette: testPalette(), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.palette.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   RGB
	}{
		{name: "red", sample: Sample{R: 1}, want: RGB{R: 255}},
		{name: "green", sample: Sample{G: 1}, want: RGB{G: 255}},
		{name: "blue", sample: Sample{B: 1}, want: RGB{B: 255}},
		{name: "white", sample: White, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", sample: Black, want: RGB{}},
		{name: "mid grey", sample: ToLinear(128, 128, 128), want: RGB{R: 128, G: 128, B: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.sample); got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255}, want: "#ff0000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "black", rgb: RGB{}, want: "#000000"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
		{name: "lowercase", rgb: RGB{R: 0xab, G: 0xcd, B: 0xef}, want: "#abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPaletteToHex(t *testing.T) {
	got := testPalette().ToHex()
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ToHex() = %v, want %v", got, want)
	}
}

func TestPaletteToJSON(t *testing.T) {
	data, err := testPalette().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if decoded.Count != 3 {
		t.Errorf("Count = %d, want 3", decoded.Count)
	}
	if decoded.Colours[0].Hex != "#ff0000" || decoded.Colours[0].Share != 0.5 {
		t.Errorf("first colour = %+v", decoded.Colours[0])
	}
}

func TestPaletteString(t *testing.T) {
	if got := NewPalette(nil).String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}
	s := testPalette().String()
	if !strings.Contains(s, "3 colours") || !strings.Contains(s, "#00ff00") {
		t.Errorf("String() = %q", s)
	}
}

func TestPaletteAll(t *testing.T) {
	count := 0
	for i, e := range testPalette().All() {
		if i == 2 {
			break
		}
		if e.Share == 0 {
			t.Errorf("entry %d has zero share", i)
		}
		count++
	}
	if count != 2 {
		t.Errorf("iterated %d entries before break, want 2", count)
	}
}
