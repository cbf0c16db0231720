package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"#", "HEX"})
	table.AddRow("", []string{"1", "#000000"})
	table.AddRow("", []string{"10", "#ffffff"})

	want := "#   HEX\n--  -------\n1   #000000\n10  #ffffff\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestTableRenderWithPrefix(t *testing.T) {
	table := NewTable([]string{"HEX"})
	table.AddRow("\x1b[48;2;0;0;0m   \x1b[0m", []string{"#000000"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Render() produced %d lines, want 3", len(lines))
	}
	if lines[0] != "    HEX" {
		t.Errorf("header = %q, want indented by swatch width", lines[0])
	}
	if !strings.HasSuffix(lines[2], "\x1b[0m #000000") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTablePadsShortRows(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow("", []string{"x"})
	if got := table.Render(); got != "A  B\n-  -\nx\n" {
		t.Errorf("Render() = %q", got)
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestVisibleLen(t *testing.T) {
	tests := map[string]int{
		"":                             0,
		"abc":                          3,
		"\x1b[48;2;1;2;3m   \x1b[0m":   3,
		"\x1b[38;2;255;0;0mred\x1b[0m": 3,
	}
	for s, want := range tests {
		if got := visibleLen(s); got != want {
			t.Errorf("visibleLen(%q) = %d, want %d", s, got, want)
		}
	}
}
