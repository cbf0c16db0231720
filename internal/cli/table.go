package cli

import (
	"strings"
)

// Table formats rows into aligned columns. Each row may carry a prefix
// (such as an ANSI swatch) that is printed before the columns and not
// counted towards their width.
type Table struct {
	headers  []string
	prefixes []string
	rows     [][]string
	padding  int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row with an optional prefix. Rows are padded or truncated
// to the header count.
func (t *Table) AddRow(prefix string, row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.prefixes = append(t.prefixes, prefix)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	// Header and separator lines are indented by the widest visible prefix
	// so they line up with the data rows.
	indent := 0
	for _, p := range t.prefixes {
		if p != "" {
			indent = max(indent, visibleLen(p)+1)
		}
	}

	var sb strings.Builder
	sep := strings.Repeat(" ", t.padding)

	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(strings.TrimRight(joinPadded(t.headers, widths, sep), " "))
	sb.WriteString("\n")

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(strings.Join(dashes, sep))
	sb.WriteString("\n")

	for i, row := range t.rows {
		if p := t.prefixes[i]; p != "" {
			sb.WriteString(p)
			sb.WriteString(strings.Repeat(" ", indent-visibleLen(p)))
		} else {
			sb.WriteString(strings.Repeat(" ", indent))
		}
		sb.WriteString(strings.TrimRight(joinPadded(row, widths, sep), " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

func joinPadded(cells []string, widths []int, sep string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = padRight(c, widths[i])
	}
	return strings.Join(parts, sep)
}

// padRight pads a string with spaces on the right to reach the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// visibleLen returns the printed width of s, ignoring ANSI CSI sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for i := 0; i < len(s); i++ {
		switch {
		case inEscape:
			if s[i] >= 0x40 && s[i] <= 0x7e && s[i] != '[' {
				inEscape = false
			}
		case s[i] == 0x1b:
			inEscape = true
		default:
			n++
		}
	}
	return n
}
