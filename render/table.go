package render

import (
	"fmt"
	"strings"
)

// minColumnWidth is the narrowest a table column is rendered.
const minColumnWidth = 10

// Row converts arbitrary cells to a table row.
func Row(cells ...any) []string {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	return row
}

// Table renders headers and rows as a bordered grid. Every column is as wide
// as its widest cell, and never narrower than minColumnWidth.
func Table(headers []string, rows [][]string) (string, error) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(width(h), minColumnWidth)
	}

	for n, row := range rows {
		if len(row) != len(headers) {
			return "", fmt.Errorf("%w: row %d has %d cells, header has %d", ErrColumnCount, n, len(row), len(headers))
		}
		for i, cell := range row {
			widths[i] = max(widths[i], width(cell))
		}
	}

	runs := make([]string, len(widths))
	for i, w := range widths {
		runs[i] = repeat("-", w+2)
	}
	border := "+" + strings.Join(runs, "+") + "+"

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, border, tableRow(headers, widths), border)
	for _, row := range rows {
		lines = append(lines, tableRow(row, widths))
	}
	lines = append(lines, border)

	return strings.Join(lines, "\n"), nil
}

func tableRow(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(padRight(cell, widths[i]))
		b.WriteString(" |")
	}
	return b.String()
}
