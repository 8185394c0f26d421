// Package render draws the plain text blocks of a report: framed boxes,
// grids, titled sections and the structure diagram.
//
// All widths are display widths, so that accented and wide characters keep
// the frames aligned in a terminal.
package render

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrUnknownStyle is returned for a box style that has no border set.
	ErrUnknownStyle = errors.New("unknown box style")

	// ErrColumnCount is returned when a table row and the header differ in
	// number of cells.
	ErrColumnCount = errors.New("row and header column count differ")
)

// width returns the display width of s.
func width(s string) int {
	return runewidth.StringWidth(s)
}

// padRight left aligns s in a field of w columns. A longer s is returned
// unchanged.
func padRight(s string, w int) string {
	return runewidth.FillRight(s, w)
}

// repeat is strings.Repeat that returns "" for negative counts.
func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
