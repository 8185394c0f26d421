package render

import (
	"fmt"
	"strings"
)

// Style selects the border characters of a Box.
type Style int

const (
	Simple Style = iota
	Double
)

type borders struct {
	horizontal string
	vertical   string
	corner     string
}

var styleBorders = map[Style]borders{
	Simple: {horizontal: "-", vertical: "|", corner: "+"},
	Double: {horizontal: "=", vertical: "|", corner: "+"},
}

// ParseStyle returns the Style for its name. Both the spanish "doble" and
// "double" name the Double style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "simple", "":
		return Simple, nil
	case "doble", "double":
		return Double, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

func (s Style) String() string {
	switch s {
	case Simple:
		return "simple"
	case Double:
		return "doble"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Box frames text. With a width <= 0, the frame is four columns wider than
// the longest line.
//
// Lines wider than width-4 are not truncated: their row overflows the frame.
func Box(text string, w int, style Style) (string, error) {
	b, ok := styleBorders[style]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}

	lines := strings.Split(text, "\n")
	if w <= 0 {
		for _, line := range lines {
			w = max(w, width(line))
		}
		w += 4
	}

	edge := b.corner + repeat(b.horizontal, w-2) + b.corner

	result := make([]string, 0, len(lines)+2)
	result = append(result, edge)
	for _, line := range lines {
		result = append(result, b.vertical+" "+padRight(line, w-4)+" "+b.vertical)
	}
	result = append(result, edge)

	return strings.Join(result, "\n"), nil
}
