package render

import (
	"strings"
)

// Labels of the diagram boxes.
const (
	SubjectLabel = "SUJETO"
	VerbLabel    = "VERBO"
	ObjectLabel  = "OBJETO"
)

const minDiagramWidth = 10

// Diagram draws the subjects, verbs and objects of a sentence as a chain of
// boxes joined by down arrows. Empty groups have no box; an arrow joins
// each box to the next present one, so subject and object are connected
// when there is no verb.
//
// It is a heuristic summary, not a parse tree: sentences with several
// clauses are drawn as one chain.
func Diagram(subjects, verbs, objects []string) string {
	groups := []struct {
		label   string
		members []string
	}{
		{SubjectLabel, subjects},
		{VerbLabel, verbs},
		{ObjectLabel, objects},
	}

	w := minDiagramWidth
	for _, g := range groups {
		w = max(w, width(strings.Join(g.members, "+")))
	}
	w += 2

	var lines []string
	prev := false
	for _, g := range groups {
		if len(g.members) == 0 {
			continue
		}

		if prev {
			lines = append(lines, arrow(w)...)
		}

		lines = append(lines, diagramBox(g.label, strings.Join(g.members, "+"), w)...)
		prev = true
	}

	return strings.Join(lines, "\n")
}

func diagramBox(label, content string, w int) []string {
	edge := "+" + repeat("-", w) + "+"
	return []string{
		label,
		edge,
		"|" + center(content, w) + "|",
		edge,
	}
}

// arrow points down from the middle of a box of width w.
func arrow(w int) []string {
	indent := repeat(" ", w/2+1)
	return []string{indent + "|", indent + "v"}
}

func center(s string, w int) string {
	gap := w - width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return repeat(" ", left) + s + repeat(" ", gap-left)
}
