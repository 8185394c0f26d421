// Package stat aggregates token counts over analyzed docs.
package stat

import (
	"sort"

	sent "github.com/revelaction/sintaxis/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// Pos counts the tokens per part of speech category.
	Pos map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, Pos: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences of doc to the stats. It can be called for
// several docs.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumSentences += len(doc.Tokens)
	for _, tokens := range doc.Tokens {
		h.stats.NumTokens += len(tokens)
		h.stats.TokensPerSentenceDis[len(tokens)]++
		for _, token := range tokens {
			h.stats.Pos[token.Pos]++
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// PosByCount returns the categories in decreasing count order, ties by name.
func (s Stats) PosByCount() []string {
	pos := make([]string, 0, len(s.Pos))
	for p := range s.Pos {
		pos = append(pos, p)
	}
	sort.Slice(pos, func(i, j int) bool {
		if s.Pos[pos[i]] != s.Pos[pos[j]] {
			return s.Pos[pos[i]] > s.Pos[pos[j]]
		}
		return pos[i] < pos[j]
	})
	return pos
}
