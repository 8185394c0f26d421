package stat

import (
	"testing"

	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	doc := sent.Doc{Tokens: [][]sent.Token{
		{{Pos: "DET"}, {Pos: "NOUN"}, {Pos: "VERB"}, {Pos: "PUNCT"}},
		{{Pos: "PRON"}, {Pos: "VERB"}},
	}}

	h := NewHandler()
	h.Aggregate(doc)
	s := h.Get()

	assert.Equal(t, 2, s.NumSentences)
	assert.Equal(t, 6, s.NumTokens)
	assert.Equal(t, 3, s.TokensPerSentenceMean)
	assert.Equal(t, map[int]int{4: 1, 2: 1}, s.TokensPerSentenceDis)
	assert.Equal(t, []string{"VERB", "DET", "NOUN", "PRON", "PUNCT"}, s.PosByCount())
}

func TestAggregateEmptyDoc(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sent.Doc{})

	s := h.Get()
	assert.Zero(t, s.NumSentences)
	assert.Zero(t, s.TokensPerSentenceMean)
}
