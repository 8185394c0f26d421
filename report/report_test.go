package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/revelaction/sintaxis/annotate"
	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catDoc() sent.Doc {
	return sent.Doc{
		Text: "The cat sleeps.",
		Tokens: [][]sent.Token{{
			{Index: 0, Head: 1, Text: "The", Idx: 0, Pos: "DET", Dep: "det", Lemma: "the"},
			{Index: 1, Head: 2, Text: "cat", Idx: 4, Pos: "NOUN", Dep: "nsubj", Lemma: "cat"},
			{Index: 2, Head: 2, Text: "sleeps", Idx: 8, Pos: "VERB", Dep: "ROOT", Lemma: "sleep"},
			{Index: 3, Head: 2, Text: ".", Idx: 14, Pos: "PUNCT", Dep: "punct", Lemma: "."},
		}},
	}
}

const catReport = `
TEXTO ORIGINAL
==============

========================= ORACIÓN 1 =========================
+-----------------+
| The cat sleeps. |
+-----------------+

ANÁLISIS POR TOKENS
===================
+------------+------------+-------------+------------+------------+
| TOKEN      | CATEGORÍA  | DEPENDENCIA | PRINCIPAL  | LEMA       |
+------------+------------+-------------+------------+------------+
| The        | DET        | det         | cat        | the        |
| cat        | NOUN       | nsubj       | sleeps     | cat        |
| sleeps     | VERB       | ROOT        | sleeps     | sleep      |
| .          | PUNCT      | punct       | sleeps     | .          |
+------------+------------+-------------+------------+------------+

ÁRBOL DE DEPENDENCIAS
=====================
The (det) --> cat
cat (nsubj) --> sleeps
sleeps (ROOT) --> sleeps
. (punct) --> sleeps

ESTRUCTURA SIMPLIFICADA
=======================
SUJETO
+------------+
|    cat     |
+------------+
       |
       v
VERBO
+------------+
|   sleeps   |
+------------+`

func TestBuild(t *testing.T) {
	out, err := NewAssembler(false).Build(catDoc())
	require.NoError(t, err)
	assert.Equal(t, catReport, out)
}

// yoTuDoc has two sentences the way spaCy exports them: ids and heads count
// over the whole doc and idx is the character offset in the doc text.
func yoTuDoc() sent.Doc {
	return sent.Doc{
		Text: "Yo como. Tú bebes.",
		Tokens: [][]sent.Token{
			{
				{Id: 0, Head: 1, Index: 0, SentenceId: 0, Text: "Yo", Idx: 0, Pos: "PRON", Dep: "nsubj", Lemma: "yo"},
				{Id: 1, Head: 1, Index: 1, SentenceId: 0, Text: "como", Idx: 3, Pos: "VERB", Dep: "ROOT", Lemma: "comer"},
				{Id: 2, Head: 1, Index: 2, SentenceId: 0, Text: ".", Idx: 7, Pos: "PUNCT", Dep: "punct", Lemma: "."},
			},
			{
				{Id: 3, Head: 4, Index: 0, SentenceId: 1, Text: "Tú", Idx: 9, Pos: "PRON", Dep: "nsubj", Lemma: "tú"},
				{Id: 4, Head: 4, Index: 1, SentenceId: 1, Text: "bebes", Idx: 12, Pos: "VERB", Dep: "ROOT", Lemma: "beber"},
				{Id: 5, Head: 4, Index: 2, SentenceId: 1, Text: ".", Idx: 17, Pos: "PUNCT", Dep: "punct", Lemma: "."},
			},
		},
	}
}

func TestBuildDocLevelHeads(t *testing.T) {
	out, err := NewAssembler(false).Build(yoTuDoc())
	require.NoError(t, err)

	i := strings.Index(out, Banner(2))
	require.Positive(t, i)
	second := out[i:]

	assert.Contains(t, second, "| Tú bebes. |")
	assert.Contains(t, second, "| Tú         | PRON       | nsubj       | bebes      | tú         |")
	assert.Contains(t, second, "| .          | PUNCT      | punct       | bebes      | .          |")
	assert.Contains(t, second, "Tú (nsubj) --> bebes\nbebes (ROOT) --> bebes\n. (punct) --> bebes")
	assert.NotContains(t, second, "como")

	first := out[:i]
	assert.Contains(t, first, "| Yo como. |")
	assert.Contains(t, first, "Yo (nsubj) --> como")
}

func TestBuildIsDeterministic(t *testing.T) {
	a := NewAssembler(true)
	doc := catDoc()

	first, err := a.Build(doc)
	require.NoError(t, err)
	second, err := a.Build(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildTranslated(t *testing.T) {
	out, err := NewAssembler(true).Build(catDoc())
	require.NoError(t, err)

	assert.Contains(t, out, "| cat        | SUSTANTIVO   | sujeto nominal | sleeps     | cat        |")
	assert.Contains(t, out, "cat (sujeto nominal) --> sleeps")
	assert.Contains(t, out, "sleeps (raíz) --> sleeps")
	assert.NotContains(t, out, "| NOUN")
}

func TestBuildNoSentences(t *testing.T) {
	out, err := NewAssembler(false).Build(sent.Doc{})
	require.NoError(t, err)
	assert.Equal(t, "\nTEXTO ORIGINAL\n==============", out)
}

func TestBuildSentenceWithoutTokens(t *testing.T) {
	doc := catDoc()
	doc.Tokens = append(doc.Tokens, []sent.Token{})

	out, err := NewAssembler(false).Build(doc)
	require.NoError(t, err)

	want := catReport + "\n" + Banner(2) + "\n+--+\n|  |\n+--+"
	assert.Equal(t, want, out)
	assert.Equal(t, 1, strings.Count(out, TitleTokens))
}

func TestBuildEntities(t *testing.T) {
	doc := sent.Doc{
		Tokens: [][]sent.Token{{
			{Index: 0, Head: 1, Text: "Ana", Pos: "PROPN", Dep: "nsubj", Lemma: "Ana", Ent: "PER"},
			{Index: 1, Head: 1, Text: "vive", Idx: 4, Pos: "VERB", Dep: "ROOT", Lemma: "vivir"},
			{Index: 2, Head: 3, Text: "en", Idx: 9, Pos: "ADP", Dep: "case", Lemma: "en"},
			{Index: 3, Head: 1, Text: "Lima", Idx: 12, Pos: "PROPN", Dep: "obl", Lemma: "Lima", Ent: "LOC"},
		}},
	}

	out, err := NewAssembler(true).Build(doc)
	require.NoError(t, err)
	assert.Contains(t, out, TitleEntities+"\n"+strings.Repeat("=", len(TitleEntities))+"\nAna: persona\nLima: lugar")

	out, err = NewAssembler(false).Build(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Ana: PER\nLima: LOC")
}

func TestBuildNoDiagramWithoutGroups(t *testing.T) {
	doc := sent.Doc{Tokens: [][]sent.Token{{{Text: "¡Hola!", Pos: "INTJ", Dep: "ROOT"}}}}

	out, err := NewAssembler(false).Build(doc)
	require.NoError(t, err)
	assert.NotContains(t, out, TitleStructure)
	assert.Contains(t, out, TitleTree)
}

func TestGroups(t *testing.T) {
	tokens := []sent.Token{
		{Text: "Juan", Dep: "nsubj", Pos: "PROPN"},
		{Text: "ha", Dep: "aux", Pos: "AUX"},
		{Text: "sido", Dep: "auxpass", Pos: "AUX"},
		{Text: "visto", Dep: "ROOT", Pos: "VERB"},
		{Text: "ella", Dep: "nsubjpass", Pos: "PRON"},
		{Text: "libro", Dep: "dobj", Pos: "NOUN"},
		{Text: "mesa", Dep: "pobj", Pos: "NOUN"},
	}

	subjects, verbs, objects := Groups(tokens)
	assert.Equal(t, []string{"Juan", "ella"}, subjects)
	assert.Equal(t, []string{"ha", "sido", "visto"}, verbs)
	assert.Equal(t, []string{"libro", "mesa"}, objects)
}

func TestAnalyze(t *testing.T) {
	out, err := NewAssembler(false).Analyze(context.Background(), "The cat sleeps.", annotate.Static{Doc: catDoc()})
	require.NoError(t, err)
	assert.Equal(t, catReport, out)
}

type failingSource struct{}

func (failingSource) Annotate(ctx context.Context, text string) (sent.Doc, error) {
	return sent.Doc{}, errors.New("sin modelo")
}

func TestAnalyzeAnnotateError(t *testing.T) {
	_, err := NewAssembler(false).Analyze(context.Background(), "x", failingSource{})
	assert.ErrorContains(t, err, "sin modelo")
}
