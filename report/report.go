// Package report assembles the text report of an annotated doc: a framed
// box per sentence followed by its token table, its dependency arrows and a
// subject/verb/object diagram.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/sintaxis/annotate"
	"github.com/revelaction/sintaxis/label"
	"github.com/revelaction/sintaxis/render"
	sent "github.com/revelaction/sintaxis/sentence"
)

// Titles of the report sections.
const (
	TitleOriginal  = "TEXTO ORIGINAL"
	TitleTokens    = "ANÁLISIS POR TOKENS"
	TitleTree      = "ÁRBOL DE DEPENDENCIAS"
	TitleStructure = "ESTRUCTURA SIMPLIFICADA"
	TitleEntities  = "ENTIDADES NOMBRADAS"
)

// TokenHeaders are the columns of the token table.
var TokenHeaders = []string{"TOKEN", "CATEGORÍA", "DEPENDENCIA", "PRINCIPAL", "LEMA"}

const bannerRule = 25

// Assembler builds reports. Translator decides whether category, dependency
// and entity codes are written as codes or as spanish labels.
type Assembler struct {
	Translator label.Translator
}

// NewAssembler returns an Assembler that translates labels when translate
// is true.
func NewAssembler(translate bool) *Assembler {
	return &Assembler{Translator: label.Translator{Enabled: translate}}
}

// Analyze annotates text with src and builds its report.
func (a *Assembler) Analyze(ctx context.Context, text string, src annotate.Source) (string, error) {
	doc, err := src.Annotate(ctx, text)
	if err != nil {
		return "", fmt.Errorf("annotate: %w", err)
	}

	return a.Build(doc)
}

// Build renders the report of doc. The output only depends on doc.
func (a *Assembler) Build(doc sent.Doc) (string, error) {
	blocks := []string{section(TitleOriginal, "")}

	for _, s := range doc.Sentences() {
		sb, err := a.sentence(s)
		if err != nil {
			return "", fmt.Errorf("sentence %d: %w", s.Id+1, err)
		}
		blocks = append(blocks, sb...)
	}

	return strings.Join(blocks, "\n"), nil
}

func (a *Assembler) sentence(s sent.Sentence) ([]string, error) {
	box, err := render.Box(s.Text, 0, render.Simple)
	if err != nil {
		return nil, err
	}

	blocks := []string{Banner(s.Id + 1), box}
	if len(s.Tokens) == 0 {
		return blocks, nil
	}

	rows := make([][]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		rows = append(rows, render.Row(
			t.Text,
			a.Translator.Category(t.Pos),
			a.Translator.Dependency(t.Dep),
			s.HeadOf(t).Text,
			t.Lemma,
		))
	}

	table, err := render.Table(TokenHeaders, rows)
	if err != nil {
		return nil, err
	}
	blocks = append(blocks, section(TitleTokens, ""), table)

	blocks = append(blocks, section(TitleTree, ""))
	for _, t := range s.Tokens {
		blocks = append(blocks, fmt.Sprintf("%s (%s) --> %s", t.Text, a.Translator.Dependency(t.Dep), s.HeadOf(t).Text))
	}

	subjects, verbs, objects := Groups(s.Tokens)
	if diagram := render.Diagram(subjects, verbs, objects); diagram != "" {
		blocks = append(blocks, section(TitleStructure, diagram))
	}

	var entities []string
	for _, t := range s.Tokens {
		if t.Ent != "" {
			entities = append(entities, fmt.Sprintf("%s: %s", t.Text, a.Translator.Entity(t.Ent)))
		}
	}
	if len(entities) > 0 {
		blocks = append(blocks, section(TitleEntities, strings.Join(entities, "\n")))
	}

	return blocks, nil
}

// Banner is the header line of the n-th sentence, preceded by a blank line.
func Banner(n int) string {
	rule := strings.Repeat("=", bannerRule)
	return fmt.Sprintf("\n%s ORACIÓN %d %s", rule, n, rule)
}

// section is a render.Section preceded by a blank line.
func section(title, body string) string {
	return "\n" + render.Section(title, body)
}

// Groups splits the tokens in subjects, verbs and objects: a dependency
// containing "subj" marks a subject, "obj" an object, and the VERB and AUX
// categories a verb.
func Groups(tokens []sent.Token) (subjects, verbs, objects []string) {
	for _, t := range tokens {
		if strings.Contains(t.Dep, "subj") {
			subjects = append(subjects, t.Text)
		}
		if t.Pos == "VERB" || t.Pos == "AUX" {
			verbs = append(verbs, t.Text)
		}
		if strings.Contains(t.Dep, "obj") {
			objects = append(objects, t.Text)
		}
	}
	return subjects, verbs, objects
}
