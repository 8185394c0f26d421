// Package query is the interactive prompt: every line typed is annotated
// and its report printed.
package query

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/sintaxis/annotate"
	"github.com/revelaction/sintaxis/report"
)

const (
	quitCommand      = "quit"
	translateCommand = ":traducir"
)

type Handler struct {
	Source    annotate.Source
	Assembler *report.Assembler
	Out       io.Writer
}

func NewHandler(src annotate.Source, asm *report.Assembler, out io.Writer) *Handler {
	return &Handler{
		Source:    src,
		Assembler: asm,
		Out:       out,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprintln(h.Out, "🔑 Ctrl+T: traducir etiquetas, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      ✍  ", h.completer,
			prompt.OptionTitle("sintaxis"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlT,
				Fn: func(buf *prompt.Buffer) {
					fmt.Fprintln(h.Out, h.toggleTranslation())
				}}),
		)

		if strings.TrimSpace(in) == quitCommand {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		history = append(history, in)

		out, err := h.Eval(ctx, in)
		if err != nil {
			fmt.Fprintf(h.Out, "Error: %v\n", err)
			continue
		}

		if out != "" {
			fmt.Fprintln(h.Out, out)
		}
	}
}

// Eval runs one prompt line and returns what should be printed.
func (h *Handler) Eval(ctx context.Context, in string) (string, error) {
	in = strings.TrimSpace(in)
	switch in {
	case "":
		return "", nil
	case translateCommand:
		return h.toggleTranslation(), nil
	}

	return h.Assembler.Analyze(ctx, annotate.Normalize(in), h.Source)
}

func (h *Handler) toggleTranslation() string {
	h.Assembler.Translator.Enabled = !h.Assembler.Translator.Enabled
	return fmt.Sprintf("Traducción: %t", h.Assembler.Translator.Enabled)
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: translateCommand, Description: "activa o desactiva la traducción de etiquetas"},
		{Text: quitCommand, Description: "salir"},
	}

	word := in.GetWordBeforeCursor()
	if word == "" {
		return []prompt.Suggest{}
	}

	return prompt.FilterHasPrefix(s, word, true)
}
