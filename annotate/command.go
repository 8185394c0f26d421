package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/revelaction/sintaxis/logging"
	sent "github.com/revelaction/sintaxis/sentence"
)

// ModelPlaceholder is replaced by the model name in the command arguments.
const ModelPlaceholder = "{model}"

// maxStderr bounds the command error output kept in errors.
const maxStderr = 512

// Command annotates a text with an external program. The program reads the
// text from stdin and writes the doc as JSON to stdout.
type Command struct {
	Name  string
	Args  []string
	Model string
}

func (c Command) args() []string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		if a == ExporterPlaceholder {
			args[i] = Exporter
			continue
		}
		args[i] = strings.ReplaceAll(a, ModelPlaceholder, c.Model)
	}
	return args
}

func (c Command) Annotate(ctx context.Context, text string) (sent.Doc, error) {
	if c.Name == "" {
		return sent.Doc{}, errors.New("no annotator command configured")
	}

	logger := logging.GetLogger("annotate")
	args := c.args()
	logger.Debug().Str("command", c.Name).Strs("args", c.Args).Int("bytes", len(text)).Msg("Running annotator")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Name, args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := excerpt(strings.TrimSpace(stderr.String()), maxStderr)
		if msg != "" {
			return sent.Doc{}, fmt.Errorf("annotator %s failed: %w: %s", c.Name, err, msg)
		}
		return sent.Doc{}, fmt.Errorf("annotator %s failed: %w", c.Name, err)
	}

	var doc sent.Doc
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		return sent.Doc{}, fmt.Errorf("annotator %s wrote an invalid doc: %w", c.Name, err)
	}

	if doc.Text == "" {
		doc.Text = text
	}
	if doc.Model == "" {
		doc.Model = c.Model
	}

	logger.Debug().Int("sentences", len(doc.Tokens)).Msg("Annotator finished")
	return doc, nil
}

// excerpt cuts s to at most n bytes without splitting a rune.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
