package process

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/sintaxis/annotate"
	"github.com/revelaction/sintaxis/config"
	"github.com/revelaction/sintaxis/report"
	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatoDoc() sent.Doc {
	return sent.Doc{
		Tokens: [][]sent.Token{{
			{Index: 0, Head: 1, Text: "gato", Pos: "NOUN", Dep: "nsubj", Lemma: "gato"},
			{Index: 1, Head: 1, Text: "duerme", Idx: 5, Pos: "VERB", Dep: "ROOT", Lemma: "dormir"},
		}},
	}
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveOutput(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"explicit", Options{Input: "a.txt", Output: "x/y.txt"}, "x/y.txt"},
		{"none mode", Options{Input: "textos/cuento.txt", OutputMode: config.OutputModeNone}, "cuento_output.txt"},
		{"no extension", Options{Input: "cuento"}, "cuento_output.txt"},
		{"json", Options{Input: "cuento.txt", Format: config.FormatJSON}, "cuento_output.json"},
		{"dir mode", Options{Input: "/tmp/cuento.md", OutputMode: config.OutputModeDir, OutputDir: "informes"}, filepath.Join(dir, "informes", "cuento_output.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOutput(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	info, err := os.Stat(filepath.Join(dir, "informes"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	input := writeInput(t, dir, "gato.txt", "gato duerme")

	out, err := Run(context.Background(), Options{Input: input}, report.NewAssembler(false), annotate.Static{Doc: gatoDoc()})
	require.NoError(t, err)
	assert.Equal(t, "gato_output.txt", out)

	got, err := os.ReadFile(filepath.Join(dir, out))
	require.NoError(t, err)

	want, err := report.NewAssembler(false).Build(gatoDoc())
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestRunDirMode(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	input := writeInput(t, dir, "gato.txt", "gato duerme")

	opts := Options{Input: input, OutputMode: config.OutputModeDir, OutputDir: "output"}
	out, err := Run(context.Background(), opts, report.NewAssembler(true), annotate.Static{Doc: gatoDoc()})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "output", "gato_output.txt"), out)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "SUSTANTIVO")
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	input := writeInput(t, dir, "gato.txt", "gato duerme")

	opts := Options{Input: input, Format: config.FormatJSON}
	out, err := Run(context.Background(), opts, report.NewAssembler(false), annotate.Static{Doc: gatoDoc()})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc sent.Doc
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, gatoDoc().Tokens, doc.Tokens)
}

func TestRunInputNotFound(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	missing := filepath.Join(dir, "no-existe.txt")

	_, err := Run(context.Background(), Options{Input: missing}, report.NewAssembler(false), annotate.Static{})
	require.ErrorIs(t, err, ErrInputNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, missing, inputErr.Path)
}

func TestRunNoSentences(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	input := writeInput(t, dir, "vacio.txt", "")

	out, err := Run(context.Background(), Options{Input: input}, report.NewAssembler(false), annotate.Static{Doc: sent.Doc{}})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\n"+report.TitleOriginal+"\n==============", string(got))
}

type failingSource struct{}

func (failingSource) Annotate(ctx context.Context, text string) (sent.Doc, error) {
	return sent.Doc{}, errors.New("modelo roto")
}

func TestRunAnnotateFailure(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	input := writeInput(t, dir, "gato.txt", "gato")

	_, err := Run(context.Background(), Options{Input: input}, report.NewAssembler(false), failingSource{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "modelo roto")

	_, statErr := os.Stat(filepath.Join(dir, "gato_output.txt"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRunAnnotateFailureBothFormats(t *testing.T) {
	for _, format := range []string{config.FormatText, config.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			testChdir(t, dir)
			input := writeInput(t, dir, "gato.txt", "gato")

			_, err := Run(context.Background(), Options{Input: input, Format: format}, report.NewAssembler(false), failingSource{})
			assert.ErrorContains(t, err, "annotate: modelo roto")
		})
	}
}

// testChdir changes the working directory to dir and restores it when the
// test ends (equivalent of testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
