// Package process runs an analysis from an input file to a report file.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/sintaxis/annotate"
	"github.com/revelaction/sintaxis/config"
	"github.com/revelaction/sintaxis/logging"
	"github.com/revelaction/sintaxis/render"
	"github.com/revelaction/sintaxis/report"
)

// OutputSuffix is appended to the input base name to name the report.
const OutputSuffix = "_output"

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// InputError carries the path of an input that could not be found.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInputNotFound, e.Path)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInputNotFound
}

func (e *InputError) Unwrap() error {
	return e.Err
}

type Options struct {
	Input  string
	Output string

	// OutputMode is config.OutputModeNone to write next to the working
	// directory, or config.OutputModeDir to write inside OutputDir.
	OutputMode string
	OutputDir  string

	// Format is config.FormatText or config.FormatJSON.
	Format string
}

// ResolveOutput returns the path the report is written to. An explicit
// Output is used as is; otherwise the path is derived from the input name.
// In dir mode, the output directory is created.
func ResolveOutput(opts Options) (string, error) {
	if opts.Output != "" {
		return opts.Output, nil
	}

	base := filepath.Base(opts.Input)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	ext := ".txt"
	if opts.Format == config.FormatJSON {
		ext = ".json"
	}
	name := base + OutputSuffix + ext

	if opts.OutputMode != config.OutputModeDir {
		return name, nil
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = config.DefaultOutputDir
	}
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	return filepath.Join(dir, name), nil
}

// Run reads the input file, annotates it with src, renders it with asm and
// writes the result. It returns the path of the written report.
//
// A report file left by a failed write is not removed.
func Run(ctx context.Context, opts Options, asm *report.Assembler, src annotate.Source) (string, error) {
	logger := logging.GetLogger("process")
	done := logging.LogOperationStart(logger, "process "+opts.Input)
	defer done()

	output, err := ResolveOutput(opts)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(opts.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &InputError{Path: opts.Input, Err: err}
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	text := annotate.Normalize(string(content))

	var data []byte
	switch opts.Format {
	case config.FormatJSON:
		// the doc itself is the output, there is no report to build
		doc, err := src.Annotate(ctx, text)
		if err != nil {
			return "", fmt.Errorf("annotate: %w", err)
		}
		logger.Info().Int("sentences", len(doc.Tokens)).Str("input", opts.Input).Msg("Annotated")

		var buf bytes.Buffer
		if err := render.NewJSONRenderer(&buf).Render(doc); err != nil {
			return "", fmt.Errorf("render json: %w", err)
		}
		data = buf.Bytes()
	default:
		r, err := asm.Analyze(ctx, text, src)
		if err != nil {
			return "", err
		}
		data = []byte(r)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}

	logger.Info().Str("output", output).Int("bytes", len(data)).Msg("Report written")
	return output, nil
}
