package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/revelaction/sintaxis/annotate"
	"github.com/revelaction/sintaxis/config"
	"github.com/revelaction/sintaxis/logging"
	"github.com/revelaction/sintaxis/process"
	"github.com/revelaction/sintaxis/report"
	"github.com/revelaction/sintaxis/storage/sqlite/zombiezen"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const usage = "Uso: sintaxis <archivo_entrada>"

// errUsage is returned when the input file argument is missing.
var errUsage = errors.New(usage)

// app holds what the commands share once the config is loaded.
type app struct {
	ui      UI
	cfgFile string
	cfg     *config.Config
	pool    Pool
}

// run executes the command line and returns the process exit code.
func run(args []string, ui UI) int {
	a := &app{ui: ui}
	defer a.pool.Close()

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(ui.Out)
	root.SetErr(ui.Err)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var inputErr *process.InputError
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(ui.Err, usage)
	case errors.As(err, &inputErr):
		fmt.Fprintf(ui.Err, "Error: El archivo de entrada '%s' no fue encontrado.\n", inputErr.Path)
	default:
		fmt.Fprintf(ui.Err, "Ocurrió un error: %v\n", err)
	}

	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	var (
		output      string
		annotations string
	)

	root := &cobra.Command{
		Use:   "sintaxis <archivo_entrada>",
		Short: "Syntactic analysis report of a text file",
		Long: `sintaxis annotates a text with an NLP model (tokens, part of speech,
dependencies and lemmas) and writes a plain text report with a table per
sentence, its dependency arrows and a subject/verb/object diagram.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLogger(cfg.Verbose, a.ui.Err)
			log.Debug().Str("command", cmd.Name()).Str("config", cfg.File).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errUsage
			}

			src, err := a.source(annotations)
			if err != nil {
				return err
			}

			opts := process.Options{
				Input:      args[0],
				Output:     output,
				OutputMode: a.cfg.OutputMode,
				OutputDir:  a.cfg.OutputDir,
				Format:     a.cfg.Format,
			}

			path, err := process.Run(cmd.Context(), opts, report.NewAssembler(a.cfg.Translate), src)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.ui.Out, "Análisis completado. Resultado guardado en %s\n", path)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	pf.CountP("verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.Bool("translate", false, "Translate category and dependency labels to spanish")
	pf.String("model", "", "Model name passed to the annotator")
	pf.String("annotator", "", "Annotator command")
	pf.Bool("cache", false, "Reuse and store annotations in the database")
	pf.String("db", "", "Database path")
	pf.String("format", "", "Output format: text or json")

	f := root.Flags()
	f.StringVarP(&output, "output", "o", "", "Output file (default is <input>_output.txt)")
	f.String("output-mode", "", "Where the default output goes: none or dir")
	f.String("output-dir", "", "Output directory for --output-mode dir")
	f.StringVar(&annotations, "annotations", "", "Use a pre-annotated JSON doc instead of running the annotator")

	root.AddCommand(
		a.newImportCmd(),
		a.newLsCmd(),
		a.newShowCmd(),
		a.newReplCmd(),
		a.newStatCmd(),
		newVersionCmd(a.ui),
	)

	return root
}

// source builds the annotation source from the config. A pre-annotated
// file takes precedence over the annotator command.
func (a *app) source(annotations string) (annotate.Source, error) {
	if annotations != "" {
		return annotate.File{Path: annotations}, nil
	}

	var src annotate.Source = annotate.Command{
		Name:  a.cfg.Annotator.Command,
		Args:  a.cfg.Annotator.Args,
		Model: a.cfg.Model,
	}

	if !a.cfg.Cache {
		return src, nil
	}

	pool, err := a.pool.Open(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return annotate.Cached{Source: src, Store: zombiezen.NewDocHandler(pool), Model: a.cfg.Model}, nil
}

// store opens the doc database.
func (a *app) store() (*zombiezen.DocHandler, error) {
	pool, err := a.pool.Open(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocHandler(pool), nil
}
