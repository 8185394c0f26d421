package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/sintaxis/config"
	"github.com/revelaction/sintaxis/render"
	"github.com/revelaction/sintaxis/report"
	"github.com/spf13/cobra"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the report of a stored doc",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid doc id %q", args[0])
			}

			repo, err := a.store()
			if err != nil {
				return err
			}

			doc, err := repo.Read(id)
			if err != nil {
				return err
			}

			if a.cfg.Format == config.FormatJSON {
				return render.NewJSONRenderer(a.ui.Out).Render(doc)
			}

			out, err := report.NewAssembler(a.cfg.Translate).Build(doc)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.ui.Out, out)
			return err
		},
	}
}
