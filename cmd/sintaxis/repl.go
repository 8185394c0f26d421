package main

import (
	"github.com/revelaction/sintaxis/query"
	"github.com/revelaction/sintaxis/report"
	"github.com/spf13/cobra"
)

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Analyze the sentences typed in an interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source("")
			if err != nil {
				return err
			}

			h := query.NewHandler(src, report.NewAssembler(a.cfg.Translate), a.ui.Out)
			return h.Run(cmd.Context())
		},
	}
}
