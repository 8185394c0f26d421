package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newLsCmd() *cobra.Command {
	var lemma string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the docs stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.store()
			if err != nil {
				return err
			}

			docs, err := repo.List(lemma)
			if err != nil {
				return err
			}

			for _, doc := range docs {
				line := fmt.Sprintf("📖 %d %s", doc.Id, doc.Title)
				if len(doc.Labels) > 0 {
					line += " [" + strings.Join(doc.Labels, ", ") + "]"
				}
				if doc.Model != "" {
					line += " (" + doc.Model + ")"
				}
				fmt.Fprintln(a.ui.Out, line)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&lemma, "lemma", "", "Only docs containing this lemma")
	return cmd
}
