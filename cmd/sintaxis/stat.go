package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/sintaxis/label"
	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/revelaction/sintaxis/stat"
	"github.com/spf13/cobra"
)

func (a *app) newStatCmd() *cobra.Command {
	var sentId int

	cmd := &cobra.Command{
		Use:   "stat <id>",
		Short: "Print token statistics of a stored doc",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docId, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid doc id %q", args[0])
			}

			repo, err := a.store()
			if err != nil {
				return err
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("sentence") {
				if sentId < 0 || sentId >= len(doc.Tokens) {
					return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Tokens))
				}
				doc = sent.Doc{Tokens: [][]sent.Token{doc.Tokens[sentId]}}
			}

			hdl := stat.NewHandler()
			hdl.Aggregate(doc)

			stats := hdl.Get()
			fmt.Fprintf(a.ui.Out, "Num sentences %d, num tokens per sentence %d\n", stats.NumSentences, stats.TokensPerSentenceMean)

			tr := label.Translator{Enabled: a.cfg.Translate}
			for _, pos := range stats.PosByCount() {
				fmt.Fprintf(a.ui.Out, "%-16s %d\n", tr.Category(pos), stats.Pos[pos])
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&sentId, "sentence", "s", 0, "Only the sentence at this index")
	return cmd
}
