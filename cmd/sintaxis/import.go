package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/mattn/go-isatty"
	"github.com/revelaction/sintaxis/annotate"
	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/revelaction/sintaxis/storage/filesystem"
	"github.com/spf13/cobra"
)

type importItem struct {
	name string
	load func() (sent.Doc, string, error)
}

func (a *app) newImportCmd() *cobra.Command {
	var (
		dir    string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Annotate text files, or read JSON docs, and store them in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && dir == "" {
				return fmt.Errorf("nothing to import: give files or --dir")
			}

			items, err := a.importItems(cmd, args, dir)
			if err != nil {
				return err
			}

			dst, err := a.store()
			if err != nil {
				return err
			}

			var bar *uiprogress.Bar
			var progress *uiprogress.Progress
			if f, ok := a.ui.Err.(*os.File); ok && isatty.IsTerminal(f.Fd()) && len(items) > 1 {
				progress = uiprogress.New()
				progress.SetOut(a.ui.Err)
				bar = progress.AddBar(len(items))
				bar.AppendCompleted()
				bar.PrependElapsed()
				progress.Start()
			}
			stop := func() {
				if progress != nil {
					progress.Stop()
				}
			}

			count := 0
			for _, item := range items {
				doc, hash, err := item.load()
				if err != nil {
					stop()
					return fmt.Errorf("failed to read doc %s: %w", item.name, err)
				}

				if doc.Title == "" {
					doc.Title = item.name
				}
				if len(labels) > 0 {
					doc.Labels = labels
				}

				id, err := dst.Write(doc, hash)
				if err != nil {
					stop()
					return fmt.Errorf("failed to write doc %s: %w", item.name, err)
				}
				count++

				if bar != nil {
					bar.Incr()
				} else {
					fmt.Fprintf(a.ui.Out, "📖 %d %s\n", id, doc.Title)
				}
			}
			stop()

			fmt.Fprintf(a.ui.Out, "Successfully imported %d docs to %s\n", count, a.cfg.DBPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory of JSON docs to import")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "Label for the imported docs (repeatable)")
	return cmd
}

// importItems lists what to import: text files are annotated, JSON files
// and the docs of dir are read as they are.
func (a *app) importItems(cmd *cobra.Command, files []string, dir string) ([]importItem, error) {
	var items []importItem

	if dir != "" {
		src, err := filesystem.NewDocHandler(dir)
		if err != nil {
			return nil, err
		}
		if err := src.Load(nil); err != nil {
			return nil, err
		}

		for _, d := range src.List() {
			id := d.Id
			items = append(items, importItem{
				name: d.Title,
				load: func() (sent.Doc, string, error) {
					doc, err := src.Read(id)
					if err != nil {
						return sent.Doc{}, "", err
					}
					return doc, docHash(doc), nil
				},
			})
		}
	}

	var src annotate.Source
	for _, path := range files {
		path := path
		name := filepath.Base(path)

		if filepath.Ext(path) == ".json" {
			items = append(items, importItem{
				name: name,
				load: func() (sent.Doc, string, error) {
					doc, err := filesystem.ReadDoc(path)
					if err != nil {
						return sent.Doc{}, "", err
					}
					return doc, docHash(doc), nil
				},
			})
			continue
		}

		if src == nil {
			s, err := a.source("")
			if err != nil {
				return nil, err
			}
			src = s
		}

		items = append(items, importItem{
			name: name,
			load: func() (sent.Doc, string, error) {
				content, err := os.ReadFile(path)
				if err != nil {
					return sent.Doc{}, "", err
				}
				text := annotate.Normalize(string(content))
				doc, err := src.Annotate(cmd.Context(), text)
				if err != nil {
					return sent.Doc{}, "", err
				}
				return doc, annotate.Hash(a.cfg.Model, text), nil
			},
		})
	}

	return items, nil
}

// docHash identifies a pre-annotated doc by its text, or by its tokens if
// it carries no text.
func docHash(doc sent.Doc) string {
	if doc.Text != "" {
		return annotate.Hash(doc.Model, doc.Text)
	}

	var joined string
	for _, tokens := range doc.Tokens {
		joined += sent.Join(tokens) + "\n"
	}
	return annotate.Hash(doc.Model, joined)
}
