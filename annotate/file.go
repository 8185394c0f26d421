package annotate

import (
	"context"

	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/revelaction/sintaxis/storage/filesystem"
)

// File returns the doc annotated beforehand and saved as JSON in Path. The
// text is used only when the doc does not carry its own.
type File struct {
	Path string
}

func (f File) Annotate(ctx context.Context, text string) (sent.Doc, error) {
	if err := ctx.Err(); err != nil {
		return sent.Doc{}, err
	}

	doc, err := filesystem.ReadDoc(f.Path)
	if err != nil {
		return sent.Doc{}, err
	}

	if doc.Text == "" {
		doc.Text = text
	}

	return doc, nil
}
