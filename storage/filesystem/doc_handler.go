package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/revelaction/sintaxis/storage"
)

// DocHandler reads a directory of annotated docs, one JSON file per doc.
// It is read only.
type DocHandler struct {
	docDir string

	// In-memory cache
	docs     []sent.Doc
	docNames []string
}

// NewDocHandler creates a filesystem document handler.
func NewDocHandler(docDir string) (*DocHandler, error) {
	info, err := os.Stat(docDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", docDir)
	}

	return &DocHandler{
		docDir: docDir,
	}, nil
}

// Load preloads all docs into memory.
// The callback is called for each file loaded (total, current_name).
func (h *DocHandler) Load(cb func(total int, name string)) error {
	if h.docs != nil {
		return nil
	}

	files, err := os.ReadDir(h.docDir)
	if err != nil {
		return err
	}

	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			h.docNames = append(h.docNames, file.Name())
		}
	}
	sort.Strings(h.docNames)

	h.docs = make([]sent.Doc, 0, len(h.docNames))

	total := len(h.docNames)
	for i, name := range h.docNames {
		if cb != nil {
			cb(total, name)
		}

		doc, err := ReadDoc(filepath.Join(h.docDir, name))
		if err != nil {
			return err
		}
		if doc.Title == "" {
			doc.Title = name
		}
		doc.Id = i

		h.docs = append(h.docs, doc)
	}

	return nil
}

func (h *DocHandler) Names() []string {
	return h.docNames
}

// List returns the loaded docs without their tokens.
func (h *DocHandler) List() []sent.Doc {
	list := make([]sent.Doc, 0, len(h.docs))
	for _, d := range h.docs {
		list = append(list, sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels, Model: d.Model})
	}
	return list
}

func (h *DocHandler) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("%w: doc id out of range: %d", storage.ErrNotFound, id)
	}
	return h.docs[id], nil
}

func (h *DocHandler) DocForName(name string) (sent.Doc, error) {
	for _, doc := range h.docs {
		if doc.Title == name {
			return doc, nil
		}
	}
	return sent.Doc{}, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, err
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("invalid doc %s: %w", path, err)
	}

	return doc, nil
}
