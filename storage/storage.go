package storage

import (
	"errors"

	sent "github.com/revelaction/sintaxis/sentence"
)

// ErrNotFound is returned when no doc matches the id or hash.
var ErrNotFound = errors.New("doc not found")

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels, Model) of documents.
	// If lemma is not empty, only documents with at least one sentence
	// containing the lemma are returned.
	// Content (Tokens) is not loaded.
	List(lemma string) ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)

	// Lookup returns the document stored under the content hash.
	Lookup(hash string) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document, its sentences and lemmas under the content
	// hash, and returns its id. Writing a hash already stored updates the
	// title and labels of the existing doc.
	Write(doc sent.Doc, hash string) (int, error)
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
