package annotate

import (
	"context"
	"errors"

	"github.com/revelaction/sintaxis/logging"
	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/revelaction/sintaxis/storage"
)

// Cached keeps the docs of Source in Store, keyed by Hash of the model and
// the text, and only calls Source for texts not seen before.
type Cached struct {
	Source Source
	Store  storage.DocRepository
	Model  string
}

func (c Cached) Annotate(ctx context.Context, text string) (sent.Doc, error) {
	logger := logging.GetLogger("cache")
	hash := Hash(c.Model, text)

	doc, err := c.Store.Lookup(hash)
	if err == nil {
		logger.Debug().Str("hash", hash).Int("doc", doc.Id).Msg("Cache hit")
		return doc, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return sent.Doc{}, err
	}

	doc, err = c.Source.Annotate(ctx, text)
	if err != nil {
		return sent.Doc{}, err
	}

	id, err := c.Store.Write(doc, hash)
	if err != nil {
		// the annotation is still good, only the cache failed
		logger.Warn().Err(err).Msg("Could not store annotation")
		return doc, nil
	}

	logger.Debug().Str("hash", hash).Int("doc", id).Msg("Cache miss, stored")
	doc.Id = id
	return doc, nil
}
