package annotate

import (
	_ "embed"
)

// ExporterPlaceholder is replaced by the source of the bundled spaCy
// exporter in the command arguments, to run it with `python3 -c`.
const ExporterPlaceholder = "{exporter}"

// Exporter is the python program that annotates stdin with a spaCy model and
// writes the doc JSON that Command reads.
//
//go:embed exporter/spacy_tokens.py
var Exporter string
