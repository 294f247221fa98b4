// Package pipeline runs the converter end to end: it resolves input
// paths, extracts page text, parses each document, and concatenates the
// per-document results in input order.
package pipeline

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Torinad2/EZ-Pass/internal/config"
	"github.com/Torinad2/EZ-Pass/internal/extractor"
	"github.com/Torinad2/EZ-Pass/internal/models"
	"github.com/Torinad2/EZ-Pass/internal/parser"
)

// Result is the combined output of a run. Records keep input document
// order followed by in-document line order; Metadata holds one entry per
// document when metadata extraction is enabled.
type Result struct {
	Records  []models.TransactionRecord
	Metadata []models.StatementMetadata
}

// Pipeline ties extraction and parsing together for a batch of
// documents. Documents share no mutable state, so they may be processed
// concurrently; results are reassembled by input index, never by
// completion order.
type Pipeline struct {
	cfg *config.Config
	log zerolog.Logger

	// extract is swappable in tests to feed page text directly.
	extract func(path string) ([]string, error)
}

// New builds a pipeline with the given configuration.
func New(cfg *config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		log:     log,
		extract: extractor.ExtractText,
	}
}

type docOutput struct {
	records  []models.TransactionRecord
	metadata *models.StatementMetadata
	err      error
}

// Run processes the given documents and returns the aggregated result.
// Any extraction failure is fatal for the whole run; a document with no
// matching lines contributes zero records and is not an error.
func (p *Pipeline) Run(paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoPDFs
	}

	outs := make([]docOutput, len(paths))

	workers := p.cfg.Workers
	if workers > len(paths) {
		workers = len(paths)
	}

	if workers <= 1 {
		for i, path := range paths {
			outs[i] = p.processDocument(path)
		}
	} else {
		idx := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range idx {
					outs[i] = p.processDocument(paths[i])
				}
			}()
		}
		for i := range paths {
			idx <- i
		}
		close(idx)
		wg.Wait()
	}

	res := &Result{}
	for i, out := range outs {
		if out.err != nil {
			return nil, fmt.Errorf("processing %s: %w", paths[i], out.err)
		}
		res.Records = append(res.Records, out.records...)
		if out.metadata != nil {
			res.Metadata = append(res.Metadata, *out.metadata)
		}
	}
	return res, nil
}

func (p *Pipeline) processDocument(path string) docOutput {
	pages, err := p.extract(path)
	if err != nil {
		return docOutput{err: err}
	}

	sp := &parser.StatementParser{
		StartAnchor: p.cfg.Selector.StartAnchor,
		EndAnchor:   p.cfg.Selector.EndAnchor,
	}

	records := sp.Parse(pages)
	p.log.Debug().Str("document", path).Int("pages", len(pages)).
		Int("records", len(records)).Msg("parsed document")

	out := docOutput{records: records}
	if p.cfg.Metadata.Enabled {
		doc := filepath.Base(path)
		md := sp.Metadata(pages)
		md.SourceDocument = doc
		out.metadata = &md
		for i := range out.records {
			out.records[i].SourceDocument = doc
		}
	}
	return out
}
