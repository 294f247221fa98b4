// Package parser turns extracted statement page text into normalized
// transaction records. It is the decision core of the converter: the
// line selector filters candidate rows, the classifier assigns one of
// three layout variants, and the extractor maps token positions into a
// record. Everything here is pure and synchronous; unmatched lines are
// dropped rather than reported.
package parser

import (
	"strings"

	"github.com/Torinad2/EZ-Pass/internal/models"
)

// StatementParser parses one document's pages. The zero value uses the
// plain line selector; setting StartAnchor switches to the anchored
// selector, which only considers the span between the two anchor phrases
// and requires a leading date token.
type StatementParser struct {
	StartAnchor string
	EndAnchor   string
}

// Parse extracts the transaction records from a document's pages, in
// page order then line order. A document with no matching lines yields
// an empty slice; that is a valid outcome, not an error.
func (p *StatementParser) Parse(pages []string) []models.TransactionRecord {
	var records []models.TransactionRecord
	for _, page := range pages {
		for line := range p.lines(page) {
			if rec := ParseLine(line); rec != nil {
				records = append(records, *rec)
			}
		}
	}
	return records
}

// Metadata runs the labeled-field search over the whole document text.
func (p *StatementParser) Metadata(pages []string) models.StatementMetadata {
	return ExtractMetadata(strings.Join(pages, "\n"))
}

func (p *StatementParser) lines(page string) func(func(string) bool) {
	if p.StartAnchor != "" {
		return AnchoredTransactionLines(page, p.StartAnchor, p.EndAnchor)
	}
	return TransactionLines(page)
}
