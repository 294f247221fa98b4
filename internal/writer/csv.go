package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Torinad2/EZ-Pass/internal/models"
)

// CSVWriter writes records in CSV form with the same column order as the
// workbook. Statement metadata, when present, is emitted as leading
// comment rows.
type CSVWriter struct {
	IncludeMetadata bool
}

// WriteToFile writes the CSV to a file at the given path.
func (w *CSVWriter) WriteToFile(path string, records []models.TransactionRecord, metadata []models.StatementMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, records, metadata)
}

// Write writes the CSV to the given writer.
func (w *CSVWriter) Write(out io.Writer, records []models.TransactionRecord, metadata []models.StatementMetadata) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeMetadata {
		for i := range metadata {
			md := &metadata[i]
			if md.SourceDocument != "" {
				cw.Write([]string{"# Statement", md.SourceDocument})
			}
			if md.AccountNumber != "" {
				cw.Write([]string{"# Account Number", md.AccountNumber})
			}
			if md.StatementDate != "" {
				cw.Write([]string{"# Statement Date", md.StatementDate})
			}
			if md.ActivityStart != "" || md.ActivityEnd != "" {
				cw.Write([]string{"# Activity", md.ActivityStart + " to " + md.ActivityEnd})
			}
			if md.EndingBalance != "" {
				cw.Write([]string{"# Ending Balance", md.EndingBalance})
			}
		}
	}

	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i := range records {
		if err := cw.Write(records[i].ColumnValues()); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
