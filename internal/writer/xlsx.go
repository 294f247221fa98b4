// Package writer exports parsed records as a spreadsheet or CSV.
package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Torinad2/EZ-Pass/internal/models"
)

// XLSXWriter writes records into a workbook: one row per record on the
// transactions sheet, plus a Statements sheet when metadata is present.
type XLSXWriter struct {
	SheetName    string
	FreezeHeader bool
	MinColWidth  int
	MaxColWidth  int
}

// widthScanLimit caps how many rows feed the column auto-sizing pass.
const widthScanLimit = 2000

// WriteToFile writes the workbook to path.
func (w *XLSXWriter) WriteToFile(path string, records []models.TransactionRecord, metadata []models.StatementMetadata) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.SheetName
	if sheet == "" {
		sheet = "Transactions"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := w.writeTransactions(f, sheet, records); err != nil {
		return err
	}

	if len(metadata) > 0 {
		if err := w.writeMetadata(f, metadata); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %q: %w", path, err)
	}
	return nil
}

func (w *XLSXWriter) writeTransactions(f *excelize.File, sheet string, records []models.TransactionRecord) error {
	header := make([]any, len(models.Columns))
	for i, c := range models.Columns {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i := range records {
		if err := setRow(f, sheet, i+2, records[i].CellValues()); err != nil {
			return err
		}
	}

	if w.FreezeHeader {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("freezing header row: %w", err)
		}
	}

	return w.sizeColumns(f, sheet, records)
}

// sizeColumns widens each column to its longest cell text, clamped to
// the configured range, matching the workbook layout of earlier
// versions of this tool.
func (w *XLSXWriter) sizeColumns(f *excelize.File, sheet string, records []models.TransactionRecord) error {
	widths := make([]int, len(models.Columns))
	for i, c := range models.Columns {
		widths[i] = len(c)
	}
	for i := range records {
		if i >= widthScanLimit {
			break
		}
		for j, v := range records[i].ColumnValues() {
			if len(v) > widths[j] {
				widths[j] = len(v)
			}
		}
	}

	minW, maxW := w.MinColWidth, w.MaxColWidth
	if minW <= 0 {
		minW = 10
	}
	if maxW < minW {
		maxW = 45
	}

	for i := range widths {
		width := widths[i] + 2
		if width < minW {
			width = minW
		}
		if width > maxW {
			width = maxW
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}
	return nil
}

func (w *XLSXWriter) writeMetadata(f *excelize.File, metadata []models.StatementMetadata) error {
	const sheet = "Statements"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating metadata sheet: %w", err)
	}

	header := make([]any, len(models.MetadataColumns))
	for i, c := range models.MetadataColumns {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i := range metadata {
		vals := metadata[i].ColumnValues()
		cells := make([]any, len(vals))
		for j, v := range vals {
			cells[j] = v
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
