package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "jetaudit/internal/errors"
	"jetaudit/internal/jet"
)

// sheetNameMax is Excel's hard limit on sheet name length.
const sheetNameMax = 31

var sheetNameIllegal = strings.NewReplacer(
	"[", "-", "]", "-", ":", "-", "*", "-", "?", "-", "/", "-", "\\", "-",
)

// SheetName sanitizes a table name into a legal Excel sheet name.
func SheetName(name string) string {
	name = sheetNameIllegal.Replace(name)
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	if len(name) > sheetNameMax {
		name = name[:sheetNameMax]
	}
	return name
}

// WorkbookWriter writes a ReportSet as one workbook, one sheet per
// result table, in report order.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer. A nil logger falls back
// to slog.Default.
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// Write saves the report set to path. Existing files are overwritten.
func (w *WorkbookWriter) Write(path string, set *jet.ReportSet) error {
	if set == nil || len(set.Tables) == 0 {
		return apperrors.NewValidationError("report set has no tables")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("creating report directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, table := range set.Tables {
		sheet := SheetName(table.Name)
		if i == 0 {
			// rename the default sheet instead of leaving it empty
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return apperrors.NewStorageError(fmt.Sprintf("naming sheet %q", sheet), err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("creating sheet %q", sheet), err)
		}

		if err := writeSheet(f, sheet, table); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("saving workbook %s", path), err)
	}
	w.logger.Info("report workbook written",
		"path", path,
		"sheets", len(set.Tables),
	)
	return nil
}

func writeSheet(f *excelize.File, sheet string, table jet.ResultTable) error {
	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("writing header of %q", sheet), err)
	}

	for i, row := range table.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("addressing row %d of %q", i+2, sheet), err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("writing row %d of %q", i+2, sheet), err)
		}
	}
	return nil
}

// cellValue maps result-table cells onto what excelize writes natively.
// Dates go out as their plain text form to avoid serial-number styling.
func cellValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return v
}
