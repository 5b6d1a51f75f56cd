package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	apperrors "jetaudit/internal/errors"
	"jetaudit/internal/jet"
)

// utf8BOM helps Excel recognize UTF-8, which matters for the Mongolian
// text in descriptions and keyword columns.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes each result table of a report set to its own CSV
// file inside a directory.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer. A nil logger falls back to
// slog.Default.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// Write saves every table of the set as <dir>/<table name>.csv.
func (w *CSVWriter) Write(dir string, set *jet.ReportSet) error {
	if set == nil || len(set.Tables) == 0 {
		return apperrors.NewValidationError("report set has no tables")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("creating CSV directory", err)
	}

	for _, table := range set.Tables {
		path := filepath.Join(dir, table.Name+".csv")
		if err := writeCSV(path, table); err != nil {
			return err
		}
	}
	w.logger.Info("CSV export written",
		"dir", dir,
		"files", len(set.Tables),
	)
	return nil
}

func writeCSV(path string, table jet.ResultTable) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("opening %s", path), err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("writing BOM to %s", path), err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Columns); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("writing header of %s", path), err)
	}
	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("writing row to %s", path), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("flushing %s", path), err)
	}
	return nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}
