package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "jetaudit/internal/errors"
	"jetaudit/internal/ledger"
)

// Sheet preference lists. Client exports name their sheets loosely, so
// matching runs exact first, then substring, then falls back to the
// first sheet in the workbook.
var (
	glSheetNames = []string{"gl"}
	tbSheetNames = []string{"tb", "trial balance", "balance", "jet", "statistics"}
)

// headerScanRows caps how deep the header-row scan looks. Exports often
// carry a title block above the real header, but never a large one.
const headerScanRows = 10

// FindSheet picks the sheet matching one of the preferred names: exact
// match (trimmed, case-insensitive) wins over substring match, and the
// preference order breaks ties. When nothing matches, the first sheet
// is returned.
func FindSheet(f *excelize.File, prefer []string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", apperrors.NewParsingError("workbook has no sheets", nil)
	}

	for _, want := range prefer {
		for _, name := range sheets {
			if strings.EqualFold(strings.TrimSpace(name), want) {
				return name, nil
			}
		}
	}
	for _, want := range prefer {
		for _, name := range sheets {
			if strings.Contains(strings.ToLower(name), want) {
				return name, nil
			}
		}
	}
	return sheets[0], nil
}

// SheetTable extracts the rectangular data of a sheet as a ledger table.
// The header row is the first row, within the scan window, on which an
// account column resolves; rows above it are discarded as title text.
func SheetTable(f *excelize.File, sheet string) (ledger.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return ledger.Table{}, apperrors.NewParsingError(
			fmt.Sprintf("reading sheet %q", sheet), err)
	}

	headerRow := -1
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		if _, ok := ledger.ResolveIndex(ledger.FieldAccount, rows[i]); ok {
			headerRow = i
			break
		}
	}
	if headerRow == -1 {
		return ledger.Table{}, apperrors.NewParsingError(
			fmt.Sprintf("no header row with an account column found in sheet %q", sheet), nil)
	}

	t := ledger.Table{Name: sheet, Headers: rows[headerRow]}
	if headerRow+1 < len(rows) {
		t.Rows = rows[headerRow+1:]
	}
	return t, nil
}

// LoadGL reads the general ledger workbook at path into a normalized
// ledger.
func LoadGL(path string, logger *slog.Logger) (*ledger.Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("opening GL workbook %s", path), err)
	}
	defer f.Close()

	sheet, err := FindSheet(f, glSheetNames)
	if err != nil {
		return nil, err
	}
	table, err := SheetTable(f, sheet)
	if err != nil {
		return nil, err
	}

	gl, err := ledger.EntriesFromTable(table)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded general ledger",
		"path", path,
		"sheet", sheet,
		"entries", len(gl.Entries),
		"columns", len(gl.Columns),
	)
	return gl, nil
}

// LoadTB reads the trial balance workbook at path. An empty path means
// no TB was supplied and yields an empty slice, not an error.
func LoadTB(path string, logger *slog.Logger) ([]ledger.TrialBalanceRow, error) {
	if path == "" {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("opening TB workbook %s", path), err)
	}
	defer f.Close()

	sheet, err := FindSheet(f, tbSheetNames)
	if err != nil {
		return nil, err
	}
	table, err := SheetTable(f, sheet)
	if err != nil {
		return nil, err
	}

	tb, err := ledger.TrialBalanceFromTable(table)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded trial balance",
		"path", path,
		"sheet", sheet,
		"rows", len(tb),
	)
	return tb, nil
}
