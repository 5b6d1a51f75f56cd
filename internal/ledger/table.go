package ledger

import "strings"

// Number is a decimal cell value that distinguishes "missing" from zero.
// A malformed or empty cell yields an invalid Number; callers that want a
// zero default must ask for it explicitly via Or.
type Number struct {
	Float64 float64
	Valid   bool
}

// N wraps a float64 in a valid Number.
func N(v float64) Number {
	return Number{Float64: v, Valid: true}
}

// Or returns the value, or def when the Number is missing.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Float64
}

// Table is a raw sheet extract: a header row plus string cell rows, exactly
// as they came out of the workbook. Rows may be ragged; Cell pads with "".
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Cell returns the trimmed cell at (row, col), or "" when the row is short.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}
