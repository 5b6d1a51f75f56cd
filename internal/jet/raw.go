package jet

import "jetaudit/internal/ledger"

// RawGL renders the normalized ledger as a plain listing table, for
// appending the source data behind the analytical sheets.
func RawGL(gl *ledger.Ledger) ResultTable {
	out := ResultTable{Name: "GL", Columns: entryColumns}
	if gl.Empty() {
		return out
	}
	for _, e := range gl.Entries {
		out.Rows = append(out.Rows, entryRow(e))
	}
	return out
}

// RawTB renders the trial balance the same way.
func RawTB(tb []ledger.TrialBalanceRow) ResultTable {
	out := ResultTable{
		Name:    "TB",
		Columns: []string{"Account", "Opening Balance", "Closing Balance"},
	}
	for _, row := range tb {
		out.Rows = append(out.Rows, []any{
			row.Account, cellNumber(row.Opening), cellNumber(row.Closing),
		})
	}
	return out
}
