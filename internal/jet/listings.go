package jet

import (
	"time"

	"jetaudit/internal/ledger"
)

// DescriptionLengths lists every entry with the character length of its
// description appended, supporting review of suspiciously terse or
// templated narrations.
func DescriptionLengths(gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{
		Name: TableDescriptionLength,
		Columns: []string{
			"Account", "Account Name", "Date", "Currency",
			"Debit", "Credit", "Transaction", "Description", "LEN",
		},
	}
	if gl.Empty() {
		return out, nil
	}

	for _, e := range gl.Entries {
		out.Rows = append(out.Rows, []any{
			e.Account, e.AccountName, cellDate(e.Date, e.HasDate), e.Currency,
			cellNumber(e.Debit), cellNumber(e.Credit), cellNumber(e.Transaction),
			e.Description, len([]rune(e.Description)),
		})
	}
	return out, nil
}

// NonBusinessDay extracts entries posted on a Saturday or Sunday.
func NonBusinessDay(gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{Name: TableNonBusinessDay, Columns: entryColumns}
	if gl.Empty() {
		return out, nil
	}

	for _, e := range gl.Entries {
		if !e.HasDate {
			continue
		}
		if wd := e.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			out.Rows = append(out.Rows, entryRow(e))
		}
	}
	return out, nil
}
