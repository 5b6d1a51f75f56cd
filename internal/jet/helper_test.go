package jet

import (
	"time"

	"jetaudit/internal/ledger"
)

// testLedger builds a ledger whose resolved-column map lists the given
// fields, the way the extractor would have produced it.
func testLedger(fields []ledger.Field, entries ...ledger.Entry) *ledger.Ledger {
	cols := make(map[ledger.Field]string, len(fields))
	for _, f := range fields {
		cols[f] = string(f)
	}
	return &ledger.Ledger{Entries: entries, Columns: cols}
}

var allFields = []ledger.Field{
	ledger.FieldAccount, ledger.FieldAccountName, ledger.FieldPostingDate,
	ledger.FieldDebit, ledger.FieldCredit, ledger.FieldTransaction,
	ledger.FieldDescription, ledger.FieldAbsolute, ledger.FieldUser,
	ledger.FieldCreationDate,
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// txnEntry is the minimal entry most aggregation tests need.
func txnEntry(account string, amount float64) ledger.Entry {
	e := ledger.Entry{
		Account:     account,
		Transaction: ledger.N(amount),
		Absolute:    ledger.N(abs(amount)),
	}
	if amount >= 0 {
		e.Debit = ledger.N(amount)
	} else {
		e.Credit = ledger.N(-amount)
	}
	return e
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
