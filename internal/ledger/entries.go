package ledger

import (
	"fmt"
	"strconv"
	"time"
)

// Entry is one normalized journal-entry line. Amount fields are Numbers so
// that a blank or malformed cell stays distinguishable from a genuine zero.
type Entry struct {
	Account            string
	AccountName        string
	Date               time.Time
	HasDate            bool
	DocumentNo         string
	CounterAccount     string
	CounterAccountName string
	VoucherNo          string
	Currency           string
	Rate               Number
	ForeignAmount      Number
	Debit              Number
	Credit             Number
	Transaction        Number
	RawTransaction     string // original cell text, for digit-run tests
	Description        string
	Absolute           Number
	User               string
	Created            time.Time
	HasCreated         bool
}

// TrialBalanceRow is one trial-balance line: an account with its
// opening-period and closing-period balances.
type TrialBalanceRow struct {
	Account string
	Opening Number
	Closing Number
}

// DerivedColumn marks a field synthesized from other columns rather than
// resolved against a header (net transaction from debit−credit, absolute
// amount from |debit|+|credit|).
const DerivedColumn = "(derived)"

// Ledger is a normalized GL dataset together with the field→header mapping
// the resolver produced for it. It is read-only once built.
type Ledger struct {
	Entries []Entry
	Columns map[Field]string
}

// Has reports whether a canonical field was resolved (or derived).
func (l *Ledger) Has(f Field) bool {
	if l == nil {
		return false
	}
	_, ok := l.Columns[f]
	return ok
}

// Empty reports whether the ledger holds no entries.
func (l *Ledger) Empty() bool {
	return l == nil || len(l.Entries) == 0
}

// glFields are the canonical fields the GL extractor attempts to resolve.
var glFields = []Field{
	FieldAccount, FieldAccountName, FieldPostingDate, FieldDocumentNo,
	FieldCounterAccount, FieldCounterAccountName, FieldVoucherNo,
	FieldCurrency, FieldExchangeRate, FieldForeignAmount,
	FieldDebit, FieldCredit, FieldTransaction, FieldDescription,
	FieldAbsolute, FieldUser, FieldCreationDate,
}

// EntriesFromTable resolves a raw GL table into normalized entries.
// Unresolvable optional fields are left missing; a table with no amount
// columns at all (no transaction and no debit/credit pair) is rejected.
func EntriesFromTable(t Table) (*Ledger, error) {
	cols := make(map[Field]int)
	names := make(map[Field]string)
	for _, f := range glFields {
		if i, ok := ResolveIndex(f, t.Headers); ok {
			cols[f] = i
			names[f] = t.Headers[i]
		}
	}

	_, hasTxn := cols[FieldTransaction]
	_, hasDebit := cols[FieldDebit]
	_, hasCredit := cols[FieldCredit]
	if !hasTxn && !hasDebit && !hasCredit {
		return nil, fmt.Errorf("no usable amount column: missing %q and %q/%q",
			FieldTransaction, FieldDebit, FieldCredit)
	}
	if !hasTxn {
		names[FieldTransaction] = DerivedColumn
	}
	if _, ok := cols[FieldAbsolute]; !ok {
		names[FieldAbsolute] = DerivedColumn
	}

	cell := func(row int, f Field) string {
		i, ok := cols[f]
		if !ok {
			return ""
		}
		return t.Cell(row, i)
	}

	entries := make([]Entry, 0, len(t.Rows))
	for r := range t.Rows {
		e := Entry{
			Account:            cell(r, FieldAccount),
			AccountName:        cell(r, FieldAccountName),
			DocumentNo:         cell(r, FieldDocumentNo),
			CounterAccount:     cell(r, FieldCounterAccount),
			CounterAccountName: cell(r, FieldCounterAccountName),
			VoucherNo:          cell(r, FieldVoucherNo),
			Currency:           cell(r, FieldCurrency),
			Rate:               ParseNumber(cell(r, FieldExchangeRate)),
			ForeignAmount:      ParseNumber(cell(r, FieldForeignAmount)),
			Debit:              ParseNumber(cell(r, FieldDebit)),
			Credit:             ParseNumber(cell(r, FieldCredit)),
			Description:        cell(r, FieldDescription),
			User:               cell(r, FieldUser),
		}
		e.Date, e.HasDate = ParseDate(cell(r, FieldPostingDate))
		e.Created, e.HasCreated = ParseDate(cell(r, FieldCreationDate))

		if hasTxn {
			e.RawTransaction = cell(r, FieldTransaction)
			e.Transaction = ParseNumber(e.RawTransaction)
		} else if e.Debit.Valid || e.Credit.Valid {
			net := e.Debit.Or(0) - e.Credit.Or(0)
			e.Transaction = N(net)
			e.RawTransaction = strconv.FormatFloat(net, 'f', -1, 64)
		}

		if raw := cell(r, FieldAbsolute); raw != "" {
			e.Absolute = ParseNumber(raw)
		}
		if !e.Absolute.Valid {
			if e.Debit.Valid || e.Credit.Valid {
				e.Absolute = N(abs(e.Debit.Or(0)) + abs(e.Credit.Or(0)))
			} else if e.Transaction.Valid {
				e.Absolute = N(abs(e.Transaction.Float64))
			}
		}

		if isBlank(e) {
			continue
		}
		entries = append(entries, e)
	}

	return &Ledger{Entries: entries, Columns: names}, nil
}

// TrialBalanceFromTable resolves a raw TB table. The account column is
// required; balance cells that fail to parse stay missing and are treated
// as zero when summed.
func TrialBalanceFromTable(t Table) ([]TrialBalanceRow, error) {
	if t.Empty() {
		return nil, nil
	}
	acc, ok := ResolveIndex(FieldAccount, t.Headers)
	if !ok {
		return nil, fmt.Errorf("missing column %q in trial balance", FieldAccount)
	}
	opening, _ := ResolveIndex(FieldOpeningBalance, t.Headers)
	closing, _ := ResolveIndex(FieldClosingBalance, t.Headers)

	rows := make([]TrialBalanceRow, 0, len(t.Rows))
	for r := range t.Rows {
		row := TrialBalanceRow{Account: t.Cell(r, acc)}
		if opening >= 0 {
			row.Opening = ParseNumber(t.Cell(r, opening))
		}
		if closing >= 0 {
			row.Closing = ParseNumber(t.Cell(r, closing))
		}
		if row.Account == "" && !row.Opening.Valid && !row.Closing.Valid {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(e Entry) bool {
	return e.Account == "" && e.AccountName == "" && !e.HasDate &&
		!e.Debit.Valid && !e.Credit.Valid && !e.Transaction.Valid &&
		e.Description == ""
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
