package jet

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"jetaudit/internal/ledger"
)

var (
	runOfNines = regexp.MustCompile(`9{6,}`)
	runOfZeros = regexp.MustCompile(`0{7,}`)
)

// RecurringNines lists entries whose transaction amount contains six or
// more consecutive 9 digits, a common marker of fabricated or ceiling
// values (e.g. 232,999,999).
func RecurringNines(gl *ledger.Ledger) (ResultTable, error) {
	return recurringDigits(gl, TableRecurringNines, runOfNines)
}

// RecurringZeros lists entries whose transaction amount contains seven or
// more consecutive 0 digits: suspiciously round values (e.g. 10,000,000).
func RecurringZeros(gl *ledger.Ledger) (ResultTable, error) {
	return recurringDigits(gl, TableRecurringZeros, runOfZeros)
}

func recurringDigits(gl *ledger.Ledger, name string, pattern *regexp.Regexp) (ResultTable, error) {
	out := ResultTable{Name: name, Columns: entryColumns}
	if gl.Empty() {
		return out, nil
	}
	if !gl.Has(ledger.FieldTransaction) {
		return out, fmt.Errorf("missing column %q", ledger.FieldTransaction)
	}

	for _, e := range gl.Entries {
		if pattern.MatchString(digitsOnly(transactionText(e))) {
			out.Rows = append(out.Rows, entryRow(e))
		}
	}
	return out, nil
}

// transactionText returns the amount text the digit-run scan operates on:
// the original cell when available, otherwise the parsed value formatted.
func transactionText(e ledger.Entry) string {
	if e.RawTransaction != "" {
		return e.RawTransaction
	}
	if e.Transaction.Valid {
		return strconv.FormatFloat(e.Transaction.Float64, 'f', -1, 64)
	}
	return ""
}

// TopTransactions lists the n entries with the largest absolute
// transaction value, descending. Ties keep ledger order.
func TopTransactions(gl *ledger.Ledger, n int) (ResultTable, error) {
	out := ResultTable{Name: TableTopTransactions, Columns: entryColumns}
	if gl.Empty() {
		return out, nil
	}
	if !gl.Has(ledger.FieldTransaction) {
		return out, fmt.Errorf("missing column %q", ledger.FieldTransaction)
	}
	if n <= 0 {
		n = DefaultTopTransactions
	}

	ranked := make([]ledger.Entry, len(gl.Entries))
	copy(ranked, gl.Entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return absOf(ranked[i]) > absOf(ranked[j])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for _, e := range ranked {
		out.Rows = append(out.Rows, entryRow(e))
	}
	return out, nil
}

func absOf(e ledger.Entry) float64 {
	if !e.Transaction.Valid {
		return math.Inf(-1)
	}
	return math.Abs(e.Transaction.Float64)
}

// RevenueExpenseTop splits entries by account-code prefix — revenue codes
// start with 5 or 13, expense codes with 6, 7 or 8 — and lists the top n
// revenue entries by debit (postings against income) and the top n expense
// entries by credit (reversals of cost).
func RevenueExpenseTop(gl *ledger.Ledger, n int) (ResultTable, ResultTable, error) {
	revenue := ResultTable{Name: TableRevenueTop, Columns: entryColumns}
	expense := ResultTable{Name: TableExpenseTop, Columns: entryColumns}
	if gl.Empty() {
		return revenue, expense, nil
	}
	if !gl.Has(ledger.FieldDebit) && !gl.Has(ledger.FieldCredit) {
		return revenue, expense, fmt.Errorf("missing columns %q and %q",
			ledger.FieldDebit, ledger.FieldCredit)
	}
	if n <= 0 {
		n = DefaultTopRevenueExpense
	}

	var rev, exp []ledger.Entry
	for _, e := range gl.Entries {
		digits := digitsOnly(e.Account)
		switch {
		case hasPrefix(digits, "5") || hasPrefix(digits, "13"):
			rev = append(rev, e)
		case hasPrefix(digits, "6") || hasPrefix(digits, "7") || hasPrefix(digits, "8"):
			exp = append(exp, e)
		}
	}

	sort.SliceStable(rev, func(i, j int) bool {
		return rev[i].Debit.Or(math.Inf(-1)) > rev[j].Debit.Or(math.Inf(-1))
	})
	sort.SliceStable(exp, func(i, j int) bool {
		return exp[i].Credit.Or(math.Inf(-1)) > exp[j].Credit.Or(math.Inf(-1))
	})
	if len(rev) > n {
		rev = rev[:n]
	}
	if len(exp) > n {
		exp = exp[:n]
	}
	for _, e := range rev {
		revenue.Rows = append(revenue.Rows, entryRow(e))
	}
	for _, e := range exp {
		expense.Rows = append(expense.Rows, entryRow(e))
	}
	return revenue, expense, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
