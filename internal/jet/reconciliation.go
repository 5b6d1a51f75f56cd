package jet

import (
	"sort"

	"jetaudit/internal/ledger"
)

// Reconciliation compares trial-balance movement against general-ledger
// movement per account. TB rows are grouped by account with duplicates
// summed. Movement per TB is closing − opening for balance-sheet accounts;
// for income-statement accounts (code starting 5–9) the closing column
// already holds period activity, so it is used as-is. TB accounts with no
// GL activity get a zero GL movement rather than an error.
func Reconciliation(tb []ledger.TrialBalanceRow, gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{
		Name: TableReconciliation,
		Columns: []string{
			"Account No", "Opening Balance per TB", "Ending Balance per TB",
			"Movement per TB", "Movement per GL", "Difference Rounded",
		},
	}
	if len(tb) == 0 || gl.Empty() {
		return out, nil
	}

	type balance struct{ opening, closing float64 }
	balances := make(map[string]*balance)
	var accounts []string
	for _, row := range tb {
		b, ok := balances[row.Account]
		if !ok {
			b = &balance{}
			balances[row.Account] = b
			accounts = append(accounts, row.Account)
		}
		b.opening += row.Opening.Or(0)
		b.closing += row.Closing.Or(0)
	}
	sort.Strings(accounts)

	glMovement := make(map[string]float64)
	for _, e := range gl.Entries {
		glMovement[e.Account] += e.Transaction.Or(0)
	}

	var totals [5]float64
	for _, acc := range accounts {
		b := balances[acc]
		movementTB := b.closing - b.opening
		if isIncomeStatement(acc) {
			movementTB = b.closing
		}
		movementGL := glMovement[acc]
		diff := round1(movementTB - movementGL)

		out.Rows = append(out.Rows, []any{
			acc, b.opening, b.closing, movementTB, movementGL, diff,
		})
		totals[0] += b.opening
		totals[1] += b.closing
		totals[2] += movementTB
		totals[3] += movementGL
		totals[4] += diff
	}

	out.Rows = append(out.Rows, []any{
		"Total", totals[0], totals[1], totals[2], totals[3], totals[4],
	})
	return out, nil
}

// isIncomeStatement reports whether an account code belongs to the
// revenue/expense range (first digit 5–9), whose TB closing column holds
// period activity instead of a cumulative balance.
func isIncomeStatement(account string) bool {
	if account == "" {
		return false
	}
	c := account[0]
	return c >= '5' && c <= '9'
}
