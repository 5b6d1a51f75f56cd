package jet

import (
	"sort"

	"jetaudit/internal/ledger"
)

// NetToZero sums debit minus credit per account and keeps only accounts
// whose net is not exactly zero: activity that was expected to offset but
// did not. The comparison is exact, not a tolerance band.
func NetToZero(gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{
		Name:    TableNetToZero,
		Columns: []string{"Row Labels", "Sum of Transaction"},
	}
	if gl.Empty() {
		return out, nil
	}

	sums := make(map[string]float64)
	var accounts []string
	for _, e := range gl.Entries {
		if _, ok := sums[e.Account]; !ok {
			accounts = append(accounts, e.Account)
		}
		sums[e.Account] += e.Debit.Or(0) - e.Credit.Or(0)
	}
	sort.Strings(accounts)

	for _, acc := range accounts {
		if sums[acc] == 0 {
			continue
		}
		out.Rows = append(out.Rows, []any{acc, sums[acc]})
	}
	return out, nil
}
