package jet

import (
	"sort"

	"jetaudit/internal/ledger"
)

// AccountPivot groups entries by (account code, account name) and reports
// the entry count and summed absolute value per account, sorted by code
// then name, with a trailing Total row. The companion usage table lists the
// most-used and least-used accounts (ties included, sorted by name).
func AccountPivot(gl *ledger.Ledger) (ResultTable, ResultTable, error) {
	pivot := ResultTable{
		Name: TableAccountPivot,
		Columns: []string{
			"Account Number", "Account Name",
			"Total Number of Entries", "Value of transactions",
		},
	}
	usage := ResultTable{
		Name: TableAccountUsage,
		Columns: []string{
			"Usage", "Number of entries", "Number of accounts",
			"Account Name", "Amount",
		},
	}
	if gl.Empty() {
		return pivot, usage, nil
	}

	type key struct{ code, name string }
	type agg struct {
		count int
		value float64
	}
	groups := make(map[key]*agg)
	var keys []key
	for _, e := range gl.Entries {
		k := key{e.Account, e.AccountName}
		a, ok := groups[k]
		if !ok {
			a = &agg{}
			groups[k] = a
			keys = append(keys, k)
		}
		a.count++
		a.value += e.Absolute.Or(0)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].code != keys[j].code {
			return keys[i].code < keys[j].code
		}
		return keys[i].name < keys[j].name
	})

	totalEntries := 0
	totalValue := 0.0
	maxCount, minCount := 0, 0
	for i, k := range keys {
		a := groups[k]
		pivot.Rows = append(pivot.Rows, []any{k.code, k.name, a.count, a.value})
		totalEntries += a.count
		totalValue += a.value
		if i == 0 || a.count > maxCount {
			maxCount = a.count
		}
		if i == 0 || a.count < minCount {
			minCount = a.count
		}
	}
	pivot.Rows = append(pivot.Rows, []any{"Total", "", totalEntries, totalValue})

	appendUsage := func(label string, count int) {
		var matched []key
		for _, k := range keys {
			if groups[k].count == count {
				matched = append(matched, k)
			}
		}
		sort.Slice(matched, func(i, j int) bool { return matched[i].name < matched[j].name })
		for i, k := range matched {
			row := []any{nil, nil, nil, k.name, groups[k].value}
			if i == 0 {
				row[0] = label
				row[1] = count
				row[2] = len(matched)
			}
			usage.Rows = append(usage.Rows, row)
		}
	}
	appendUsage("Most used account", maxCount)
	appendUsage("Least used accounts", minCount)

	return pivot, usage, nil
}
