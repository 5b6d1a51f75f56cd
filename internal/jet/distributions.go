package jet

import (
	"math"
	"sort"
	"time"

	"jetaudit/internal/ledger"
)

// ByMonth counts entries and sums absolute amounts per posting month.
// Rows with unparseable dates are excluded. A Total row closes the table.
func ByMonth(gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{
		Name:    TableByMonth,
		Columns: []string{"Month", "Total Number of Line Items", "Total Amount (in MNT)"},
	}
	if gl.Empty() {
		return out, nil
	}

	counts := make(map[time.Month]int)
	sums := make(map[time.Month]float64)
	for _, e := range gl.Entries {
		if !e.HasDate {
			continue
		}
		counts[e.Date.Month()]++
		sums[e.Date.Month()] += e.Absolute.Or(0)
	}

	totalCount := 0
	totalSum := 0.0
	for m := time.January; m <= time.December; m++ {
		if counts[m] == 0 {
			continue
		}
		out.Rows = append(out.Rows, []any{m.String()[:3], counts[m], sums[m]})
		totalCount += counts[m]
		totalSum += sums[m]
	}
	out.Rows = append(out.Rows, []any{"Total", totalCount, totalSum})
	return out, nil
}

// dayGroupLabels are the four month-position buckets, ordered.
var dayGroupLabels = []string{
	"<= 3 Days before M.E.",
	"4-7 Days before M.E.",
	"8-14 Days before M.E.",
	"> 14 Days",
}

// dayGroup buckets a day-of-month value. Upper edges are closed: day 3 is
// the first bucket, day 7 the second, day 14 the third.
func dayGroup(day int) int {
	switch {
	case day >= 1 && day <= 3:
		return 0
	case day >= 4 && day <= 7:
		return 1
	case day >= 8 && day <= 14:
		return 2
	case day > 14:
		return 3
	default:
		return -1
	}
}

// DayGroups distributes entries over the four day-of-month buckets, with a
// rounded integer percentage column and a Total row.
func DayGroups(gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{
		Name: TableDayGroup,
		Columns: []string{
			"Day Group", "Total Number of Line Items", "%", "Total Amount (in MNT)",
		},
	}
	if gl.Empty() {
		return out, nil
	}

	counts := make([]int, len(dayGroupLabels))
	sums := make([]float64, len(dayGroupLabels))
	total := 0
	totalSum := 0.0
	for _, e := range gl.Entries {
		if !e.HasDate {
			continue
		}
		g := dayGroup(e.Date.Day())
		if g < 0 {
			continue
		}
		counts[g]++
		sums[g] += e.Absolute.Or(0)
		total++
		totalSum += e.Absolute.Or(0)
	}

	for i, label := range dayGroupLabels {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(counts[i]) / float64(total) * 100))
		}
		out.Rows = append(out.Rows, []any{label, counts[i], pct, sums[i]})
	}
	out.Rows = append(out.Rows, []any{"Total", total, 100, totalSum})
	return out, nil
}

// ByUser distributes entries over posting users; a blank user shows as
// "(blank)". Closes with a Grand Total row.
func ByUser(gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{
		Name:    TableByUser,
		Columns: []string{"User", "Total Number of Line Items", "Total Amount (in MNT)"},
	}
	if gl.Empty() {
		return out, nil
	}

	counts := make(map[string]int)
	sums := make(map[string]float64)
	var users []string
	for _, e := range gl.Entries {
		user := e.User
		if user == "" {
			user = "(blank)"
		}
		if _, ok := counts[user]; !ok {
			users = append(users, user)
		}
		counts[user]++
		sums[user] += e.Absolute.Or(0)
	}
	sort.Strings(users)

	total := 0
	totalSum := 0.0
	for _, u := range users {
		out.Rows = append(out.Rows, []any{u, counts[u], sums[u]})
		total += counts[u]
		totalSum += sums[u]
	}
	out.Rows = append(out.Rows, []any{"Grand Total", total, totalSum})
	return out, nil
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ByDayOfWeek distributes entries over weekdays of the creation date,
// falling back to the posting date when no creation date was captured.
// The denominator is the calendar length of the dominant year in the data
// (366 for leap years), and the average column is count over that length.
func ByDayOfWeek(gl *ledger.Ledger) (ResultTable, error) {
	out := ResultTable{
		Name: TableDayOfWeek,
		Columns: []string{
			"Day", "Total Number of Line Items", "Days in the year", "Average per day",
		},
	}
	if gl.Empty() {
		return out, nil
	}

	counts := make(map[time.Weekday]int)
	years := make(map[int]int)
	total := 0
	for _, e := range gl.Entries {
		date, ok := e.Created, e.HasCreated
		if !ok {
			date, ok = e.Date, e.HasDate
		}
		if !ok {
			continue
		}
		counts[date.Weekday()]++
		years[date.Year()]++
		total++
	}
	if total == 0 {
		return out, nil
	}

	days := daysInYear(dominantYear(years))
	for _, wd := range weekdayOrder {
		avg := round2(float64(counts[wd]) / float64(days))
		out.Rows = append(out.Rows, []any{wd.String(), counts[wd], days, avg})
	}
	out.Rows = append(out.Rows, []any{
		"Total", total, days, math.Round(float64(total) / float64(days)),
	})
	return out, nil
}

// dominantYear picks the most frequent year; ties go to the earlier year.
func dominantYear(years map[int]int) int {
	best, bestCount := 0, -1
	for y, c := range years {
		if c > bestCount || (c == bestCount && y < best) {
			best, bestCount = y, c
		}
	}
	return best
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
