package jet

import (
	"fmt"

	"jetaudit/internal/ledger"
)

// band is one materiality interval. Source selects which threshold scales
// the upper edge; pct is the fraction of that threshold.
type band struct {
	label  string
	source string // "CTT", "PM" or "" for the two unscaled bands
	pct    float64
}

// materialityBands is the fixed 22-band layout: the exact-zero band, ten
// 10%-of-CTT steps, ten 10%-of-PM steps, and the overflow band.
var materialityBands = []band{
	{"< 0", "", 0},
	{"0 - 10% of Threshold", "CTT", 0.10},
	{"10% - 20% of Threshold", "CTT", 0.20},
	{"20% - 30% of Threshold", "CTT", 0.30},
	{"30% - 40% of Threshold", "CTT", 0.40},
	{"40% - 50% of Threshold", "CTT", 0.50},
	{"50% - 60% of Threshold", "CTT", 0.60},
	{"60% - 70% of Threshold", "CTT", 0.70},
	{"70% - 80% of Threshold", "CTT", 0.80},
	{"80% - 90% of Threshold", "CTT", 0.90},
	{"90% of Threshold - Threshold", "CTT", 1.00},
	{"Threshold - 10% of PM", "PM", 0.10},
	{"10% - 20% of PM", "PM", 0.20},
	{"20% - 30% of PM", "PM", 0.30},
	{"30% - 40% of PM", "PM", 0.40},
	{"40% - 50% of PM", "PM", 0.50},
	{"50% - 60% of PM", "PM", 0.60},
	{"60% - 70% of PM", "PM", 0.70},
	{"70% - 80% of PM", "PM", 0.80},
	{"80% - 90% of PM", "PM", 0.90},
	{"90% - 100% of PM", "PM", 1.00},
	{"> 100% of PM", "PM", 1.00},
}

// Materiality classifies every entry's absolute amount into the 22 fixed
// bands. A value exactly on a band's upper edge belongs to that band; the
// first band is the exact-zero test. Percentages are rounded to one decimal
// and the Total row reads exactly 100.0 in both percentage columns.
func Materiality(gl *ledger.Ledger, ctt, pm float64) (ResultTable, error) {
	out := ResultTable{
		Name: TableMateriality,
		Columns: []string{
			"Materiality", "Amount Interval (in MNT)",
			"Number of Line Items Involved", "Percentage",
			"Total Amount (in MNT)", "Amount Percentage",
		},
	}
	if gl.Empty() {
		return out, nil
	}
	if ctt < 0 || pm < 0 {
		return out, fmt.Errorf("invalid materiality thresholds: ctt=%v pm=%v", ctt, pm)
	}

	edges := make([]float64, len(materialityBands))
	for i, b := range materialityBands {
		switch b.source {
		case "CTT":
			edges[i] = ctt * b.pct
		case "PM":
			edges[i] = pm * b.pct
		}
	}

	counts := make([]int, len(materialityBands))
	sums := make([]float64, len(materialityBands))
	last := len(materialityBands) - 1
	for _, e := range gl.Entries {
		v := e.Absolute.Or(0)
		for i := range materialityBands {
			if inBand(i, last, v, edges) {
				counts[i]++
				sums[i] += v
			}
		}
	}

	totalCount := 0
	totalAmount := 0.0
	for i := range counts {
		totalCount += counts[i]
		totalAmount += sums[i]
	}

	for i, b := range materialityBands {
		countPct, amountPct := 0.0, 0.0
		if totalCount > 0 {
			countPct = round1(float64(counts[i]) / float64(totalCount) * 100)
		}
		if totalAmount != 0 {
			amountPct = round1(sums[i] / totalAmount * 100)
		}
		out.Rows = append(out.Rows, []any{
			b.label, intervalLabel(i, edges), counts[i], countPct, sums[i], amountPct,
		})
	}
	out.Rows = append(out.Rows, []any{"Total", "", totalCount, 100.0, totalAmount, 100.0})
	return out, nil
}

// inBand applies the banding rule: (lower, upper) open on both sides plus
// the upper edge itself; the zero band matches exact zero; the overflow
// band takes everything above PM.
func inBand(i, last int, v float64, edges []float64) bool {
	switch i {
	case 0:
		return v == 0
	case last:
		return v > edges[i-1]
	default:
		lower, upper := edges[i-1], edges[i]
		if upper <= lower {
			// degenerate band (zero threshold): exists as a row but
			// takes part in no interval
			return false
		}
		return (v > lower && v < upper) || v == upper
	}
}

func intervalLabel(i int, edges []float64) string {
	if i == 0 {
		return "<0"
	}
	lower := edges[i-1]
	upper := edges[i]
	if i == len(edges)-1 {
		return "> " + groupThousands(lower)
	}
	return groupThousands(lower) + " - " + groupThousands(upper)
}
