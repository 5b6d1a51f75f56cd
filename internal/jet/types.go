package jet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"jetaudit/internal/ledger"
)

// Result table names, in report order.
const (
	TableReconciliation    = "Reconciliation"
	TableMateriality       = "Materiality"
	TableAccountPivot      = "JE_by_Account"
	TableAccountUsage      = "JE_by_Account_Usage"
	TableByMonth           = "JE_by_Month"
	TableDayGroup          = "JE_by_Day_of_Month"
	TableByUser            = "JE_Distribution_by_User"
	TableDayOfWeek         = "JE_by_Day_of_Week"
	TableNetToZero         = "Net_to_Zero_Test"
	TableDescriptionLength = "Description_Length"
	TableNonBusinessDay    = "Non_Business_Day"
	TableKeywordSummary    = "Keyword_Summary"
	TableKeywordDetail     = "Keyword_Entries"
	TableRecurringNines    = "Recurring_9s"
	TableRecurringZeros    = "Recurring_0s"
	TableTopTransactions   = "Top_Transactions"
	TableRevenueTop        = "Revenue_Top"
	TableExpenseTop        = "Expense_Top"
)

// ResultTable is one analytical output: an ordered sequence of rows under
// named columns. Cells are string, float64, int, time.Time or nil (blank).
// Tables are produced once per run and read-only afterward.
type ResultTable struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Empty reports whether the table carries no rows.
func (t ResultTable) Empty() bool {
	return len(t.Rows) == 0
}

// RunConfig carries the per-run analysis parameters. The zero value is
// usable after Normalize.
type RunConfig struct {
	// ClearlyTrivial is the clearly-trivial threshold (CTT) used by the
	// materiality banding; zero disables the CTT bands' intervals.
	ClearlyTrivial float64
	// PerformanceMateriality (PM) bounds the upper banding range.
	PerformanceMateriality float64
	// TopTransactions is the N for the largest-transactions listing.
	TopTransactions int
	// TopRevenueExpense is the N for the revenue/expense splits.
	TopRevenueExpense int
}

const (
	DefaultTopTransactions   = 40
	DefaultTopRevenueExpense = 10
)

// Normalize fills unset counts with their defaults.
func (c RunConfig) Normalize() RunConfig {
	if c.TopTransactions <= 0 {
		c.TopTransactions = DefaultTopTransactions
	}
	if c.TopRevenueExpense <= 0 {
		c.TopRevenueExpense = DefaultTopRevenueExpense
	}
	return c
}

// IsValid checks the threshold parameters.
func (c RunConfig) IsValid() bool {
	return c.ClearlyTrivial >= 0 && c.PerformanceMateriality >= 0 &&
		!math.IsNaN(c.ClearlyTrivial) && !math.IsNaN(c.PerformanceMateriality)
}

// entryColumns is the standard column order for entry-listing tables, the
// same order the source workbooks use.
var entryColumns = []string{
	"Account", "Account Name", "Date", "Document No",
	"Counter Account Name", "Counter Account", "Currency", "Rate",
	"Foreign Amount", "Debit", "Credit", "Transaction", "Description",
	"ABS", "User",
}

func entryRow(e ledger.Entry) []any {
	return []any{
		e.Account, e.AccountName, cellDate(e.Date, e.HasDate), e.DocumentNo,
		e.CounterAccountName, e.CounterAccount, e.Currency, cellNumber(e.Rate),
		cellNumber(e.ForeignAmount), cellNumber(e.Debit), cellNumber(e.Credit),
		cellNumber(e.Transaction), e.Description,
		cellNumber(e.Absolute), e.User,
	}
}

func cellNumber(n ledger.Number) any {
	if !n.Valid {
		return nil
	}
	return n.Float64
}

func cellDate(t time.Time, ok bool) any {
	if !ok {
		return nil
	}
	return t
}

// round1 rounds to one decimal, the precision the report uses for
// percentages and reconciliation differences.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// digitsOnly strips everything but digits, for account-prefix checks and
// digit-run scans.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// groupThousands renders an integer with comma separators for the banding
// interval labels (the workbook format the report mirrors).
func groupThousands(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(math.Trunc(v)), 'f', 0, 64)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
