package jet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"jetaudit/internal/ledger"
)

// ReportSet is the named collection of result tables one run produces.
// Table order is fixed regardless of builder completion order.
type ReportSet struct {
	Tables []ResultTable
	byName map[string]int
}

// Get looks a table up by name.
func (s *ReportSet) Get(name string) (ResultTable, bool) {
	i, ok := s.byName[name]
	if !ok {
		return ResultTable{}, false
	}
	return s.Tables[i], true
}

// Names returns the table names in report order.
func (s *ReportSet) Names() []string {
	names := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		names[i] = t.Name
	}
	return names
}

// Append adds a table to the end of the set, such as the raw input
// sheets behind the analytical ones.
func (s *ReportSet) Append(t ResultTable) {
	if s.byName == nil {
		s.byName = make(map[string]int)
	}
	s.byName[t.Name] = len(s.Tables)
	s.Tables = append(s.Tables, t)
}

// Runner executes the full test battery for one run.
type Runner struct {
	cfg    RunConfig
	logger *slog.Logger
}

// NewRunner creates a runner with the given parameters. A nil logger falls
// back to slog.Default.
func NewRunner(cfg RunConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg.Normalize(), logger: logger}
}

// section is one unit of work: a builder invocation yielding one or more
// tables. names lists the tables the section owns, so a failed section can
// still contribute empty tables under the right names.
type section struct {
	names []string
	build func() ([]ResultTable, error)
}

// Run executes every builder against the shared read-only inputs and
// collects the results. Builders run concurrently; a failing section is
// logged and degraded to empty tables. Having no usable input at all is
// the only fatal condition.
func (r *Runner) Run(ctx context.Context, gl *ledger.Ledger, tb []ledger.TrialBalanceRow) (*ReportSet, error) {
	start := time.Now()
	if gl.Empty() && len(tb) == 0 {
		return nil, fmt.Errorf("no usable ledger data: GL and TB are both empty")
	}
	if !r.cfg.IsValid() {
		return nil, fmt.Errorf("invalid run config: ctt=%v pm=%v",
			r.cfg.ClearlyTrivial, r.cfg.PerformanceMateriality)
	}

	entries := 0
	if gl != nil {
		entries = len(gl.Entries)
	}
	r.logger.InfoContext(ctx, "starting JET run",
		"gl_entries", entries,
		"tb_rows", len(tb),
		"ctt", r.cfg.ClearlyTrivial,
		"pm", r.cfg.PerformanceMateriality,
	)

	one := func(f func() (ResultTable, error)) func() ([]ResultTable, error) {
		return func() ([]ResultTable, error) {
			t, err := f()
			return []ResultTable{t}, err
		}
	}
	two := func(f func() (ResultTable, ResultTable, error)) func() ([]ResultTable, error) {
		return func() ([]ResultTable, error) {
			a, b, err := f()
			return []ResultTable{a, b}, err
		}
	}

	sections := []section{
		{[]string{TableReconciliation}, one(func() (ResultTable, error) { return Reconciliation(tb, gl) })},
		{[]string{TableMateriality}, one(func() (ResultTable, error) {
			return Materiality(gl, r.cfg.ClearlyTrivial, r.cfg.PerformanceMateriality)
		})},
		{[]string{TableAccountPivot, TableAccountUsage}, two(func() (ResultTable, ResultTable, error) { return AccountPivot(gl) })},
		{[]string{TableByMonth}, one(func() (ResultTable, error) { return ByMonth(gl) })},
		{[]string{TableDayGroup}, one(func() (ResultTable, error) { return DayGroups(gl) })},
		{[]string{TableByUser}, one(func() (ResultTable, error) { return ByUser(gl) })},
		{[]string{TableDayOfWeek}, one(func() (ResultTable, error) { return ByDayOfWeek(gl) })},
		{[]string{TableNetToZero}, one(func() (ResultTable, error) { return NetToZero(gl) })},
		{[]string{TableDescriptionLength}, one(func() (ResultTable, error) { return DescriptionLengths(gl) })},
		{[]string{TableNonBusinessDay}, one(func() (ResultTable, error) { return NonBusinessDay(gl) })},
		{[]string{TableKeywordSummary, TableKeywordDetail}, two(func() (ResultTable, ResultTable, error) { return KeywordSearch(gl) })},
		{[]string{TableRecurringNines}, one(func() (ResultTable, error) { return RecurringNines(gl) })},
		{[]string{TableRecurringZeros}, one(func() (ResultTable, error) { return RecurringZeros(gl) })},
		{[]string{TableTopTransactions}, one(func() (ResultTable, error) {
			return TopTransactions(gl, r.cfg.TopTransactions)
		})},
		{[]string{TableRevenueTop, TableExpenseTop}, two(func() (ResultTable, ResultTable, error) {
			return RevenueExpenseTop(gl, r.cfg.TopRevenueExpense)
		})},
	}

	results := make([][]ResultTable, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range sections {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tables, err := s.build()
			if err != nil {
				// degrade the section, keep the run alive
				r.logger.WarnContext(gctx, "test section failed, emitting empty tables",
					"tables", s.names,
					"error", err,
				)
				tables = make([]ResultTable, len(s.names))
				for j, name := range s.names {
					tables[j] = ResultTable{Name: name}
				}
			}
			results[i] = tables
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	set := &ReportSet{byName: make(map[string]int)}
	for _, tables := range results {
		for _, t := range tables {
			set.byName[t.Name] = len(set.Tables)
			set.Tables = append(set.Tables, t)
		}
	}

	r.logger.InfoContext(ctx, "JET run completed",
		"tables", len(set.Tables),
		"duration", time.Since(start),
	)
	return set, nil
}
