// Command jetreport runs the full journal-entry-testing battery over a
// general ledger workbook (plus an optional trial balance) and writes
// the results as one report workbook, optionally with a CSV export.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"jetaudit/internal/config"
	"jetaudit/internal/dataprocessing"
	"jetaudit/internal/exporter"
	"jetaudit/internal/infrastructure"
	"jetaudit/internal/jet"
)

func main() {
	glPath := flag.String("gl", "", "general ledger workbook (.xlsx), required")
	tbPath := flag.String("tb", "", "trial balance workbook (.xlsx), optional")
	outPath := flag.String("out", "", "output report workbook path (defaults to JET_Report.xlsx in the configured output dir)")
	csvDir := flag.String("csv", "", "also export each table as CSV into this directory")
	withRaw := flag.Bool("raw", false, "append the raw GL and TB data as trailing sheets")
	configPath := flag.String("config", "config.yaml", "configuration file path")
	ctt := flag.Float64("ctt", -1, "clearly trivial threshold, overrides config when >= 0")
	pm := flag.Float64("pm", -1, "performance materiality, overrides config when >= 0")
	flag.Parse()

	if *glPath == "" {
		fmt.Fprintln(os.Stderr, "usage: jetreport -gl <ledger.xlsx> [-tb <trialbalance.xlsx>] [-out <report.xlsx>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *ctt >= 0 {
		cfg.Report.ClearlyTrivial = *ctt
	}
	if *pm >= 0 {
		cfg.Report.PerformanceMateriality = *pm
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx, runID := infrastructure.WithRunID(context.Background())
	logger.InfoContext(ctx, "jetreport starting",
		"run_id", runID,
		"gl", *glPath,
		"tb", *tbPath,
	)

	gl, err := dataprocessing.LoadGL(*glPath, logger)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load general ledger", "error", err)
		os.Exit(1)
	}
	tb, err := dataprocessing.LoadTB(*tbPath, logger)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load trial balance", "error", err)
		os.Exit(1)
	}

	runner := jet.NewRunner(jet.RunConfig{
		ClearlyTrivial:         cfg.Report.ClearlyTrivial,
		PerformanceMateriality: cfg.Report.PerformanceMateriality,
		TopTransactions:        cfg.Report.TopTransactions,
		TopRevenueExpense:      cfg.Report.TopRevenueExpense,
	}, logger)

	set, err := runner.Run(ctx, gl, tb)
	if err != nil {
		logger.ErrorContext(ctx, "run failed", "error", err)
		os.Exit(1)
	}

	if *withRaw {
		set.Append(jet.RawGL(gl))
		if len(tb) > 0 {
			set.Append(jet.RawTB(tb))
		}
	}

	out := *outPath
	if out == "" {
		out = filepath.Join(cfg.Paths.OutputDir, "JET_Report.xlsx")
	}
	if err := exporter.NewWorkbookWriter(logger).Write(out, set); err != nil {
		logger.ErrorContext(ctx, "failed to write report workbook", "error", err)
		os.Exit(1)
	}

	if *csvDir != "" {
		if err := exporter.NewCSVWriter(logger).Write(*csvDir, set); err != nil {
			logger.ErrorContext(ctx, "failed to write CSV export", "error", err)
			os.Exit(1)
		}
	}

	logger.InfoContext(ctx, "jetreport finished", "report", out, "tables", len(set.Tables))
}
