// Package jet implements the journal-entry-testing builders: a set of pure,
// mutually independent functions that each turn a normalized ledger (and
// optionally a trial balance) into one analytical result table, plus the
// Runner that executes the full battery for a run.
//
// Builders never mutate their inputs and never observe each other's output,
// so the Runner is free to execute them concurrently. A builder that cannot
// resolve a required field fails with a named error; the Runner degrades
// that section to an empty table instead of aborting the run.
package jet
