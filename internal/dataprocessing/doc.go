// Package dataprocessing reads client workbooks into ledger tables.
//
// Client files arrive in whatever shape the accounting system exported:
// sheet names vary, the header row is rarely the first row, and column
// titles mix Mongolian and English. The reader locates the right sheet
// by a preference list, scans for the header row by trying to resolve
// known columns against it, and hands the rectangular remainder to the
// ledger package.
package dataprocessing
