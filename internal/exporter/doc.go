// Package exporter writes the collected result tables to disk, either
// as one multi-sheet workbook or as a directory of CSV files. Values
// are written plain; styling and charts are left to downstream tools.
package exporter
