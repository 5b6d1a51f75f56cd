// Package ledger defines the tabular data model for general ledger and
// trial balance inputs: the raw Table container, the missing-aware Number
// type, the bilingual field alias catalogue, the column resolver that maps
// canonical fields onto whatever headers an uploaded file happens to use,
// and the normalizers that turn dirty spreadsheet cells into clean values.
//
// Everything in this package is pure: no I/O, no shared mutable state.
package ledger
