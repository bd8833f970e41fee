// Package ucoins reconciles a ucoins transaction sheet against a reference
// list of canonical full names.
//
// The transaction sheet is read top to bottom. A row with a name cell starts
// a new subject; the rows under it carry the subject's replenishments and
// write-offs until the next name row. Two-part names ("Surname Given") are
// resolved to the canonical three-part name through a NameIndex. The result
// is a domain.RunResult with one entry, success or error, per subject row.
//
// Pure package: sheets in, domain structs out. No file or database access.
package ucoins
