package ucoins

import "errors"

var (
	// ErrEmptyTable is returned when a sheet has no data rows.
	ErrEmptyTable = errors.New("table has no rows")
	// ErrMissingColumn is returned when a configured column is not in the header.
	ErrMissingColumn = errors.New("missing column")
	// ErrMalformedReferenceRow is returned by a strict index build when a
	// reference row has no surname.
	ErrMalformedReferenceRow = errors.New("malformed reference row")
)
