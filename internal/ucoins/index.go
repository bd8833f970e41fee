package ucoins

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

// ResolveStatus is the outcome of a NameIndex lookup.
type ResolveStatus int

const (
	// StatusUnresolved: a two-part query matched no reference row.
	StatusUnresolved ResolveStatus = iota
	// StatusFound: a two-part query matched a reference row.
	StatusFound
	// StatusPassthrough: the query already had three parts and is trusted as canonical.
	StatusPassthrough
	// StatusMalformed: the query does not have two or three parts.
	StatusMalformed
	// StatusDuplicate: the match is not unique and duplicates are rejected.
	StatusDuplicate
)

func (s ResolveStatus) String() string {
	switch s {
	case StatusUnresolved:
		return "unresolved"
	case StatusFound:
		return "found"
	case StatusPassthrough:
		return "passthrough"
	case StatusMalformed:
		return "malformed"
	case StatusDuplicate:
		return "duplicate"
	}
	return fmt.Sprintf("ResolveStatus(%d)", int(s))
}

// Resolved reports whether the lookup produced a canonical name.
func (s ResolveStatus) Resolved() bool {
	return s == StatusFound || s == StatusPassthrough
}

// Resolution is the result of NameIndex.Resolve. FullName is set only when
// Status.Resolved() is true.
type Resolution struct {
	Status   ResolveStatus
	FullName string
}

// IndexOptions controls how reference rows are ingested.
type IndexOptions struct {
	// Strict fails the build on a reference row without any name token.
	// Otherwise such rows are skipped with a warning.
	Strict bool
	// Sort stably sorts the rows by surname before indexing.
	// Without it the caller guarantees the order.
	Sort bool
	// RejectDuplicates makes a lookup that hits a (surname, given name) pair
	// present more than once return StatusDuplicate instead of the first row.
	RejectDuplicates bool
}

type nameKey struct {
	last, first string
}

type indexEntry struct {
	full string
	// key is valid only when the row splits into exactly three tokens.
	key   nameKey
	valid bool
	row   int
}

// NameIndex answers "which canonical full name does Surname Given refer to".
// It is immutable once built and safe for concurrent use.
type NameIndex struct {
	entries  []indexEntry
	surnames []string
	counts   map[nameKey]int
	sorted   bool
	opts     IndexOptions
}

// BuildNameIndex indexes reference full names. rows are the data rows of the
// reference sheet in sheet order, without the header.
func BuildNameIndex(rows []string, opts IndexOptions) (*NameIndex, []domain.Warning, error) {
	var warnings []domain.Warning
	entries := make([]indexEntry, 0, len(rows))

	for i, raw := range rows {
		row := sheetRow(i)
		tokens := domain.NameTokens(raw)

		if len(tokens) == 0 {
			if opts.Strict {
				return nil, nil, fmt.Errorf("%w: row %d has no surname", ErrMalformedReferenceRow, row)
			}
			warnings = append(warnings, domain.Warning{Row: row, Message: "empty reference row skipped"})
			continue
		}

		e := indexEntry{full: strings.TrimSpace(raw), key: nameKey{last: tokens[0]}, row: row}
		if len(tokens) == 3 {
			e.key.first = tokens[1]
			e.valid = true
		} else {
			warnings = append(warnings, domain.Warning{
				Row:     row,
				Subject: e.full,
				Message: fmt.Sprintf("reference name has %d parts, want 3; it will never match", len(tokens)),
			})
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("reference names: %w", ErrEmptyTable)
	}

	bySurname := func(a, b indexEntry) int { return strings.Compare(a.key.last, b.key.last) }
	sorted := true
	if opts.Sort {
		slices.SortStableFunc(entries, bySurname)
	} else if !slices.IsSortedFunc(entries, bySurname) {
		sorted = false
		warnings = append(warnings, domain.Warning{Message: "reference names are not sorted by surname; lookups scan the whole list"})
	}

	idx := &NameIndex{
		entries:  entries,
		surnames: make([]string, len(entries)),
		counts:   make(map[nameKey]int),
		sorted:   sorted,
		opts:     opts,
	}
	for i, e := range entries {
		idx.surnames[i] = e.key.last
		if !e.valid {
			continue
		}
		idx.counts[e.key]++
		if idx.counts[e.key] == 2 {
			warnings = append(warnings, domain.Warning{
				Row:     e.row,
				Subject: e.full,
				Message: fmt.Sprintf("surname and given name %q %q appear more than once", e.key.last, e.key.first),
			})
		}
	}

	return idx, warnings, nil
}

// Len returns the number of indexed names.
func (x *NameIndex) Len() int {
	return len(x.entries)
}

// Resolve maps a name typed in the transaction sheet to a canonical full name.
//
// Three-part queries are passed through untouched (tokens re-joined with
// single spaces). Two-part queries are looked up: a lower-bound binary search
// on the surname finds the neighbourhood (the whole list when the index is
// not sorted), then a forward scan compares surname and given name, skipping
// reference rows that are not three-part.
// The first match in scan order wins unless RejectDuplicates is set.
func (x *NameIndex) Resolve(query string) Resolution {
	tokens := domain.NameTokens(query)

	switch len(tokens) {
	case 3:
		return Resolution{Status: StatusPassthrough, FullName: strings.Join(tokens, " ")}
	case 2:
		return x.search(nameKey{last: tokens[0], first: tokens[1]})
	default:
		return Resolution{Status: StatusMalformed}
	}
}

func (x *NameIndex) search(key nameKey) Resolution {
	// Without surname order the binary search has no meaning; scan everything.
	start := 0
	if x.sorted {
		start = x.lowerBound(key.last)
	}
	for i := start; i < len(x.entries); i++ {
		e := x.entries[i]
		if x.sorted && e.key.last > key.last {
			break
		}
		if !e.valid || e.key != key {
			continue
		}
		if x.opts.RejectDuplicates && x.counts[key] > 1 {
			return Resolution{Status: StatusDuplicate}
		}
		return Resolution{Status: StatusFound, FullName: e.full}
	}
	return Resolution{Status: StatusUnresolved}
}

// lowerBound returns the first position whose surname is >= surname.
func (x *NameIndex) lowerBound(surname string) int {
	i, _ := slices.BinarySearch(x.surnames, surname)
	return i
}
