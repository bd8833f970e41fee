package domain

import "fmt"

// LedgerEntry is one balance adjustment: a reason and a non-negative amount.
type LedgerEntry struct {
	Reason string
	Amount int
}

func (e LedgerEntry) validate() error {
	if e.Reason == "" {
		return NewValidationError("reason", "required")
	}
	if e.Amount < 0 {
		return NewValidationError("amount", fmt.Sprintf("must be >= 0, got %d", e.Amount))
	}
	return nil
}

// Ledger accumulates the replenishments and write-offs of one resolved person
// while their block of transaction rows is being read.
type Ledger struct {
	Name FullName
	// Row is the 1-based sheet row that started this subject.
	Row            int
	Replenishments []LedgerEntry
	WriteOffs      []LedgerEntry
}

// NewLedger creates an empty ledger for name.
func NewLedger(name FullName, row int) *Ledger {
	return &Ledger{Name: name, Row: row}
}

// AddReplenishment appends a replenishment. The ledger is unchanged on error.
func (l *Ledger) AddReplenishment(reason string, amount int) error {
	e := LedgerEntry{Reason: reason, Amount: amount}
	if err := e.validate(); err != nil {
		return err
	}
	l.Replenishments = append(l.Replenishments, e)
	return nil
}

// AddWriteOff appends a write-off. The ledger is unchanged on error.
func (l *Ledger) AddWriteOff(reason string, amount int) error {
	e := LedgerEntry{Reason: reason, Amount: amount}
	if err := e.validate(); err != nil {
		return err
	}
	l.WriteOffs = append(l.WriteOffs, e)
	return nil
}

// TotalReplenished returns the sum of all replenishments.
func (l *Ledger) TotalReplenished() int {
	return sumEntries(l.Replenishments)
}

// TotalWrittenOff returns the sum of all write-offs.
func (l *Ledger) TotalWrittenOff() int {
	return sumEntries(l.WriteOffs)
}

// Balance returns replenishments minus write-offs. It may be negative.
func (l *Ledger) Balance() int {
	return l.TotalReplenished() - l.TotalWrittenOff()
}

// Report converts the ledger into its serializable form.
// Returns ErrNegativeBalance when write-offs exceed replenishments.
func (l *Ledger) Report() (SubjectReport, error) {
	total := l.Balance()
	if total < 0 {
		return SubjectReport{}, fmt.Errorf("%s: %w (got %d)", l.Name, ErrNegativeBalance, total)
	}
	return SubjectReport{
		Name:           NamePartsOf(l.Name),
		Replenishments: entryReports(l.Replenishments),
		WriteOffs:      entryReports(l.WriteOffs),
		Total:          total,
	}, nil
}

func sumEntries(entries []LedgerEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

func entryReports(entries []LedgerEntry) []EntryReport {
	out := make([]EntryReport, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryReport{Reason: e.Reason, Count: e.Amount})
	}
	return out
}
