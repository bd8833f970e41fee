package ucoins

import (
	"log/slog"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

type walkerState int

const (
	stateNoSubject walkerState = iota
	stateActiveSubject
)

func (s walkerState) String() string {
	if s == stateActiveSubject {
		return "active_subject"
	}
	return "no_subject"
}

// subject is the outcome of one subject row: a ledger when the name
// resolved, an error otherwise.
type subject struct {
	row    int
	raw    string
	ledger *domain.Ledger
	err    *domain.SubjectError
}

// walker carries the "current subject" between rows.
type walker struct {
	index  *NameIndex
	log    *slog.Logger
	marker string

	state   walkerState
	current *domain.Ledger

	subjects []subject
	warnings []domain.Warning
}

func newWalker(index *NameIndex, marker string, log *slog.Logger) *walker {
	return &walker{index: index, marker: marker, log: log}
}

// step applies the events of one row. row is the 1-based sheet row.
// Adjustments on a subject row belong to that subject and are dropped with
// it when its name does not resolve.
func (w *walker) step(row int, events []Event) {
	for _, ev := range events {
		if ev.Kind == EventNewSubject {
			w.startSubject(row, ev.Name)
			continue
		}
		if w.state != stateActiveSubject {
			continue
		}
		w.apply(row, ev)
	}
}

func (w *walker) startSubject(row int, raw string) {
	res := w.index.Resolve(raw)

	if res.Status.Resolved() {
		name, err := domain.ParseFullName(res.FullName)
		if err == nil {
			w.current = domain.NewLedger(name, row)
			w.state = stateActiveSubject
			w.subjects = append(w.subjects, subject{row: row, raw: raw, ledger: w.current})
			return
		}
		res.Status = StatusMalformed
	}

	reason := domain.ReasonUnresolvedName
	if res.Status == StatusDuplicate {
		reason = domain.ReasonAmbiguousName
	}
	w.log.Warn("subject name not resolved",
		slog.Int("row", row),
		slog.String("name", raw),
		slog.String("status", res.Status.String()),
	)
	w.subjects = append(w.subjects, subject{
		row: row,
		raw: raw,
		err: &domain.SubjectError{Subject: raw, Reason: reason, Row: row},
	})
	w.current = nil
	w.state = stateNoSubject
}

func (w *walker) apply(row int, ev Event) {
	var err error
	switch ev.Kind {
	case EventReplenishment:
		err = w.current.AddReplenishment(ev.Reason, ev.Amount)
	case EventWriteOff:
		err = w.current.AddWriteOff(ev.Reason, ev.Amount)
	case EventInvalid:
		w.warn(row, "cannot add "+ev.Rejected.String()+" "+ev.Reason+": "+ev.Problem)
	case EventNoise:
		w.log.Debug("total marker skipped", slog.Int("row", row))
	}
	if err != nil {
		w.warn(row, "cannot add "+ev.Kind.String()+" "+ev.Reason+": "+err.Error())
	}
}

func (w *walker) warn(row int, msg string) {
	subject := w.current.Name.String()
	w.log.Warn("ledger entry skipped",
		slog.Int("row", row),
		slog.String("subject", subject),
		slog.String("problem", msg),
	)
	w.warnings = append(w.warnings, domain.Warning{Row: row, Subject: subject, Message: msg})
}
