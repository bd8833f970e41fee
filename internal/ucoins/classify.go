package ucoins

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EventKind tags what a transaction row means.
type EventKind int

const (
	EventEmpty EventKind = iota
	EventNewSubject
	EventReplenishment
	EventWriteOff
	// EventNoise is a write-off cell holding the column total marker.
	EventNoise
	// EventInvalid is an adjustment whose amount could not be used.
	EventInvalid
)

func (k EventKind) String() string {
	switch k {
	case EventEmpty:
		return "empty"
	case EventNewSubject:
		return "new_subject"
	case EventReplenishment:
		return "replenishment"
	case EventWriteOff:
		return "write_off"
	case EventNoise:
		return "noise"
	case EventInvalid:
		return "invalid"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one classified fact about a row. A row can carry a subject name,
// a replenishment and a write-off at once, so Classify returns a slice.
type Event struct {
	Kind EventKind
	// Name is set for EventNewSubject.
	Name   string
	Reason string
	Amount int
	// Rejected and Problem are set for EventInvalid: the adjustment kind that
	// was dropped and why.
	Rejected EventKind
	Problem  string
}

// Classify decides what a row means without looking at any state.
//
// A populated name cell makes the row a subject row: EventNewSubject comes
// first, followed by whatever the adjustment cells of the same row hold.
// The replenishment and write-off reason cells are inspected independently.
// A write-off reason equal to totalMarker is noise.
func Classify(c RowCells, totalMarker string) []Event {
	var events []Event
	if name := strings.TrimSpace(c.Name); name != "" {
		events = append(events, Event{Kind: EventNewSubject, Name: name})
	}

	if reason := strings.TrimSpace(c.ReplenishReason); reason != "" {
		events = append(events, adjustment(EventReplenishment, reason, c.ReplenishAmount))
	}
	if reason := strings.TrimSpace(c.WriteOffReason); reason != "" {
		if reason == strings.TrimSpace(totalMarker) {
			events = append(events, Event{Kind: EventNoise, Reason: reason})
		} else {
			events = append(events, adjustment(EventWriteOff, reason, c.WriteOffAmount))
		}
	}

	if len(events) == 0 {
		return []Event{{Kind: EventEmpty}}
	}
	return events
}

func adjustment(kind EventKind, reason, rawAmount string) Event {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return Event{Kind: EventInvalid, Reason: reason, Rejected: kind, Problem: err.Error()}
	}
	return Event{Kind: kind, Reason: reason, Amount: amount}
}

var errBadAmount = errors.New("bad amount")

// MaxAmount is the largest amount a single entry may carry.
const MaxAmount = math.MaxInt32

// ParseAmount parses a non-negative whole number of ucoins. Integral
// decimals such as "50.0" are accepted since spreadsheet numbers often come
// out that way.
func ParseAmount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", errBadAmount)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: %d is negative", errBadAmount, n)
		}
		if n > MaxAmount {
			return 0, fmt.Errorf("%w: %d is too large", errBadAmount, n)
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", errBadAmount, s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q is not a whole number", errBadAmount, s)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: %q is negative", errBadAmount, s)
	}
	if f > MaxAmount {
		return 0, fmt.Errorf("%w: %q is too large", errBadAmount, s)
	}
	return int(f), nil
}
