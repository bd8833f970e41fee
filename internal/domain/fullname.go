package domain

import (
	"fmt"
	"strings"
)

// FullName is a canonical three-part person name: surname, given name and
// patronymic, in that order.
type FullName struct {
	Last       string
	First      string
	Patronymic string
	// Raw is the string the name was parsed from, trimmed.
	Raw string
}

// NameTokens splits a name on runs of whitespace. Leading and trailing
// whitespace never produces empty tokens.
func NameTokens(s string) []string {
	return strings.Fields(s)
}

// ParseFullName parses "Surname Given Patronymic". Exactly three
// whitespace-separated tokens are required.
func ParseFullName(s string) (FullName, error) {
	tokens := NameTokens(s)
	if len(tokens) != 3 {
		return FullName{}, fmt.Errorf("%w: %q has %d parts, want 3", ErrMalformedName, s, len(tokens))
	}
	return FullName{
		Last:       tokens[0],
		First:      tokens[1],
		Patronymic: tokens[2],
		Raw:        strings.TrimSpace(s),
	}, nil
}

// String returns the name joined with single spaces.
func (n FullName) String() string {
	return n.Last + " " + n.First + " " + n.Patronymic
}

// Username derives the login used when a customer is registered from a report.
func (n FullName) Username() string {
	return n.Last + "_" + n.First + "_" + n.Patronymic
}
