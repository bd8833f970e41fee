package domain

import "fmt"

// Error reasons written to the error report.
const (
	ReasonUnresolvedName   = "name could not be resolved"
	ReasonAmbiguousName    = "name matches several reference rows"
	ReasonNegativeBalance  = "net balance cannot be negative"
	ReasonInvalidReport    = "report entry is invalid"
	ReasonAlreadyExists    = "user already exists"
	ReasonRegistrationFail = "registration failed"
)

// NameParts is the serialized form of a FullName.
type NameParts struct {
	FullName   string `json:"full_name"  yaml:"full_name"`
	LastName   string `json:"last_name"  yaml:"last_name"`
	FirstName  string `json:"first_name" yaml:"first_name"`
	Patronymic string `json:"patronymic" yaml:"patronymic"`
}

// NamePartsOf converts a FullName for output.
func NamePartsOf(n FullName) NameParts {
	return NameParts{
		FullName:   n.String(),
		LastName:   n.Last,
		FirstName:  n.First,
		Patronymic: n.Patronymic,
	}
}

// ToFullName converts the serialized parts back, requiring every part.
func (p NameParts) ToFullName() (FullName, error) {
	var errs []FieldError
	if p.LastName == "" {
		errs = append(errs, FieldError{Field: "name.last_name", Message: "required"})
	}
	if p.FirstName == "" {
		errs = append(errs, FieldError{Field: "name.first_name", Message: "required"})
	}
	if p.Patronymic == "" {
		errs = append(errs, FieldError{Field: "name.patronymic", Message: "required"})
	}
	if len(errs) > 0 {
		return FullName{}, NewValidationErrors(errs)
	}
	n := FullName{Last: p.LastName, First: p.FirstName, Patronymic: p.Patronymic}
	n.Raw = n.String()
	return n, nil
}

// EntryReport is one serialized ledger entry.
type EntryReport struct {
	Reason string `json:"reason" yaml:"reason"`
	Count  int    `json:"count"  yaml:"count"`
}

// SubjectReport is the successful outcome for one subject.
type SubjectReport struct {
	Name           NameParts     `json:"name"           yaml:"name"`
	Replenishments []EntryReport `json:"replenishments" yaml:"replenishments"`
	WriteOffs      []EntryReport `json:"write_offs"     yaml:"write_offs"`
	Total          int           `json:"total"          yaml:"total"`
}

// Validate checks a report read back from disk before it is persisted.
func (r SubjectReport) Validate() error {
	if _, err := r.Name.ToFullName(); err != nil {
		return err
	}

	var errs []FieldError
	sum := 0
	for i, e := range r.Replenishments {
		errs = appendEntryErrors(errs, "replenishments", i, e)
		sum += e.Count
	}
	for i, e := range r.WriteOffs {
		errs = appendEntryErrors(errs, "write_offs", i, e)
		sum -= e.Count
	}
	if r.Total < 0 {
		errs = append(errs, FieldError{Field: "total", Message: ReasonNegativeBalance})
	} else if sum != r.Total {
		errs = append(errs, FieldError{Field: "total", Message: fmt.Sprintf("is %d, entries sum to %d", r.Total, sum)})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func appendEntryErrors(errs []FieldError, list string, i int, e EntryReport) []FieldError {
	if e.Reason == "" {
		errs = append(errs, FieldError{Field: fmt.Sprintf("%s[%d].reason", list, i), Message: "required"})
	}
	if e.Count < 0 {
		errs = append(errs, FieldError{Field: fmt.Sprintf("%s[%d].count", list, i), Message: "must be >= 0"})
	}
	return errs
}

// SubjectError is an entry of the error report. Subject is the raw name from
// the sheet when it could not be resolved, the canonical name otherwise.
type SubjectError struct {
	Subject string `json:"subject" yaml:"subject"`
	Reason  string `json:"reason"  yaml:"reason"`
	Row     int    `json:"-"       yaml:"-"`
}

// Warning is a non-fatal problem found while reading a sheet.
type Warning struct {
	Row     int    `json:"row"               yaml:"row"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Message string `json:"message"           yaml:"message"`
}

// RunResult is the outcome of one parse run. Every subject row of the
// transaction sheet is accounted for in exactly one of Reports or Errors.
type RunResult struct {
	Reports  []SubjectReport
	Errors   []SubjectError
	Warnings []Warning
}

// NewRunResult returns a result with non-nil, empty sequences.
func NewRunResult() RunResult {
	return RunResult{
		Reports: make([]SubjectReport, 0),
		Errors:  make([]SubjectError, 0),
	}
}
