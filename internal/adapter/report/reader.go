package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

// ReadReports loads a result file written by the parse job.
func ReadReports(path string) ([]domain.SubjectReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}

	var reports []domain.SubjectReport
	if err := Decode(data, FormatOf(path), &reports); err != nil {
		return nil, fmt.Errorf("read reports %s: %w", path, err)
	}
	return reports, nil
}

// Decode unmarshals data in the given format into v.
// Unknown JSON fields are rejected so a wrong file fails loudly.
func Decode(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode yaml: %w", err)
		}
		return nil
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
