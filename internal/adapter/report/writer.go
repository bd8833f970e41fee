// Package report writes and reads the parse job's output files.
// The file extension selects the encoding: .yaml and .yml are YAML, anything else is JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the encoding for a file by its extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DefaultIndent matches the indentation of the files the registrar was built against.
const DefaultIndent = 4

// Writer encodes values to files.
type Writer struct {
	indent int
}

// NewWriter creates a Writer. Non-positive indent falls back to DefaultIndent.
func NewWriter(indent int) *Writer {
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &Writer{indent: indent}
}

// Encode writes v to out in the given format.
// JSON output keeps non-ASCII text and HTML characters as is.
func (w *Writer) Encode(out io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(w.indent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", w.indent))
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// FileMode is the permission of written report files.
const FileMode = 0o644

// WriteFile encodes v into path. The file is written next to its final
// location and renamed into place, so readers never observe a partial file.
func (w *Writer) WriteFile(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	// CreateTemp opens the file 0600.
	if err := tmp.Chmod(FileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Encode(tmp, FormatOf(path), v); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
