// Package xlsx reads worksheets of .xlsx workbooks into header + rows tables.
package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/ucoins-backend/internal/ucoins"
)

// ErrNoSheet is returned when the workbook has no worksheet with the requested name.
var ErrNoSheet = errors.New("sheet not found")

// Sheet is one worksheet: the first row is the header, the rest are data rows.
// Data rows keep excelize's layout: trailing empty cells are omitted.
type Sheet struct {
	name   string
	header []string
	rows   [][]string
}

// Name returns the worksheet name.
func (s *Sheet) Name() string { return s.name }

// Header returns the first row.
func (s *Sheet) Header() []string { return s.header }

// Rows returns the data rows below the header.
func (s *Sheet) Rows() [][]string { return s.rows }

// Open reads a worksheet from the workbook at path.
// An empty sheet name selects the first worksheet.
func Open(path, sheet string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	s, err := read(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}
	return s, nil
}

// Read reads a worksheet from a workbook stream.
func Read(r io.Reader, sheet string) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return read(f, sheet)
}

func read(f *excelize.File, sheet string) (*Sheet, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("%w: workbook has no worksheets", ErrNoSheet)
		}
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, sheet)
	}

	// Raw values keep numbers free of display formatting such as thousands separators.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	s := &Sheet{name: sheet}
	if len(rows) == 0 {
		return s, nil
	}
	s.header = rows[0]
	s.rows = rows[1:]
	return s, nil
}

// Reader opens worksheets from files.
type Reader struct{}

// ReadSheet implements the parse job's sheet source.
func (Reader) ReadSheet(path, sheet string) (ucoins.Sheet, error) {
	s, err := Open(path, sheet)
	if err != nil {
		return nil, err
	}
	return s, nil
}
