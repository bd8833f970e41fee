package ucoins

import (
	"fmt"
	"strings"
)

// Sheet is a table with a header row. Rows returns the data rows in sheet
// order; a row may be shorter than the header when trailing cells are empty.
type Sheet interface {
	Header() []string
	Rows() [][]string
}

// Default column titles and total marker of the ucoins workbook.
const (
	DefaultNameColumn            = "ФИО"
	DefaultReplenishReasonColumn = "Активность"
	DefaultReplenishAmountColumn = "Ucoins"
	DefaultWriteOffReasonColumn  = "Сувенирка"
	DefaultWriteOffAmountColumn  = "Сумма"
	DefaultTotalMarker           = "Итог за сувенирку"
)

// Columns names the transaction sheet columns the parser reads.
type Columns struct {
	Name            string
	ReplenishReason string
	ReplenishAmount string
	WriteOffReason  string
	WriteOffAmount  string
}

// DefaultColumns returns the column titles of the ucoins workbook.
func DefaultColumns() Columns {
	return Columns{
		Name:            DefaultNameColumn,
		ReplenishReason: DefaultReplenishReasonColumn,
		ReplenishAmount: DefaultReplenishAmountColumn,
		WriteOffReason:  DefaultWriteOffReasonColumn,
		WriteOffAmount:  DefaultWriteOffAmountColumn,
	}
}

// RowCells are the raw cells of one transaction row.
type RowCells struct {
	Name            string
	ReplenishReason string
	ReplenishAmount string
	WriteOffReason  string
	WriteOffAmount  string
}

type columnIndex struct {
	name, replenishReason, replenishAmount, writeOffReason, writeOffAmount int
}

func (c columnIndex) cells(row []string) RowCells {
	return RowCells{
		Name:            cell(row, c.name),
		ReplenishReason: cell(row, c.replenishReason),
		ReplenishAmount: cell(row, c.replenishAmount),
		WriteOffReason:  cell(row, c.writeOffReason),
		WriteOffAmount:  cell(row, c.writeOffAmount),
	}
}

func locateColumns(header []string, cols Columns) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	var missing []string
	find := func(title string) int {
		i, ok := positions[strings.TrimSpace(title)]
		if !ok {
			missing = append(missing, title)
		}
		return i
	}

	idx := columnIndex{
		name:            find(cols.Name),
		replenishReason: find(cols.ReplenishReason),
		replenishAmount: find(cols.ReplenishAmount),
		writeOffReason:  find(cols.WriteOffReason),
		writeOffAmount:  find(cols.WriteOffAmount),
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// ReferenceNames extracts the name column of a reference sheet. An empty
// column title selects the first column.
func ReferenceNames(sheet Sheet, column string) ([]string, error) {
	rows := sheet.Rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("reference sheet: %w", ErrEmptyTable)
	}

	col := 0
	if column != "" {
		col = -1
		for i, h := range sheet.Header() {
			if strings.TrimSpace(h) == strings.TrimSpace(column) {
				col = i
				break
			}
		}
		if col < 0 {
			return nil, fmt.Errorf("reference sheet: %w: %s", ErrMissingColumn, column)
		}
	}

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = cell(row, col)
	}
	return names, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// sheetRow converts a data row index to the 1-based sheet row number,
// accounting for the header row.
func sheetRow(i int) int {
	return i + 2
}
