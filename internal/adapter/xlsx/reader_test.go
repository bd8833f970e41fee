package xlsx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]any) string {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpen_FirstSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		"UCoins": {
			{"ФИО", "Активность", "Ucoins", "Сувенирка", "Сумма"},
			{"Иванов Иван"},
			{nil, "Хакатон", 100},
			{nil, nil, nil, "Кружка", 30},
		},
	})

	s, err := Open(path, "")
	require.NoError(t, err)

	assert.Equal(t, "UCoins", s.Name())
	assert.Equal(t, []string{"ФИО", "Активность", "Ucoins", "Сувенирка", "Сумма"}, s.Header())
	require.Len(t, s.Rows(), 3)
	assert.Equal(t, []string{"Иванов Иван"}, s.Rows()[0])
	assert.Equal(t, []string{"", "Хакатон", "100"}, s.Rows()[1])
	assert.Equal(t, []string{"", "", "", "Кружка", "30"}, s.Rows()[2])
}

func TestOpen_NamedSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		"Names": {{"ФИО"}, {"Ivanov Ivan Ivanovich"}, {"Petrov Petr Petrovich"}},
	})

	s, err := Open(path, "Names")
	require.NoError(t, err)
	assert.Len(t, s.Rows(), 2)

	_, err = Open(path, "Missing")
	require.ErrorIs(t, err, ErrNoSheet)
}

func TestOpen_HeaderOnly(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{"Sheet": {{"ФИО"}}})

	s, err := Open(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ФИО"}, s.Header())
	assert.Empty(t, s.Rows())
}

func TestOpen_NotAWorkbook(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	require.Error(t, err)

	_, err = Read(bytes.NewReader([]byte("not a zip")), "")
	require.Error(t, err)
}

func TestReader_ReadSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{"Sheet": {{"ФИО"}, {"Ivanov Ivan Ivanovich"}}})

	s, err := Reader{}.ReadSheet(path, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Ivanov Ivan Ivanovich"}}, s.Rows())

	s, err = Reader{}.ReadSheet(path, "Nope")
	require.Error(t, err)
	assert.Nil(t, s)
}
