package report

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

func sampleReports() []domain.SubjectReport {
	return []domain.SubjectReport{
		{
			Name: domain.NameParts{
				FullName:   "Иванов Иван Иванович",
				LastName:   "Иванов",
				FirstName:  "Иван",
				Patronymic: "Иванович",
			},
			Replenishments: []domain.EntryReport{{Reason: "Хакатон", Count: 100}},
			WriteOffs:      []domain.EntryReport{{Reason: "Кружка <big>", Count: 30}},
			Total:          70,
		},
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"result.json":     FormatJSON,
		"out/result.YAML": FormatYAML,
		"result.yml":      FormatYAML,
		"result":          FormatJSON,
		"result.txt":      FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatOf(path), path)
	}
}

func TestWriter_EncodeJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewWriter(0).Encode(&buf, FormatJSON, sampleReports()))

	out := buf.String()
	assert.Contains(t, out, `"full_name": "Иванов Иван Иванович"`)
	assert.Contains(t, out, `"reason": "Кружка <big>"`)
	assert.Contains(t, out, "\n    {\n        \"name\": {")
	assert.Contains(t, out, `"write_offs"`)
}

func TestWriter_EncodeYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewWriter(2).Encode(&buf, FormatYAML, sampleReports()))

	out := buf.String()
	assert.Contains(t, out, "full_name: Иванов Иван Иванович")
	assert.Contains(t, out, "total: 70")
}

func TestWriter_EncodeUnknownFormat(t *testing.T) {
	t.Parallel()

	err := NewWriter(4).Encode(&bytes.Buffer{}, Format("csv"), nil)
	require.Error(t, err)
}

func TestWriter_WriteFileRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"result.json", "result.yaml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, NewWriter(4).WriteFile(path, sampleReports()))

			got, err := ReadReports(path)
			require.NoError(t, err)
			assert.Equal(t, sampleReports(), got)

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp file must not be left behind")
		})
	}
}

func TestWriter_WriteFileEmptyList(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ErrorList.json")
	require.NoError(t, NewWriter(4).WriteFile(path, []domain.SubjectError{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestWriter_WriteFileIsWorldReadable(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	path := filepath.Join(t.TempDir(), "ErrorList.json")
	require.NoError(t, NewWriter(DefaultIndent).WriteFile(path, []domain.SubjectError{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestReadReports_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := ReadReports(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name": {}, "unexpected": 1}]`), 0o600))
	_, err = ReadReports(bad)
	require.Error(t, err)

	errList := filepath.Join(dir, "ErrorList.json")
	require.NoError(t, os.WriteFile(errList, []byte(`[{"subject": "x", "reason": "y"}]`), 0o600))
	_, err = ReadReports(errList)
	require.Error(t, err, "an error list is not a result file")
}
