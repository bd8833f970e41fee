package ucoins

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// memSheet is an in-memory Sheet.
type memSheet struct {
	header []string
	rows   [][]string
}

func (s memSheet) Header() []string { return s.header }
func (s memSheet) Rows() [][]string { return s.rows }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var txHeader = []string{
	DefaultNameColumn,
	DefaultReplenishReasonColumn,
	DefaultReplenishAmountColumn,
	DefaultWriteOffReasonColumn,
	DefaultWriteOffAmountColumn,
}

// txRow builds a transaction row in txHeader order.
func txRow(name, replReason, replAmount, woReason, woAmount string) []string {
	return []string{name, replReason, replAmount, woReason, woAmount}
}

func mustIndex(t *testing.T, names ...string) *NameIndex {
	t.Helper()
	idx, _, err := BuildNameIndex(names, IndexOptions{Sort: true})
	require.NoError(t, err)
	return idx
}
