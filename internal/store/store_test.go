package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

func sampleTxns() []model.Transaction {
	return []model.Transaction{
		{Amount: decimal.RequireFromString("12.5"), Category: model.CategoryFood, Timestamp: time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)},
		{Amount: decimal.RequireFromString("300"), Category: model.CategoryTravel, Timestamp: time.Date(2025, 1, 4, 18, 30, 0, 0, time.UTC), Reference: "chase:2025-01-04:UNITED AIRLINES:-300.00"},
	}
}

func TestWriteTransactions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, sampleTxns()))

	want := "timestamp,category,amount,reference\n" +
		"2025-01-03T10:00:00Z,food,12.50,\n" +
		"2025-01-04T18:30:00Z,travel,300.00,chase:2025-01-04:UNITED AIRLINES:-300.00\n"
	assert.Equal(t, want, buf.String())
}

func TestReadTransactions(t *testing.T) {
	in := Header + "\n2025-01-03T10:00:00Z,Food,12.50,\n"
	txns, err := ReadTransactions(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Equal(sampleTxns()[0]))
}

func TestReadTransactions_Empty(t *testing.T) {
	txns, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)

	txns, err = ReadTransactions(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestReadTransactions_BadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad timestamp", "yesterday,food,1.00,", "parsing timestamp"},
		{"bad category", "2025-01-03T10:00:00Z,rent,1.00,", "unknown category"},
		{"bad amount", "2025-01-03T10:00:00Z,food,ten,", "parsing amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTransactions(strings.NewReader(Header + "\n" + tt.row + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "row 2")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "transactions.csv")
	require.NoError(t, Save(path, sampleTxns()))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, want := range sampleTxns() {
		assert.True(t, want.Equal(got[i]), "row %d", i)
	}
}

func TestSave_ReplacesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	require.NoError(t, Save(path, sampleTxns()))
	require.NoError(t, Save(path, sampleTxns()[:1]))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "transactions.csv", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSave_FailureKeepsDirectoryClean(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	// A non-empty directory at the target makes the final rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(path, "keep"), 0o755))

	err := Save(path, sampleTxns())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replacing transactions file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file removed after failure")
	_, err = os.Stat(filepath.Join(path, "keep"))
	require.NoError(t, err, "existing target untouched")
}

func TestLoad_Missing(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_Unreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := Load(path)
	require.Error(t, err)
}
