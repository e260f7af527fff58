package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(symbol string) Record {
	return Record{
		ID:          NewID(),
		Symbol:      symbol,
		AnalyzedAt:  time.Date(2026, 8, 21, 15, 0, 0, 0, time.UTC),
		Signal:      "buy",
		Strength:    82,
		Reasons:     []string{"strong bullish bar", "RSI shows the stock is oversold"},
		TopPattern:  "double_bottom",
		IsDangerous: true,
	}
}

func TestNewIDSortable(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.Len(t, a, 26)
	assert.Less(t, a, b)
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.sqlite")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	want := sampleRecord("7203.T")
	require.NoError(t, j.Record(want))
	require.NoError(t, j.Record(sampleRecord("AAPL")))

	got, err := j.BySymbol("7203.T")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestSQLiteEmptyQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.sqlite")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	got, err := j.BySymbol("NONE")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCSVAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(sampleRecord("7203.T")))
	require.NoError(t, j.Close())

	// Reopen: the header must not repeat.
	j, err = NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(sampleRecord("7203.T")))
	require.NoError(t, j.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "id,symbol,analyzed_at")
	assert.Contains(t, lines[1], "double_bottom")
}
