package market

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestOldestFirst(t *testing.T) {
	bars := []Bar{
		{Date: day(3), Close: 3},
		{Date: day(2), Close: 2},
		{Date: day(1), Close: 1},
	}

	flipped := OldestFirst(bars, true)
	assert.Equal(t, 1.0, flipped[0].Close)
	assert.Equal(t, 3.0, flipped[2].Close)
	// Input slice is untouched.
	assert.Equal(t, 3.0, bars[0].Close)

	same := OldestFirst(flipped, false)
	assert.Equal(t, flipped, same)
}

func TestCloses(t *testing.T) {
	bars := []Bar{{Close: 10}, {Close: 11}, {Close: 12}}
	assert.Equal(t, []float64{10, 11, 12}, Closes(bars))
}

func TestLatest(t *testing.T) {
	_, ok := Latest(nil)
	assert.False(t, ok)

	last, ok := Latest([]Bar{{Close: 1}, {Close: 2}})
	assert.True(t, ok)
	assert.Equal(t, 2.0, last.Close)
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.csv")
	data := "date,open,high,low,close,volume\n" +
		"2026-01-02,100,105,99,102,1000\n" +
		"2026-01-03,102,107,101,105,1200\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	bars, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 102.0, bars[0].Close)
	assert.Equal(t, 1200.0, bars[1].Volume)
}

func TestLoadCSVNewestFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.csv")
	data := "2026-01-03,102,107,101,105\n" +
		"2026-01-02,100,105,99,102\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	bars, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.True(t, bars[0].Date.Before(bars[1].Date))
}

func TestLoadCSVBadRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("2026-01-02,abc,1,1,1\n"), 0644))

	_, err := LoadCSV(path)
	assert.Error(t, err)
}
