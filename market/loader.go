package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// Bar CSV layout: date,open,high,low,close[,volume]. A header row is
// detected and skipped. Dates parse as 2006-01-02 or RFC3339.
const dateLayout = "2006-01-02"

// LoadCSV reads a daily bar series from a CSV file and returns it
// oldest-first. Files ending in .xz are decompressed transparently; .zip
// archives are extracted to a temp directory and the first .csv inside is
// loaded. Rows stored newest-first are detected by date and normalized.
func LoadCSV(path string) ([]Bar, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return loadZip(path)
	case ".xz":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz stream %s: %w", path, err)
		}
		return readBars(r)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readBars(f)
	}
}

func loadZip(path string) ([]Bar, error) {
	dir, err := os.MkdirTemp("", "stocksignal-bars-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	var csvPath string
	err = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if csvPath == "" && !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			csvPath = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if csvPath == "" {
		return nil, fmt.Errorf("no csv file inside %s", path)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readBars(f)
}

func readBars(r io.Reader) ([]Bar, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var bars []Bar
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(rec) < 5 {
			return nil, fmt.Errorf("line %d: want at least 5 fields, got %d", line, len(rec))
		}
		if line == 1 && isHeader(rec) {
			continue
		}

		bar, err := parseBar(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars found")
	}

	// Vendor exports disagree on row order; normalize once here.
	newestFirst := len(bars) > 1 && bars[0].Date.After(bars[len(bars)-1].Date)
	return OldestFirst(bars, newestFirst), nil
}

func isHeader(rec []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	return err != nil
}

func parseBar(rec []string) (Bar, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(rec[0]))
	if err != nil {
		date, err = time.Parse(time.RFC3339, strings.TrimSpace(rec[0]))
		if err != nil {
			return Bar{}, fmt.Errorf("bad date %q", rec[0])
		}
	}

	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return Bar{}, fmt.Errorf("bad number %q", rec[i+1])
		}
		vals[i] = v
	}

	bar := Bar{Date: date, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}
	if len(rec) > 5 && strings.TrimSpace(rec[5]) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[5]), 64)
		if err != nil {
			return Bar{}, fmt.Errorf("bad volume %q", rec[5])
		}
		bar.Volume = v
	}
	return bar, nil
}
