package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal appends records to a CSV file, creating it with a header when
// new.
type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

var csvHeader = []string{
	"id", "symbol", "analyzed_at", "signal", "strength", "reasons",
	"top_pattern", "is_surge", "is_dangerous", "is_overheated", "is_in_decline",
}

func NewCSV(path string) (*CSVJournal, error) {
	info, statErr := os.Stat(path)
	fresh := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) Record(r Record) error {
	err := j.w.Write([]string{
		r.ID,
		r.Symbol,
		r.AnalyzedAt.UTC().Format(time.RFC3339),
		r.Signal,
		strconv.Itoa(r.Strength),
		joinReasons(r.Reasons),
		r.TopPattern,
		strconv.FormatBool(r.IsSurge),
		strconv.FormatBool(r.IsDangerous),
		strconv.FormatBool(r.IsOverheated),
		strconv.FormatBool(r.IsInDecline),
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}
