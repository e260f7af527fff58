// Package journal records analysis runs so advice given to users can be
// audited later. The engine itself never journals; only the CLI (or a
// calling service) chooses to.
package journal

import (
	"strings"
	"time"
)

// Record is one analysis run for one symbol.
type Record struct {
	ID           string // ULID, time-sortable
	Symbol       string
	AnalyzedAt   time.Time
	Signal       string
	Strength     int
	Reasons      []string
	TopPattern   string // strongest chart formation, empty when none fired
	IsSurge      bool
	IsDangerous  bool
	IsOverheated bool
	IsInDecline  bool
}

// Journal persists records.
type Journal interface {
	Record(Record) error
	Close() error
}

func joinReasons(reasons []string) string {
	return strings.Join(reasons, "; ")
}

func splitReasons(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "; ")
}
