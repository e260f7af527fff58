package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id            TEXT PRIMARY KEY,
	symbol        TEXT NOT NULL,
	analyzed_at   TEXT NOT NULL,
	signal        TEXT NOT NULL,
	strength      INTEGER NOT NULL,
	reasons       TEXT NOT NULL DEFAULT '',
	top_pattern   TEXT NOT NULL DEFAULT '',
	is_surge      INTEGER NOT NULL DEFAULT 0,
	is_dangerous  INTEGER NOT NULL DEFAULT 0,
	is_overheated INTEGER NOT NULL DEFAULT 0,
	is_in_decline INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol, analyzed_at);
`

// SQLiteJournal stores records in a local SQLite file.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) Record(r Record) error {
	_, err := j.db.Exec(`
		INSERT INTO analyses
		(id, symbol, analyzed_at, signal, strength, reasons, top_pattern,
		 is_surge, is_dangerous, is_overheated, is_in_decline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Symbol, r.AnalyzedAt.UTC().Format(time.RFC3339), r.Signal,
		r.Strength, joinReasons(r.Reasons), r.TopPattern,
		boolInt(r.IsSurge), boolInt(r.IsDangerous),
		boolInt(r.IsOverheated), boolInt(r.IsInDecline),
	)
	return err
}

// BySymbol returns a symbol's records, oldest first.
func (j *SQLiteJournal) BySymbol(symbol string) ([]Record, error) {
	rows, err := j.db.Query(`
		SELECT id, symbol, analyzed_at, signal, strength, reasons, top_pattern,
		       is_surge, is_dangerous, is_overheated, is_in_decline
		FROM analyses WHERE symbol = ? ORDER BY analyzed_at`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var at, reasons string
		var surge, danger, hot, decline int
		if err := rows.Scan(&r.ID, &r.Symbol, &at, &r.Signal, &r.Strength,
			&reasons, &r.TopPattern, &surge, &danger, &hot, &decline); err != nil {
			return nil, err
		}
		r.AnalyzedAt, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, err
		}
		r.Reasons = splitReasons(reasons)
		r.IsSurge = surge != 0
		r.IsDangerous = danger != 0
		r.IsOverheated = hot != 0
		r.IsInDecline = decline != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
