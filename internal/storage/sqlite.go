// Package storage provides SQLite-based persistence for puzzle run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/aoc2024/internal/config"
	"github.com/vovakirdan/aoc2024/internal/core"
	"github.com/vovakirdan/aoc2024/internal/runner"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded execution of a puzzle part.
type RunEntry struct {
	ID        int64
	DayID     string
	Part      int
	Answer    sql.NullInt64 // uint64 bit pattern; invalid when the part is not implemented or failed
	Expected  sql.NullInt64 // uint64 bit pattern; invalid when no expected answer was known
	Status    string
	Duration  time.Duration
	Source    string // Where the input came from: "embedded" or a file path
	Error     string
	CreatedAt time.Time
}

// AnswerValue returns the recorded answer as an unsigned value.
func (e RunEntry) AnswerValue() core.Answer {
	return fromColumn(e.Answer)
}

// ExpectedValue returns the recorded expected answer as an unsigned value.
func (e RunEntry) ExpectedValue() core.Answer {
	return fromColumn(e.Expected)
}

// toColumn stores the 64 bits of an answer in a signed SQLite integer.
func toColumn(a core.Answer) sql.NullInt64 {
	if !a.Set {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(a.Value), Valid: true}
}

func fromColumn(v sql.NullInt64) core.Answer {
	if !v.Valid {
		return core.None()
	}
	return core.Some(uint64(v.Int64))
}

// DayStats contains aggregated run statistics for one day.
type DayStats struct {
	DayID       string
	Runs        int
	Passes      int
	Failures    int
	AvgDuration time.Duration
	LastRun     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day_id TEXT NOT NULL,
			part INTEGER NOT NULL,
			answer INTEGER,
			expected INTEGER,
			status TEXT NOT NULL,
			duration_us INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_day_id ON runs(day_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(day_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records one part execution.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (day_id, part, answer, expected, status, duration_us, source, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.DayID, e.Part, e.Answer, e.Expected, e.Status,
		e.Duration.Microseconds(), e.Source, e.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty dayID selects runs of every day.
func (s *Store) RecentRuns(dayID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, day_id, part, answer, expected, status, duration_us, source, error, created_at
		 FROM runs
		 WHERE ? = '' OR day_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		dayID, dayID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationUS int64
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.DayID, &e.Part, &e.Answer, &e.Expected,
			&e.Status, &durationUS, &e.Source, &e.Error, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationUS) * time.Microsecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DayStats retrieves aggregated statistics for a specific day.
func (s *Store) DayStats(dayID string) (*DayStats, error) {
	stats := &DayStats{DayID: dayID}

	var avgUS float64
	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(status = ?), 0),
		        COALESCE(SUM(status = ?), 0),
		        COALESCE(AVG(duration_us), 0),
		        MAX(created_at)
		 FROM runs WHERE day_id = ?`,
		runner.StatusPass.String(), runner.StatusFail.String(), dayID,
	).Scan(&stats.Runs, &stats.Passes, &stats.Failures, &avgUS, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get day stats: %w", err)
	}

	stats.AvgDuration = time.Duration(avgUS) * time.Microsecond
	stats.LastRun = parseTime(lastRun)
	return stats, nil
}

// ClearRuns deletes all runs for the given day.
// An empty dayID clears the whole history.
func (s *Store) ClearRuns(dayID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR day_id = ?", dayID, dayID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RecordPart implements runner.Recorder.
// This adapter lets the runner persist outcomes without a storage dependency.
func (s *Store) RecordPart(o runner.PartOutcome) error {
	e := RunEntry{
		DayID:    o.DayID,
		Part:     o.Part,
		Status:   o.Status.String(),
		Duration: o.Duration,
		Source:   o.Source,
		Answer:   toColumn(o.Answer),
		Expected: toColumn(o.Expected),
	}
	if o.Err != nil {
		e.Error = o.Err.Error()
	}
	_, err := s.SaveRun(e)
	return err
}

// Ensure Store implements Recorder
var _ runner.Recorder = (*Store)(nil)

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
