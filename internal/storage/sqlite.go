// Package storage provides SQLite-based persistence for simulation runs and
// evaluated expressions. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished or abandoned simulation run.
type RunEntry struct {
	ID        int64
	SimID     string
	Ticks     int
	Events    int // Collisions for bounce, revolutions for orbit
	CreatedAt time.Time
}

// EvalEntry is one saved expression and its printed result.
type EvalEntry struct {
	ID        int64
	Expr      string
	Result    string
	CreatedAt time.Time
}

// SimStats contains aggregated statistics for a simulation.
type SimStats struct {
	SimID      string
	RunsCount  int
	BestEvents int
	AvgEvents  float64
	TotalTicks int64
	LastRun    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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

	// Test connection
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
			sim_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			events INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_sim_id ON runs(sim_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(sim_id, events DESC);

		CREATE TABLE IF NOT EXISTS evals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			expr TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveRun records a simulation run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(simID string, ticks, events int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (sim_id, ticks, events) VALUES (?, ?, ?)",
		simID, ticks, events,
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

// TopRuns retrieves the N runs with the most events for a simulation.
func (s *Store) TopRuns(simID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, sim_id, ticks, events, created_at
		 FROM runs
		 WHERE sim_id = ?
		 ORDER BY events DESC, id ASC
		 LIMIT ?`,
		simID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all simulations.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, sim_id, ticks, events, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SimID, &e.Ticks, &e.Events, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearRuns deletes all runs for the given simulation.
func (s *Store) ClearRuns(simID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE sim_id = ?", simID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SimStats retrieves aggregated statistics for a specific simulation.
func (s *Store) SimStats(simID string) (*SimStats, error) {
	stats := &SimStats{SimID: simID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(events), 0), COALESCE(AVG(events), 0), COALESCE(SUM(ticks), 0)
		 FROM runs WHERE sim_id = ?`,
		simID,
	).Scan(&stats.RunsCount, &stats.BestEvents, &stats.AvgEvents, &stats.TotalTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get sim stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE sim_id = ? ORDER BY id DESC LIMIT 1`,
		simID,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// SaveEval records an evaluated expression.
func (s *Store) SaveEval(expr, result string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO evals (expr, result) VALUES (?, ?)",
		expr, result,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save eval: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentEvals retrieves the most recently saved expressions.
func (s *Store) RecentEvals(limit int) ([]EvalEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, expr, result, created_at
		 FROM evals
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query evals: %w", err)
	}
	defer rows.Close()

	var entries []EvalEntry
	for rows.Next() {
		var e EvalEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Expr, &e.Result, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
