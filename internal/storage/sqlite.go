// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// Run is one finished attempt at a pack: either the whole campaign was
// cleared, or the player quit after clearing at least one level.
type Run struct {
	ID            int64
	PackID        string
	Player        string
	LevelsCleared int
	LevelCount    int
	Deaths        int
	Coins         int
	Duration      time.Duration // Simulated play time
	Completed     bool
	CreatedAt     time.Time
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	PackID      string
	Runs        int
	Completions int
	BestDeaths  int // Fewest deaths in a completed run, -1 if none
	TotalDeaths int64
	LastPlayed  time.Time
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
			pack_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			levels_cleared INTEGER NOT NULL,
			level_count INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack_id ON runs(pack_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pack_id, completed DESC, levels_cleared DESC, deaths, duration_ms);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.PackID == "" {
		return 0, errors.New("storage: run has no pack id")
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (pack_id, player, levels_cleared, level_count, deaths, coins, duration_ms, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.PackID,
		r.Player,
		r.LevelsCleared,
		r.LevelCount,
		r.Deaths,
		r.Coins,
		r.Duration.Milliseconds(),
		r.Completed,
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

const runColumns = `id, pack_id, player, levels_cleared, level_count, deaths, coins, duration_ms, completed, created_at`

// TopRuns retrieves the best N runs for the given pack.
// Completed runs come first, then the furthest progress, fewest deaths and
// shortest time.
func (s *Store) TopRuns(packID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE pack_id = ?
		 ORDER BY completed DESC, levels_cleared DESC, deaths ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the top run for the given pack, or nil if none exist.
func (s *Store) BestRun(packID string) (*Run, error) {
	runs, err := s.TopRuns(packID, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// ClearRuns deletes all runs for the given pack.
func (s *Store) ClearRuns(packID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetPackStats retrieves aggregated statistics for a specific pack.
func (s *Store) GetPackStats(packID string) (*PackStats, error) {
	stats := &PackStats{PackID: packID}

	var best sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(completed), 0),
		        MIN(CASE WHEN completed = 1 THEN deaths END),
		        COALESCE(SUM(deaths), 0),
		        MAX(created_at)
		 FROM runs WHERE pack_id = ?`,
		packID,
	).Scan(&stats.Runs, &stats.Completions, &best, &stats.TotalDeaths, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}

	stats.BestDeaths = -1
	if best.Valid {
		stats.BestDeaths = int(best.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllPackStats retrieves statistics for every pack that has runs.
func (s *Store) GetAllPackStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack_id, COUNT(*), COALESCE(SUM(completed), 0),
		        MIN(CASE WHEN completed = 1 THEN deaths END),
		        COALESCE(SUM(deaths), 0), MAX(created_at)
		 FROM runs
		 GROUP BY pack_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var ps PackStats
		var best sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&ps.PackID, &ps.Runs, &ps.Completions, &best, &ps.TotalDeaths, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		ps.BestDeaths = -1
		if best.Valid {
			ps.BestDeaths = int(best.Int64)
		}
		ps.LastPlayed = parseTime(lastPlayed)

		stats[ps.PackID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var r Run
	var durationMs int64
	var createdAt any
	if err := rows.Scan(
		&r.ID,
		&r.PackID,
		&r.Player,
		&r.LevelsCleared,
		&r.LevelCount,
		&r.Deaths,
		&r.Coins,
		&durationMs,
		&r.Completed,
		&createdAt,
	); err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
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
