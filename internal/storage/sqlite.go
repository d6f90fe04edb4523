// Package storage persists play results in SQLite. It uses the pure-Go
// modernc.org/sqlite driver, so the binary stays CGO-free.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Result is one finished play-through of a level: either the ball
// reached the flag (Completed) or it died trying.
type Result struct {
	ID        int64
	Level     string
	Completed bool
	Gems      int
	Ticks     int
	FinalSize float64
	CreatedAt time.Time
}

// Duration converts the run length from simulation ticks to wall time
// at the 60 ticks/second baseline.
func (r Result) Duration() time.Duration {
	return time.Duration(r.Ticks) * time.Second / 60
}

// LevelStats aggregates the stored results of one level.
type LevelStats struct {
	Level      string
	Runs       int
	Clears     int
	BestTicks  int // Fastest completed run; 0 when the level was never cleared
	LastPlayed time.Time
}

// Store manages the SQLite database holding results.
type Store struct {
	db *sql.DB
}

// Open creates or opens the results database at the given path. A
// leading ~ expands to the home directory; parent directories are
// created as needed and the schema is migrated on every open.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

// migrate creates the schema if it does not exist yet.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			gems INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			final_size REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_level ON results(level);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(completed, ticks);
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

// SaveResult records one finished run. Returns the ID of the inserted
// record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (level, completed, gems, ticks, final_size)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Level, r.Completed, r.Gems, r.Ticks, r.FinalSize,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// LevelResults retrieves the most recent runs of one level, newest
// first.
func (s *Store) LevelResults(level string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, completed, gems, ticks, final_size, created_at
		 FROM results
		 WHERE level = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return collectResults(rows)
}

// BestResults retrieves completed runs across all levels, fastest
// first.
func (s *Store) BestResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, completed, gems, ticks, final_size, created_at
		 FROM results
		 WHERE completed = 1
		 ORDER BY ticks ASC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	return collectResults(rows)
}

// BestTicks returns the fastest completed run of the level. ok is
// false when the level has never been cleared.
func (s *Store) BestTicks(level string) (ticks int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(ticks) FROM results WHERE level = ? AND completed = 1",
		level,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best ticks: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// Levels lists every level with at least one stored result, sorted by
// name.
func (s *Store) Levels() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT level FROM results ORDER BY level")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		levels = append(levels, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return levels, nil
}

// AllLevelStats aggregates the stored results per level, sorted by
// level name.
func (s *Store) AllLevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), SUM(completed),
		        COALESCE(MIN(CASE WHEN completed = 1 THEN ticks END), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY level
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.Level, &st.Runs, &st.Clears, &st.BestTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// collectResults drains a result query into a slice.
func collectResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.Completed, &r.Gems, &r.Ticks, &r.FinalSize, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// parseTimestamp normalizes the driver's created_at values, which come
// back either as time.Time or as a formatted string.
func parseTimestamp(v any) time.Time {
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
