// Package replay records scripted runs in SQLite and re-simulates them to
// check that the physics still produce the same trajectory.
package replay

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/penguin-squad/input"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("run not found")

// Run is one recorded input sequence and the digest it produced.
type Run struct {
	ID        int64
	Level     string
	Ticks     int
	Digest    string
	Frames    []input.Snapshot
	CreatedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path, creating parent directories
// and the schema as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("replay: expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("replay: create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("replay: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			digest TEXT NOT NULL,
			frames TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save inserts run and returns its id.
func (s *Store) Save(run Run) (int64, error) {
	frames, err := json.Marshal(run.Frames)
	if err != nil {
		return 0, fmt.Errorf("replay: encode frames: %w", err)
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (level, ticks, digest, frames) VALUES (?, ?, ?, ?)",
		run.Level, run.Ticks, run.Digest, string(frames),
	)
	if err != nil {
		return 0, fmt.Errorf("replay: save run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("replay: get inserted id: %w", err)
	}
	return id, nil
}

// Load returns the run with the given id, frames included.
func (s *Store) Load(id int64) (Run, error) {
	var (
		run       Run
		frames    string
		createdAt any
	)
	err := s.db.QueryRow(
		"SELECT id, level, ticks, digest, frames, created_at FROM runs WHERE id = ?",
		id,
	).Scan(&run.ID, &run.Level, &run.Ticks, &run.Digest, &frames, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("replay: run %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("replay: load run %d: %w", id, err)
	}
	if err := json.Unmarshal([]byte(frames), &run.Frames); err != nil {
		return Run{}, fmt.Errorf("replay: decode frames of run %d: %w", id, err)
	}
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// List returns runs newest first without their frames. An empty level lists
// every level.
func (s *Store) List(level string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, level, ticks, digest, created_at
		 FROM runs
		 WHERE ? = '' OR level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("replay: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			createdAt any
		)
		if err := rows.Scan(&run.ID, &run.Level, &run.Ticks, &run.Digest, &createdAt); err != nil {
			return nil, fmt.Errorf("replay: scan run: %w", err)
		}
		run.CreatedAt = parseTime(createdAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("replay: row iteration: %w", err)
	}
	return runs, nil
}

func (s *Store) Delete(id int64) error {
	result, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("replay: delete run %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("replay: run %d: %w", id, ErrNotFound)
	}
	return nil
}

// SQLite hands DATETIME back as either time.Time or text depending on how
// it was written.
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
