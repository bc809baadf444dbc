// Package history persists evaluated programs: the source text that was run,
// the output it produced, and when. It backs the CLI history commands and the
// HTTP service's program listing; the language core knows nothing about it.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Program is one recorded evaluation.
type Program struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrNotFound reports a program id with no record.
var ErrNotFound = errors.New("program not found")

// Store records programs in a SQLite database file.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS programs (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	output     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_programs_created_at ON programs(created_at DESC);
`

// Open creates or opens the store at path, creating parent directories as
// needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save records one evaluation and returns it with its assigned id.
func (s *Store) Save(ctx context.Context, source, output string) (Program, error) {
	prog := Program{
		ID:        uuid.NewString(),
		Source:    source,
		Output:    output,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO programs (id, source, output, created_at) VALUES (?, ?, ?, ?)`,
		prog.ID, prog.Source, prog.Output, prog.CreatedAt)
	if err != nil {
		return Program{}, fmt.Errorf("failed to save program: %w", err)
	}
	return prog, nil
}

// Get returns the program with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Program, error) {
	var prog Program
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, output, created_at FROM programs WHERE id = ?`, id).
		Scan(&prog.ID, &prog.Source, &prog.Output, &prog.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Program{}, ErrNotFound
	}
	if err != nil {
		return Program{}, fmt.Errorf("failed to load program: %w", err)
	}
	return prog, nil
}

// List returns up to limit programs, newest first. A non-positive limit
// means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Program, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, output, created_at FROM programs ORDER BY created_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	var progs []Program
	for rows.Next() {
		var prog Program
		if err := rows.Scan(&prog.ID, &prog.Source, &prog.Output, &prog.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		progs = append(progs, prog)
	}
	return progs, rows.Err()
}

// Prune deletes all but the newest keep programs, returning how many were
// removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM programs WHERE id NOT IN (
			SELECT id FROM programs ORDER BY created_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune programs: %w", err)
	}
	return res.RowsAffected()
}
