// Package history persists extracted projects as a capped, most-recent-first
// log backed by SQLite. The cap keeps the store bounded the way a browser's
// local storage budget would; oldest entries are evicted on save.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/scopelens/scopelens/internal/common"
	"github.com/scopelens/scopelens/internal/entity"
)

// DefaultCap bounds the number of retained entries.
const DefaultCap = 50

// timeLayout is RFC 3339 with a fixed nanosecond width. RFC3339Nano drops
// trailing fractional zeros, which breaks lexicographic ordering of the TEXT
// column ("00.5Z" sorts after "00.5000001Z"); a fixed width keeps
// ORDER BY created_at chronological.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one saved project plus its storage identity.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	entity.Project
}

const schema = `
CREATE TABLE IF NOT EXISTS project_history (
	id         TEXT PRIMARY KEY,
	file_name  TEXT NOT NULL,
	created_at TEXT NOT NULL,
	payload    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_project_history_created ON project_history (created_at DESC);
`

type Store struct {
	db     *sql.DB
	cap    int
	logger *slog.Logger
}

// Open opens (creating if needed) the history database at path.
func Open(path string, cap int, logger *slog.Logger) (*Store, error) {
	if cap <= 0 {
		cap = DefaultCap
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	logger.Info("history.open", "path", path, "cap", cap)
	return &Store{db: db, cap: cap, logger: logger}, nil
}

// Save stores a project and evicts the oldest entries beyond the cap.
func (s *Store) Save(ctx context.Context, p entity.Project) (Entry, error) {
	e := Entry{
		ID:        "project-" + uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Project:   p,
	}
	payload, err := json.Marshal(e.Project)
	if err != nil {
		return Entry{}, fmt.Errorf("encode project: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO project_history (id, file_name, created_at, payload) VALUES (?, ?, ?, ?)`,
		e.ID, p.FileName, e.CreatedAt.Format(timeLayout), string(payload),
	); err != nil {
		return Entry{}, fmt.Errorf("insert history entry: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM project_history WHERE id NOT IN (
			SELECT id FROM project_history ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`, s.cap,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("evict history entries: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("commit save: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		s.logger.Info("history.save.evicted", "count", n, "cap", s.cap)
	}
	s.logger.Info("history.save.ok", "id", e.ID, "file", p.FileName)
	return e, nil
}

// List returns all entries, most recent first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, payload FROM project_history ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the entry with the given id, or common.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, payload FROM project_history WHERE id = ?`, id)
	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, common.ErrNotFound
	}
	return e, err
}

// Delete removes the entry with the given id, or returns common.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM project_history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	s.logger.Info("history.delete.ok", "id", id)
	return nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM project_history`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scanEntry(scan func(dest ...any) error) (Entry, error) {
	var (
		e       Entry
		created string
		payload string
	)
	if err := scan(&e.ID, &created, &payload); err != nil {
		return Entry{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at: %w", err)
	}
	e.CreatedAt = ts
	if err := json.Unmarshal([]byte(payload), &e.Project); err != nil {
		return Entry{}, fmt.Errorf("decode project payload: %w", err)
	}
	return e, nil
}
