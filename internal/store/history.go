package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datepick/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// History is the SQLite-backed log of emitted picker values.
type History struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the history database at path.
func Open(ctx context.Context, path string) (*History, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty history path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout helps avoid "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &History{db: db, path: path}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS emissions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			value TEXT NOT NULL,
			millis INTEGER NOT NULL,
			valid INTEGER NOT NULL,
			reason TEXT,
			recorded_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_emissions_session ON emissions(session_id, id);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (h *History) Path() string { return h.path }

func (h *History) Close() error { return h.db.Close() }

// NewSessionID returns a fresh identifier grouping the emissions of one run.
func NewSessionID() string { return uuid.NewString() }

// Append stores e and returns it with ID (and RecordedAt, when unset) filled in.
func (h *History) Append(ctx context.Context, e model.Emission) (model.Emission, error) {
	if strings.TrimSpace(e.SessionID) == "" {
		return e, errors.New("emission without session id")
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	var reason any
	if e.Reason != "" {
		reason = e.Reason
	}
	res, err := h.db.ExecContext(ctx,
		`INSERT INTO emissions(session_id, mode, value, millis, valid, reason, recorded_at_unixms) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, string(e.Mode), e.Value, e.Millis, boolToInt(e.Valid), reason, e.RecordedAt.UnixMilli(),
	)
	if err != nil {
		return e, fmt.Errorf("append emission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return e, err
	}
	e.ID = id
	return e, nil
}

// Recent returns up to limit emissions, newest first. limit <= 0 means all.
func (h *History) Recent(ctx context.Context, limit int) ([]model.Emission, error) {
	q := `SELECT id, session_id, mode, value, millis, valid, reason, recorded_at_unixms FROM emissions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return h.query(ctx, q, args...)
}

// Session returns the emissions of one session in the order they were recorded.
func (h *History) Session(ctx context.Context, sessionID string) ([]model.Emission, error) {
	return h.query(ctx,
		`SELECT id, session_id, mode, value, millis, valid, reason, recorded_at_unixms FROM emissions WHERE session_id = ? ORDER BY id ASC`,
		sessionID)
}

func (h *History) query(ctx context.Context, q string, args ...any) ([]model.Emission, error) {
	rows, err := h.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Emission{}
	for rows.Next() {
		var (
			e      model.Emission
			mode   string
			valid  int
			reason sql.NullString
			atMs   int64
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &mode, &e.Value, &e.Millis, &valid, &reason, &atMs); err != nil {
			return nil, err
		}
		e.Mode = model.Mode(mode)
		e.Valid = valid != 0
		e.Reason = reason.String
		e.RecordedAt = time.UnixMilli(atMs).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
