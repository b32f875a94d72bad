package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/jaskcalc/internal/session"
)

var _ session.History = (*Store)(nil)

// Record is a stored history entry.
type Record struct {
	Seq       int64
	ID        string
	Kind      session.EntryKind
	Text      string
	CreatedAt time.Time
}

// Store is the unbounded history log kept in an in-memory SQLite database.
// Nothing is written to disk; the log ends with the process.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates an empty journal.
func Open(ctx context.Context) (*Store, error) {
	db, err := openMemory()
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Append(ctx context.Context, e session.Entry) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO history(id, kind, text, created_at) VALUES (?, ?, ?, ?);
	`, uuid.NewString(), string(e.Kind), e.Text, s.now())
	return err
}

func (s *Store) Recent(ctx context.Context, n int) ([]session.Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT kind, text FROM (
		SELECT seq, kind, text FROM history ORDER BY seq DESC LIMIT ?
	) ORDER BY seq ASC
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []session.Entry
	for rows.Next() {
		var e session.Entry
		var kind string
		if err := rows.Scan(&kind, &e.Text); err != nil {
			return nil, err
		}
		e.Kind = session.EntryKind(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n)
	return n, err
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	return err
}

// Search returns up to limit records whose text contains substr, oldest
// first. A limit of zero or less means no limit.
func (s *Store) Search(ctx context.Context, substr string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT seq, id, kind, text, created_at FROM history
	WHERE instr(text, ?) > 0
	ORDER BY seq ASC
	LIMIT ?
	`, substr, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var r Record
		var kind string
		if err := rows.Scan(&r.Seq, &r.ID, &kind, &r.Text, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Kind = session.EntryKind(kind)
		out = append(out, r)
	}
	return out, rows.Err()
}
