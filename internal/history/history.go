// Package history stores completed conversions in SQLite so they can be
// listed or cleared later.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wizzomafizzo/dotdash/internal/database"
	"github.com/wizzomafizzo/dotdash/internal/logging"
)

// Entry is one stored conversion.
type Entry struct {
	CreatedAt time.Time
	Mode      string
	Direction string
	Input     string
	Output    string
	ID        int64
	Key       int
}

// Store records conversions. A positive maxEntries keeps only the newest rows.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// NewStore wraps an open database manager. The manager stays owned by the caller.
func NewStore(manager *database.Manager, maxEntries int) *Store {
	return &Store{db: manager.DB(), maxEntries: maxEntries}
}

// Record inserts e and prunes rows beyond the configured limit.
func (s *Store) Record(ctx context.Context, e Entry) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (mode, direction, shift_key, input, output, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Mode, e.Direction, e.Key, e.Input, e.Output, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}

	if s.maxEntries <= 0 {
		return nil
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM conversions WHERE id NOT IN (
			SELECT id FROM conversions ORDER BY id DESC LIMIT ?
		)`, s.maxEntries)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}

	if pruned, _ := res.RowsAffected(); pruned > 0 {
		logging.Get(ctx).Debug().Int64("pruned", pruned).Msg("Pruned conversion history")
	}

	return nil
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, direction, shift_key, input, output, created_at
		FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Mode, &e.Direction, &e.Key, &e.Input, &e.Output, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return entries, nil
}

// Clear deletes every entry and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM conversions")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared entries: %w", err)
	}
	return n, nil
}
