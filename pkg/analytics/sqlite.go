package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator/pkg/db"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS analytics_events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    action      TEXT    NOT NULL,
    category    TEXT    NOT NULL,
    label       TEXT    NOT NULL DEFAULT '',
    value       REAL,
    variant     TEXT    NOT NULL DEFAULT '',
    page        TEXT    NOT NULL DEFAULT '',
    ts          INTEGER NOT NULL,
    session_id  TEXT    NOT NULL,
    user_id     TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analytics_events_ts ON analytics_events (ts);
CREATE TABLE IF NOT EXISTS ab_variants (
    user_id  TEXT NOT NULL,
    test     TEXT NOT NULL,
    variant  TEXT NOT NULL,
    PRIMARY KEY (user_id, test)
);`

// SQLiteStore persists the capped event log in a local SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	cap int
}

// OpenSQLiteStore opens (creating if needed) the log at path.
func OpenSQLiteStore(ctx context.Context, path string, capacity int) (*SQLiteStore, error) {
	pool, err := db.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := pool.ExecContext(ctx, sqliteSchema); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("create analytics tables: %w", err)
	}
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &SQLiteStore{db: pool, cap: capacity}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Append(ctx context.Context, e Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var value sql.NullFloat64
	if e.Value != nil {
		value = sql.NullFloat64{Float64: *e.Value, Valid: true}
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO analytics_events (action, category, label, value, variant, page, ts, session_id, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Action, e.Category, e.Label, value, e.Variant, e.Page, e.Timestamp, e.SessionID, e.UserID)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM analytics_events WHERE id <= ?`, id-int64(s.cap)); err != nil {
		return fmt.Errorf("trim analytics events: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Since(ctx context.Context, cutoff time.Time) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT action, category, label, value, variant, page, ts, session_id, user_id
		 FROM analytics_events WHERE ts > ? ORDER BY id`, cutoff.UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e     Event
			value sql.NullFloat64
		)
		if err := rows.Scan(&e.Action, &e.Category, &e.Label, &value, &e.Variant, &e.Page, &e.Timestamp, &e.SessionID, &e.UserID); err != nil {
			return nil, err
		}
		if value.Valid {
			v := value.Float64
			e.Value = &v
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Variant(ctx context.Context, userID, test string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT variant FROM ab_variants WHERE user_id = ? AND test = ?`, userID, test).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLiteStore) SaveVariant(ctx context.Context, userID, test, variant string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ab_variants (user_id, test, variant) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, test) DO UPDATE SET variant = excluded.variant`,
		userID, test, variant)
	return err
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)
