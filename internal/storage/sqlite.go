package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct{ db *sqlx.DB }

// OpenSQLite opens (or creates) the slot database. Schema is created
// inline on startup; there is nothing to migrate beyond a single table.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS session_slots(
  sid        TEXT NOT NULL,
  slot       TEXT NOT NULL,
  value      TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(sid, slot)
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func NewSQLiteStore(db *sqlx.DB) *SQLiteStore { return &SQLiteStore{db: db} }

func (s *SQLiteStore) Get(ctx context.Context, sid, slot string) (string, bool, error) {
	var v string
	err := s.db.GetContext(ctx, &v, `SELECT value FROM session_slots WHERE sid = ? AND slot = ?`, sid, slot)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, sid, slot, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_slots(sid, slot, value, updated_at)
		VALUES(?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(sid, slot) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, sid, slot, value)
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, sid, slot string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_slots WHERE sid = ? AND slot = ?`, sid, slot)
	return err
}
