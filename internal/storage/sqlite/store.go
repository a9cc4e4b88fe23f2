// Package sqlite provides a SQLite-backed level and payout store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/samdwyer/runevault/internal/storage"
	"github.com/samdwyer/runevault/internal/storage/sqlite/migrations"
	"github.com/samdwyer/runevault/internal/storage/sqlitemigrate"
)

// Store persists levels and payouts in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetLevel returns the cached definition for key.
func (s *Store) GetLevel(ctx context.Context, key storage.LevelKey) (storage.LevelRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.LevelRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.LevelRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, seed, width, height, definition_json, created_at
		   FROM levels
		  WHERE seed = ? AND width = ? AND height = ?`,
		key.Seed, key.Width, key.Height,
	)

	var rec storage.LevelRecord
	var definition string
	var createdAt int64
	err := row.Scan(&rec.ID, &rec.Key.Seed, &rec.Key.Width, &rec.Key.Height, &definition, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.LevelRecord{}, storage.ErrNotFound
		}
		return storage.LevelRecord{}, fmt.Errorf("get level: %w", err)
	}
	rec.Definition = []byte(definition)
	rec.CreatedAt = fromMillis(createdAt)
	return rec, nil
}

// PutLevel inserts one level record. A record with the same id or the same
// generation key returns storage.ErrAlreadyExists.
func (s *Store) PutLevel(ctx context.Context, record storage.LevelRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("level id is required")
	}
	if len(record.Definition) == 0 {
		return fmt.Errorf("level definition is required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO levels (id, seed, width, height, definition_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		record.Key.Seed,
		record.Key.Width,
		record.Key.Height,
		string(record.Definition),
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("put level: %w", err)
	}
	return nil
}

// RecordPayout appends a finalized run to the ledger and returns its row id.
func (s *Store) RecordPayout(ctx context.Context, record storage.PayoutRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	levelID := strings.TrimSpace(record.LevelID)
	if levelID == "" {
		return 0, fmt.Errorf("level id is required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO run_payouts (
		   level_id, strategy, score, relics_collected,
		   elapsed_seconds, tokens, tier, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		levelID,
		record.Strategy,
		record.Score,
		record.RelicsCollected,
		record.ElapsedSeconds,
		record.Tokens,
		record.Tier,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("record payout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record payout id: %w", err)
	}
	return id, nil
}

// ListPayouts returns the most recent payouts, newest first. An empty
// levelID lists across all levels.
func (s *Store) ListPayouts(ctx context.Context, levelID string, limit int) ([]storage.PayoutRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, level_id, strategy, score, relics_collected,
		        elapsed_seconds, tokens, tier, created_at
		   FROM run_payouts
		  WHERE ? = '' OR level_id = ?
		  ORDER BY id DESC
		  LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	defer rows.Close()

	payouts := make([]storage.PayoutRecord, 0, limit)
	for rows.Next() {
		var rec storage.PayoutRecord
		var createdAt int64
		if err := rows.Scan(
			&rec.ID,
			&rec.LevelID,
			&rec.Strategy,
			&rec.Score,
			&rec.RelicsCollected,
			&rec.ElapsedSeconds,
			&rec.Tokens,
			&rec.Tier,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan payout: %w", err)
		}
		rec.CreatedAt = fromMillis(createdAt)
		payouts = append(payouts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payouts: %w", err)
	}
	return payouts, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
