// Package storage defines persistence contracts for generated levels and
// settled run payouts.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// LevelKey identifies a level by its generation inputs.
type LevelKey struct {
	Seed   int64
	Width  int
	Height int
}

// LevelRecord stores one serialized level definition.
type LevelRecord struct {
	ID         string
	Key        LevelKey
	Definition []byte
	CreatedAt  time.Time
}

// PayoutRecord stores one finalized run.
type PayoutRecord struct {
	ID              int64
	LevelID         string
	Strategy        string
	Score           int
	RelicsCollected int
	ElapsedSeconds  float64
	Tokens          float64
	Tier            string
	CreatedAt       time.Time
}

// LevelStore caches generated level definitions.
type LevelStore interface {
	GetLevel(ctx context.Context, key LevelKey) (LevelRecord, error)
	PutLevel(ctx context.Context, record LevelRecord) error
}

// PayoutStore keeps the ledger of finalized runs.
type PayoutStore interface {
	RecordPayout(ctx context.Context, record PayoutRecord) (int64, error)
	ListPayouts(ctx context.Context, levelID string, limit int) ([]PayoutRecord, error)
}

// Store is the full persistence surface used by the service.
type Store interface {
	LevelStore
	PayoutStore
	Close() error
}
