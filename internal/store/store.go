// Package store persists each game as a single JSON document keyed by its
// code. Concurrent actions against the same game are resolved by an
// optimistic version check on the whole document, never by in-process locks.
package store

import (
	"errors"
	"time"

	"chipledger/internal/game"
)

var (
	ErrNotFound  = errors.New("store: game not found")
	ErrConflict  = errors.New("store: game was modified concurrently")
	ErrDuplicate = errors.New("store: code already taken")
)

type Store interface {
	// Create inserts a new game document at version 1.
	Create(s *game.Session) error

	// Get returns the document and the version to pass back to Update.
	Get(code string) (*game.Session, int64, error)

	// Update replaces the whole document iff the stored version still
	// matches. Returns ErrConflict when another write won the race.
	Update(code string, s *game.Session, version int64) error

	Delete(code string) error

	// PurgeStale removes games untouched for longer than maxAge and
	// reports how many were deleted.
	PurgeStale(maxAge time.Duration) (int64, error)
}
