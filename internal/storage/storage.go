package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/SpicyMarinara/rpg-companion/pkg/session"
)

// Storage persists roleplay sessions and their character evolution state.
type Storage interface {
	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error

	// Close releases the storage connection
	Close() error

	// SaveSession saves a session under its UUID
	SaveSession(ctx context.Context, s *session.Session) error

	// LoadSession retrieves a session by UUID.
	// Returns nil if the session doesn't exist.
	LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// DeleteSession removes a session by UUID
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// ListSessions returns the UUIDs of all stored sessions
	ListSessions(ctx context.Context) ([]uuid.UUID, error)
}
