package repositories

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// SessionReader defines read operations for training sessions
type SessionReader interface {
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// ListSessions retrieves all sessions, earliest start date first.
	ListSessions(ctx context.Context) ([]domain.Session, error)
}

// SessionWriter defines write operations for training sessions
type SessionWriter interface {
	SaveSession(ctx context.Context, session domain.Session) error

	// UpdateSession replaces the stored session, roster included.
	UpdateSession(ctx context.Context, session domain.Session) error

	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionRepositoryFacade combines all session-related repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
