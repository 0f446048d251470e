package services

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// SessionReaderSvc defines read operations for training sessions
type SessionReaderSvc interface {
	GetSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
}

// SessionWriterSvc defines write operations for training sessions
type SessionWriterSvc interface {
	CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*domain.Session, error)
	UpdateSession(ctx context.Context, sessionID string, req dto.UpdateSessionRequest) (*domain.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	AddTrainee(ctx context.Context, sessionID string, req dto.AddTraineeRequest) (*domain.Session, error)
	RemoveTrainee(ctx context.Context, sessionID, traineeID string) (*domain.Session, error)
}

// SessionSvcFacade combines all session-related service interfaces
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionWriterSvc
}
