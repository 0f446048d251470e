package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepositoryFacade
}

// NewSessionService creates a new training session service.
func NewSessionService(sessionRepo portsrepo.SessionRepositoryFacade, options ...Option) portssvc.SessionSvcFacade {
	svc := &sessionService{sessionRepo: sessionRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func parseSessionDates(start, end string) (domain.Session, error) {
	var s domain.Session
	var err error
	if s.StartDate, err = domain.ParseDay(start); err != nil {
		return s, fmt.Errorf("%w: startDate must be a YYYY-MM-DD date", apperrors.ErrValidation)
	}
	if s.EndDate, err = domain.ParseDay(end); err != nil {
		return s, fmt.Errorf("%w: endDate must be a YYYY-MM-DD date", apperrors.ErrValidation)
	}
	return s, nil
}

func (s *sessionService) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*domain.Session, error) {
	session, err := parseSessionDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	session.SessionID = uuid.NewString()
	session.TrainingID = req.TrainingID
	session.ClientID = req.ClientID
	session.Trainer = req.Trainer
	session.Location = req.Location
	session.TraineesCount = req.TraineesCount
	session.Trainees = make([]domain.Trainee, 0, len(req.Trainees))
	for _, name := range req.Trainees {
		if name = strings.TrimSpace(name); name != "" {
			session.AddTrainee(domain.Trainee{TraineeID: uuid.NewString(), Name: name})
		}
	}
	session.AuditFields = auditNow(s.Now())
	if err := session.Validate(); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogOutcome(ctx, err, "Failed to save session")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.LogInfo(ctx, "Session scheduled", slog.String("session_id", session.SessionID), slog.String("training_id", session.TrainingID))
	return &session, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to get session", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to list sessions")
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if sessions == nil {
		return []domain.Session{}, nil
	}
	return sessions, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, sessionID string, req dto.UpdateSessionRequest) (*domain.Session, error) {
	existing, err := s.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	dates, err := parseSessionDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	updated := *existing
	updated.TrainingID = req.TrainingID
	updated.ClientID = req.ClientID
	updated.StartDate = dates.StartDate
	updated.EndDate = dates.EndDate
	updated.Trainer = req.Trainer
	updated.Location = req.Location
	updated.TraineesCount = req.TraineesCount
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return s.save(ctx, updated)
}

func (s *sessionService) save(ctx context.Context, session domain.Session) (*domain.Session, error) {
	session.LastUpdatedAt = s.Now()
	if err := s.sessionRepo.UpdateSession(ctx, session); err != nil {
		s.LogOutcome(ctx, err, "Failed to update session", slog.String("session_id", session.SessionID))
		return nil, fmt.Errorf("failed to update session %s: %w", session.SessionID, err)
	}
	return &session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		s.LogOutcome(ctx, err, "Failed to delete session", slog.String("session_id", sessionID))
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

func (s *sessionService) AddTrainee(ctx context.Context, sessionID string, req dto.AddTraineeRequest) (*domain.Session, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: trainee name is required", apperrors.ErrValidation)
	}
	session, err := s.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.AddTrainee(domain.Trainee{TraineeID: uuid.NewString(), Name: name})
	return s.save(ctx, *session)
}

func (s *sessionService) RemoveTrainee(ctx context.Context, sessionID, traineeID string) (*domain.Session, error) {
	session, err := s.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.RemoveTrainee(traineeID) {
		return nil, fmt.Errorf("%w: trainee %s is not enrolled in session %s", apperrors.ErrNotFound, traineeID, sessionID)
	}
	return s.save(ctx, *session)
}
