package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type SessionRepository struct {
	store *Store
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(_ context.Context, session domain.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.sessions[session.SessionID]; exists {
		return duplicate("session %s", session.SessionID)
	}
	r.store.sessions[session.SessionID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) FindSessionByID(_ context.Context, sessionID string) (*domain.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.sessions[sessionID]
	if !ok {
		return nil, notFound("session %s", sessionID)
	}
	session := cloneSession(s)
	return &session, nil
}

func (r *SessionRepository) ListSessions(_ context.Context) ([]domain.Session, error) {
	r.store.mu.RLock()
	sessions := make([]domain.Session, 0, len(r.store.sessions))
	for _, s := range r.store.sessions {
		sessions = append(sessions, cloneSession(s))
	}
	r.store.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].StartDate.Equal(sessions[j].StartDate) {
			return sessions[i].StartDate.Before(sessions[j].StartDate)
		}
		return sessions[i].SessionID < sessions[j].SessionID
	})
	return sessions, nil
}

func (r *SessionRepository) UpdateSession(_ context.Context, session domain.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.sessions[session.SessionID]
	if !ok {
		return notFound("session %s", session.SessionID)
	}
	session.CreatedAt = existing.CreatedAt
	r.store.sessions[session.SessionID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.sessions[sessionID]; !ok {
		return notFound("session %s", sessionID)
	}
	delete(r.store.sessions, sessionID)
	return nil
}
