package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	"github.com/SscSPs/oris_formation_app/internal/models"
)

const sessionColumns = `session_id, training_id, client_id, start_date, end_date, trainer, location, trainees_count, trainees, created_at, last_updated_at`

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func scanSession(row pgx.Row) (models.Session, error) {
	var m models.Session
	err := row.Scan(
		&m.SessionID,
		&m.TrainingID,
		&m.ClientID,
		&m.StartDate,
		&m.EndDate,
		&m.Trainer,
		&m.Location,
		&m.TraineesCount,
		&m.Trainees,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func sessionArgs(m models.Session) []any {
	trainees := m.Trainees
	if trainees == nil {
		trainees = []models.TraineeItem{}
	}
	return []any{
		m.SessionID, m.TrainingID, m.ClientID, m.StartDate, m.EndDate, m.Trainer, m.Location,
		m.TraineesCount, trainees, m.CreatedAt, m.LastUpdatedAt,
	}
}

const insertSessionSQL = `INSERT INTO sessions (` + sessionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	if _, err := r.Pool.Exec(ctx, insertSessionSQL, sessionArgs(models.ToModelSession(session))...); err != nil {
		return storeError(tableSessions, err, fmt.Sprintf("failed to save session %s", session.SessionID))
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE session_id = $1`
	m, err := scanSession(r.Pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		return nil, notFoundOr(tableSessions, err, fmt.Sprintf("session %s", sessionID))
	}
	session := m.ToDomain()
	return &session, nil
}

func (r *PgxSessionRepository) ListSessions(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY start_date, session_id`)
	if err != nil {
		return nil, storeError(tableSessions, err, "failed to query sessions")
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Session, error) {
		return scanSession(row)
	})
	if err != nil {
		return nil, storeError(tableSessions, err, "failed to scan sessions")
	}
	sessions := make([]domain.Session, len(ms))
	for i, m := range ms {
		sessions[i] = m.ToDomain()
	}
	return sessions, nil
}

func (r *PgxSessionRepository) UpdateSession(ctx context.Context, session domain.Session) error {
	m := models.ToModelSession(session)
	query := `
		UPDATE sessions SET
			training_id = $2, client_id = $3, start_date = $4, end_date = $5, trainer = $6,
			location = $7, trainees_count = $8, trainees = $9, last_updated_at = $10
		WHERE session_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.SessionID, m.TrainingID, m.ClientID, m.StartDate, m.EndDate, m.Trainer,
		m.Location, m.TraineesCount, m.Trainees, m.LastUpdatedAt,
	)
	if err != nil {
		return storeError(tableSessions, err, fmt.Sprintf("failed to update session %s", session.SessionID))
	}
	return requireRow(tag, fmt.Sprintf("session %s", session.SessionID))
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return storeError(tableSessions, err, fmt.Sprintf("failed to delete session %s", sessionID))
	}
	return requireRow(tag, fmt.Sprintf("session %s", sessionID))
}
