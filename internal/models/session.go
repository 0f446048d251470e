package models

import (
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// TraineeItem is the JSON shape of a roster entry.
type TraineeItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is a row of the sessions table. The roster is stored as JSONB.
type Session struct {
	SessionID     string        `db:"session_id"`
	TrainingID    string        `db:"training_id"`
	ClientID      string        `db:"client_id"`
	StartDate     time.Time     `db:"start_date"`
	EndDate       time.Time     `db:"end_date"`
	Trainer       string        `db:"trainer"`
	Location      string        `db:"location"`
	TraineesCount int           `db:"trainees_count"`
	Trainees      []TraineeItem `db:"trainees"`
	AuditFields
}

func ToModelSession(s domain.Session) Session {
	trainees := make([]TraineeItem, len(s.Trainees))
	for i, t := range s.Trainees {
		trainees[i] = TraineeItem{ID: t.TraineeID, Name: t.Name}
	}
	return Session{
		SessionID:     s.SessionID,
		TrainingID:    s.TrainingID,
		ClientID:      s.ClientID,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		Trainer:       s.Trainer,
		Location:      s.Location,
		TraineesCount: s.TraineesCount,
		Trainees:      trainees,
		AuditFields:   toModelAudit(s.AuditFields),
	}
}

func (m Session) ToDomain() domain.Session {
	trainees := make([]domain.Trainee, len(m.Trainees))
	for i, t := range m.Trainees {
		trainees[i] = domain.Trainee{TraineeID: t.ID, Name: t.Name}
	}
	return domain.Session{
		SessionID:     m.SessionID,
		TrainingID:    m.TrainingID,
		ClientID:      m.ClientID,
		StartDate:     domain.Day(m.StartDate),
		EndDate:       domain.Day(m.EndDate),
		Trainer:       m.Trainer,
		Location:      m.Location,
		TraineesCount: m.TraineesCount,
		Trainees:      trainees,
		AuditFields:   m.AuditFields.toDomain(),
	}
}
