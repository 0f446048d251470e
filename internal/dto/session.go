package dto

import (
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// CreateSessionRequest defines the data needed to schedule a session.
type CreateSessionRequest struct {
	TrainingID    string   `json:"trainingId" binding:"required"`
	ClientID      string   `json:"clientId" binding:"required"`
	StartDate     string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       string   `json:"endDate" binding:"required,datetime=2006-01-02"`
	Trainer       string   `json:"trainer" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	TraineesCount int      `json:"traineesCount" binding:"gte=0"`
	Trainees      []string `json:"trainees"`
}

// UpdateSessionRequest replaces the scheduling fields of a session; the roster is kept.
type UpdateSessionRequest struct {
	TrainingID    string `json:"trainingId" binding:"required"`
	ClientID      string `json:"clientId" binding:"required"`
	StartDate     string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Trainer       string `json:"trainer" binding:"required"`
	Location      string `json:"location" binding:"required"`
	TraineesCount int    `json:"traineesCount" binding:"gte=0"`
}

// AddTraineeRequest enrols a trainee by name.
type AddTraineeRequest struct {
	Name string `json:"name" binding:"required"`
}

type TraineeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionResponse defines the data returned for a session.
type SessionResponse struct {
	ID            string            `json:"id"`
	TrainingID    string            `json:"trainingId"`
	ClientID      string            `json:"clientId"`
	StartDate     string            `json:"startDate"`
	EndDate       string            `json:"endDate"`
	Trainer       string            `json:"trainer"`
	Location      string            `json:"location"`
	TraineesCount int               `json:"traineesCount"`
	Trainees      []TraineeResponse `json:"trainees"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	trainees := make([]TraineeResponse, len(s.Trainees))
	for i, t := range s.Trainees {
		trainees[i] = TraineeResponse{ID: t.TraineeID, Name: t.Name}
	}
	return SessionResponse{
		ID:            s.SessionID,
		TrainingID:    s.TrainingID,
		ClientID:      s.ClientID,
		StartDate:     FormatDay(s.StartDate),
		EndDate:       FormatDay(s.EndDate),
		Trainer:       s.Trainer,
		Location:      s.Location,
		TraineesCount: s.TraineesCount,
		Trainees:      trainees,
	}
}

func ToListSessionResponse(sessions []domain.Session) []SessionResponse {
	res := make([]SessionResponse, len(sessions))
	for i := range sessions {
		res[i] = ToSessionResponse(&sessions[i])
	}
	return res
}
