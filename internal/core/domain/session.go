package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
)

// MaxSessionDays bounds the span of a session, both ends included.
const MaxSessionDays = 366

// Trainee is a person enrolled in a session.
type Trainee struct {
	TraineeID string `json:"id"`
	Name      string `json:"name"`
}

// Session is a scheduled delivery of a training module for a client.
type Session struct {
	SessionID     string    `json:"id"`
	TrainingID    string    `json:"trainingId"`
	ClientID      string    `json:"clientId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Trainer       string    `json:"trainer"`
	Location      string    `json:"location"`
	TraineesCount int       `json:"traineesCount"`
	Trainees      []Trainee `json:"trainees"`
	AuditFields
}

// Validate checks the fields every stored session must carry.
func (s Session) Validate() error {
	var missing []string
	if strings.TrimSpace(s.TrainingID) == "" {
		missing = append(missing, "trainingId")
	}
	if strings.TrimSpace(s.ClientID) == "" {
		missing = append(missing, "clientId")
	}
	if s.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if s.EndDate.IsZero() {
		missing = append(missing, "endDate")
	}
	if strings.TrimSpace(s.Trainer) == "" {
		missing = append(missing, "trainer")
	}
	if strings.TrimSpace(s.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	if Day(s.EndDate).Before(Day(s.StartDate)) {
		return fmt.Errorf("%w: endDate is before startDate", apperrors.ErrValidation)
	}
	if Day(s.EndDate).After(Day(s.StartDate).AddDate(0, 0, MaxSessionDays-1)) {
		return fmt.Errorf("%w: a session cannot span more than %d days", apperrors.ErrValidation, MaxSessionDays)
	}
	if s.TraineesCount < 0 {
		return fmt.Errorf("%w: traineesCount cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// AddTrainee appends a trainee to the roster. The planned count is left alone.
func (s *Session) AddTrainee(t Trainee) {
	s.Trainees = append(s.Trainees, t)
}

// RemoveTrainee drops the trainee with the given id, keeping roster order.
// It reports whether a trainee was removed.
func (s *Session) RemoveTrainee(traineeID string) bool {
	for i, t := range s.Trainees {
		if t.TraineeID == traineeID {
			roster := make([]Trainee, 0, len(s.Trainees)-1)
			roster = append(roster, s.Trainees[:i]...)
			s.Trainees = append(roster, s.Trainees[i+1:]...)
			return true
		}
	}
	return false
}

// SessionDays lists every calendar day from start to end, both included.
// An end before start yields no days.
func SessionDays(start, end time.Time) []time.Time {
	first, last := Day(start), Day(end)
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
