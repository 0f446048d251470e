package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

func TestSessionDays_Inclusive(t *testing.T) {
	start, _ := domain.ParseDay("2024-06-10")
	end, _ := domain.ParseDay("2024-06-12")

	days := domain.SessionDays(start, end)

	if assert.Len(t, days, 3) {
		assert.Equal(t, 10, days[0].Day())
		assert.Equal(t, 11, days[1].Day())
		assert.Equal(t, 12, days[2].Day())
	}
}

func TestSessionDays_EdgeCases(t *testing.T) {
	d := time.Date(2024, 2, 28, 17, 0, 0, 0, time.UTC)
	assert.Len(t, domain.SessionDays(d, d), 1)
	assert.Len(t, domain.SessionDays(d, d.AddDate(0, 0, 2)), 3, "crosses the leap day")
	assert.Empty(t, domain.SessionDays(d, d.AddDate(0, 0, -1)))
}

func TestSession_AddThenRemoveTraineeRestoresRoster(t *testing.T) {
	s := domain.Session{
		TraineesCount: 4,
		Trainees:      []domain.Trainee{{TraineeID: "t1", Name: "Jean Dupont"}, {TraineeID: "t2", Name: "Marie Curie"}},
	}
	before := append([]domain.Trainee(nil), s.Trainees...)

	s.AddTrainee(domain.Trainee{TraineeID: "t3", Name: "Paul Martin"})
	assert.Len(t, s.Trainees, 3)
	assert.True(t, s.RemoveTrainee("t3"))

	assert.Equal(t, before, s.Trainees)
	assert.Equal(t, 4, s.TraineesCount)
	assert.False(t, s.RemoveTrainee("missing"))
}

func TestSession_Validate(t *testing.T) {
	start, _ := domain.ParseDay("2024-06-10")
	valid := domain.Session{TrainingID: "t1", ClientID: "c1", StartDate: start, EndDate: start, Trainer: "Marc", Location: "Lyon"}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.Trainer = " "
	assert.True(t, errors.Is(missing.Validate(), apperrors.ErrValidation))

	backwards := valid
	backwards.EndDate = start.AddDate(0, 0, -1)
	assert.True(t, errors.Is(backwards.Validate(), apperrors.ErrValidation))
}

func TestSession_ValidateCapsSpan(t *testing.T) {
	start, _ := domain.ParseDay("2024-01-01")
	s := domain.Session{TrainingID: "t1", ClientID: "c1", StartDate: start, Trainer: "Marc", Location: "Lyon"}

	s.EndDate = start.AddDate(0, 0, domain.MaxSessionDays-1)
	assert.NoError(t, s.Validate())
	assert.Len(t, domain.SessionDays(s.StartDate, s.EndDate), domain.MaxSessionDays)

	s.EndDate = start.AddDate(0, 0, domain.MaxSessionDays)
	assert.True(t, errors.Is(s.Validate(), apperrors.ErrValidation))

	s.EndDate = start.AddDate(1000, 0, 0)
	assert.True(t, errors.Is(s.Validate(), apperrors.ErrValidation))
}
