package models

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// Training is a row of the trainings table.
type Training struct {
	TrainingID   string          `db:"training_id"`
	Reference    string          `db:"reference"`
	Title        string          `db:"title"`
	Category     string          `db:"category"`
	DurationDays int             `db:"duration_days"`
	PriceHT      decimal.Decimal `db:"price_ht"`
	Description  string          `db:"description"`
	AuditFields
}

func ToModelTraining(t domain.TrainingModule) Training {
	return Training{
		TrainingID:   t.TrainingID,
		Reference:    t.Reference,
		Title:        t.Title,
		Category:     string(t.Category),
		DurationDays: t.DurationDays,
		PriceHT:      t.PriceHT,
		Description:  t.Description,
		AuditFields:  toModelAudit(t.AuditFields),
	}
}

func (m Training) ToDomain() domain.TrainingModule {
	return domain.TrainingModule{
		TrainingID:   m.TrainingID,
		Reference:    m.Reference,
		Title:        m.Title,
		Category:     domain.TrainingCategory(m.Category),
		DurationDays: m.DurationDays,
		PriceHT:      m.PriceHT,
		Description:  m.Description,
		AuditFields:  m.AuditFields.toDomain(),
	}
}
