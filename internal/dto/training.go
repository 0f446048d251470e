package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// CreateTrainingRequest defines the data needed to add a module to the catalog.
type CreateTrainingRequest struct {
	Reference    string          `json:"reference" binding:"required"`
	Title        string          `json:"title" binding:"required"`
	Category     string          `json:"category" binding:"required,trainingcategory"`
	DurationDays int             `json:"durationDays" binding:"gte=0"`
	PriceHT      decimal.Decimal `json:"priceHt"`
	Description  string          `json:"description"`
}

// UpdateTrainingRequest replaces every editable field of a catalog entry.
type UpdateTrainingRequest CreateTrainingRequest

// TrainingResponse defines the data returned for a catalog entry.
type TrainingResponse struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"categoryLabel"`
	DurationDays  int             `json:"durationDays"`
	PriceHT       decimal.Decimal `json:"priceHt"`
	Description   string          `json:"description"`
}

func ToTrainingResponse(t *domain.TrainingModule) TrainingResponse {
	return TrainingResponse{
		ID:            t.TrainingID,
		Reference:     t.Reference,
		Title:         t.Title,
		Category:      string(t.Category),
		CategoryLabel: t.Category.Label(),
		DurationDays:  t.DurationDays,
		PriceHT:       t.PriceHT,
		Description:   t.Description,
	}
}

func ToListTrainingResponse(trainings []domain.TrainingModule) []TrainingResponse {
	res := make([]TrainingResponse, len(trainings))
	for i := range trainings {
		res[i] = ToTrainingResponse(&trainings[i])
	}
	return res
}
