package domain

import "github.com/shopspring/decimal"

// TrainingCategory groups catalog entries.
type TrainingCategory string

const (
	CategoryHabilitation TrainingCategory = "HABILITATION"
	CategoryTST          TrainingCategory = "TST"
	CategoryReseaux      TrainingCategory = "RESEAUX"
	CategoryInstallation TrainingCategory = "INSTALLATION"
)

var categoryLabels = map[TrainingCategory]string{
	CategoryHabilitation: "Habilitation Électrique",
	CategoryTST:          "Travaux Sous Tension",
	CategoryReseaux:      "Réseaux (BT/HTA)",
	CategoryInstallation: "Installations",
}

// IsValid reports whether c is a known category.
func (c TrainingCategory) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the printable name of the category.
func (c TrainingCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// TrainingModule is an entry of the training catalog.
type TrainingModule struct {
	TrainingID   string           `json:"id"`
	Reference    string           `json:"reference"` // e.g. HAB-B2V
	Title        string           `json:"title"`
	Category     TrainingCategory `json:"category"`
	DurationDays int              `json:"durationDays"`
	PriceHT      decimal.Decimal  `json:"priceHt"`
	Description  string           `json:"description"`
	AuditFields
}
