package repositories

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// TrainingReader defines read operations for the training catalog
type TrainingReader interface {
	FindTrainingByID(ctx context.Context, trainingID string) (*domain.TrainingModule, error)

	// FindTrainingByTitle returns the catalog entry whose title matches exactly.
	// Returns apperrors.ErrNotFound when no entry matches.
	FindTrainingByTitle(ctx context.Context, title string) (*domain.TrainingModule, error)

	// ListTrainings retrieves the catalog ordered by reference.
	ListTrainings(ctx context.Context) ([]domain.TrainingModule, error)
}

// TrainingWriter defines write operations for the training catalog
type TrainingWriter interface {
	SaveTraining(ctx context.Context, training domain.TrainingModule) error
	UpdateTraining(ctx context.Context, training domain.TrainingModule) error
	DeleteTraining(ctx context.Context, trainingID string) error
}

// TrainingRepositoryFacade combines all catalog repository interfaces
type TrainingRepositoryFacade interface {
	TrainingReader
	TrainingWriter
}
