package services

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// CatalogReaderSvc defines read operations for the training catalog
type CatalogReaderSvc interface {
	GetTrainingByID(ctx context.Context, trainingID string) (*domain.TrainingModule, error)
	ListTrainings(ctx context.Context) ([]domain.TrainingModule, error)
	// FindTrainingByTitle matches titles exactly.
	FindTrainingByTitle(ctx context.Context, title string) (*domain.TrainingModule, error)
}

// CatalogWriterSvc defines write operations for the training catalog
type CatalogWriterSvc interface {
	CreateTraining(ctx context.Context, req dto.CreateTrainingRequest) (*domain.TrainingModule, error)
	UpdateTraining(ctx context.Context, trainingID string, req dto.UpdateTrainingRequest) (*domain.TrainingModule, error)
	DeleteTraining(ctx context.Context, trainingID string) error
}

// CatalogSvcFacade combines all catalog service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
