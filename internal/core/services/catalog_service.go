package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type catalogService struct {
	BaseService
	trainingRepo portsrepo.TrainingRepositoryFacade
}

// NewCatalogService creates a new training catalog service.
func NewCatalogService(trainingRepo portsrepo.TrainingRepositoryFacade, options ...Option) portssvc.CatalogSvcFacade {
	svc := &catalogService{trainingRepo: trainingRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func trainingFromRequest(req dto.CreateTrainingRequest) (domain.TrainingModule, error) {
	category := domain.TrainingCategory(req.Category)
	switch {
	case strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Reference) == "":
		return domain.TrainingModule{}, fmt.Errorf("%w: reference and title are required", apperrors.ErrValidation)
	case !category.IsValid():
		return domain.TrainingModule{}, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	case req.DurationDays < 0 || req.PriceHT.IsNegative():
		return domain.TrainingModule{}, fmt.Errorf("%w: duration and price must not be negative", apperrors.ErrValidation)
	}
	return domain.TrainingModule{
		Reference:    req.Reference,
		Title:        req.Title,
		Category:     category,
		DurationDays: req.DurationDays,
		PriceHT:      req.PriceHT,
		Description:  req.Description,
	}, nil
}

func (s *catalogService) CreateTraining(ctx context.Context, req dto.CreateTrainingRequest) (*domain.TrainingModule, error) {
	training, err := trainingFromRequest(req)
	if err != nil {
		return nil, err
	}
	training.TrainingID = uuid.NewString()
	training.AuditFields = auditNow(s.Now())

	if err := s.trainingRepo.SaveTraining(ctx, training); err != nil {
		s.LogOutcome(ctx, err, "Failed to save training", slog.String("reference", training.Reference))
		return nil, fmt.Errorf("failed to create training: %w", err)
	}
	return &training, nil
}

func (s *catalogService) GetTrainingByID(ctx context.Context, trainingID string) (*domain.TrainingModule, error) {
	training, err := s.trainingRepo.FindTrainingByID(ctx, trainingID)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to get training", slog.String("training_id", trainingID))
		return nil, fmt.Errorf("failed to get training %s: %w", trainingID, err)
	}
	return training, nil
}

func (s *catalogService) FindTrainingByTitle(ctx context.Context, title string) (*domain.TrainingModule, error) {
	training, err := s.trainingRepo.FindTrainingByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to find training titled %q: %w", title, err)
	}
	return training, nil
}

func (s *catalogService) ListTrainings(ctx context.Context) ([]domain.TrainingModule, error) {
	trainings, err := s.trainingRepo.ListTrainings(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to list trainings")
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	if trainings == nil {
		return []domain.TrainingModule{}, nil
	}
	return trainings, nil
}

func (s *catalogService) UpdateTraining(ctx context.Context, trainingID string, req dto.UpdateTrainingRequest) (*domain.TrainingModule, error) {
	existing, err := s.GetTrainingByID(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	updated, err := trainingFromRequest(dto.CreateTrainingRequest(req))
	if err != nil {
		return nil, err
	}
	updated.TrainingID = existing.TrainingID
	updated.CreatedAt = existing.CreatedAt
	updated.LastUpdatedAt = s.Now()

	if err := s.trainingRepo.UpdateTraining(ctx, updated); err != nil {
		s.LogOutcome(ctx, err, "Failed to update training", slog.String("training_id", trainingID))
		return nil, fmt.Errorf("failed to update training %s: %w", trainingID, err)
	}
	return &updated, nil
}

func (s *catalogService) DeleteTraining(ctx context.Context, trainingID string) error {
	if err := s.trainingRepo.DeleteTraining(ctx, trainingID); err != nil {
		s.LogOutcome(ctx, err, "Failed to delete training", slog.String("training_id", trainingID))
		return fmt.Errorf("failed to delete training %s: %w", trainingID, err)
	}
	return nil
}
