package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates the company settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, options ...Option) portssvc.SettingsSvcFacade {
	svc := &settingsService{settingsRepo: settingsRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogOutcome(ctx, err, "Failed to load company settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	defaults := domain.DefaultCompanySettings()
	defaults.AuditFields = auditNow(s.Now())
	if err := s.settingsRepo.SaveSettings(ctx, defaults); err != nil {
		s.LogOutcome(ctx, err, "Failed to initialise company settings")
		return nil, fmt.Errorf("failed to initialise settings: %w", err)
	}
	s.LogInfo(ctx, "Company settings initialised with defaults")
	return &defaults, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.CompanySettings, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: company name cannot be empty", apperrors.ErrValidation)
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.Merge(req.ToPatch())
	settings.LastUpdatedAt = s.Now()

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogOutcome(ctx, err, "Failed to save company settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
