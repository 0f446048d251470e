package repositories

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// SettingsRepositoryFacade stores the company settings singleton.
type SettingsRepositoryFacade interface {
	// FindSettings returns apperrors.ErrNotFound until settings have been saved once.
	FindSettings(ctx context.Context) (*domain.CompanySettings, error)

	// SaveSettings creates or replaces the singleton.
	SaveSettings(ctx context.Context, settings domain.CompanySettings) error
}
