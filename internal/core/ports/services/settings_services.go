package services

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// SettingsSvcFacade manages the company settings singleton.
type SettingsSvcFacade interface {
	// GetSettings returns the settings, writing the defaults first if none exist yet.
	GetSettings(ctx context.Context) (*domain.CompanySettings, error)

	// UpdateSettings merges the provided fields into the stored settings.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.CompanySettings, error)
}
