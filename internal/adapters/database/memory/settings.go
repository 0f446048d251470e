package memory

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type SettingsRepository struct {
	store *Store
}

var _ portsrepo.SettingsRepositoryFacade = (*SettingsRepository)(nil)

func (r *SettingsRepository) FindSettings(_ context.Context) (*domain.CompanySettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.settings == nil {
		return nil, notFound("company settings")
	}
	settings := *r.store.settings
	return &settings, nil
}

func (r *SettingsRepository) SaveSettings(_ context.Context, settings domain.CompanySettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.settings != nil {
		settings.CreatedAt = r.store.settings.CreatedAt
	}
	r.store.settings = &settings
	return nil
}

type SequenceRepository struct {
	store *Store
}

var _ portsrepo.SequenceRepository = (*SequenceRepository)(nil)

func (r *SequenceRepository) NextSequence(_ context.Context, prefix string, year int) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := sequenceKey{prefix: prefix, year: year}
	r.store.sequences[key]++
	return r.store.sequences[key], nil
}
