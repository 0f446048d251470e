package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type seedService struct {
	BaseService
	seedRepo portsrepo.SeedRepository
}

// NewSeedService creates the service that loads the demo data set.
func NewSeedService(seedRepo portsrepo.SeedRepository, options ...Option) portssvc.SeedService {
	svc := &seedService{seedRepo: seedRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.SeedService = (*seedService)(nil)

// Seed writes the demo clients, catalog, documents, sessions and certifications in a
// single batch. Nothing is written if the batch fails.
func (s *seedService) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	data := buildDemoData(s.Now())
	if err := s.seedRepo.SeedDemoData(ctx, data); err != nil {
		s.LogOutcome(ctx, err, "Failed to seed demo data")
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}
	resp := &dto.SeedResponse{
		Clients:        len(data.Clients),
		Trainings:      len(data.Trainings),
		Quotes:         len(data.Quotes),
		Invoices:       len(data.Invoices),
		Sessions:       len(data.Sessions),
		Certifications: len(data.Certifications),
	}
	s.LogInfo(ctx, "Demo data seeded",
		slog.Int("clients", resp.Clients),
		slog.Int("quotes", resp.Quotes),
		slog.Int("invoices", resp.Invoices))
	return resp, nil
}
