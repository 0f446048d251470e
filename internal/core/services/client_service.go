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

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, options ...Option) portssvc.ClientSvcFacade {
	svc := &clientService{clientRepo: clientRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func clientFromRequest(req dto.CreateClientRequest) (domain.Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Client{}, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}
	status := domain.ClientStatus(req.Status)
	if status == "" {
		status = domain.ClientProspect
	}
	if !status.IsValid() {
		return domain.Client{}, fmt.Errorf("%w: unknown client status %q", apperrors.ErrValidation, req.Status)
	}
	return domain.Client{
		Name:        strings.TrimSpace(req.Name),
		Siret:       req.Siret,
		VATNumber:   req.VATNumber,
		Address:     req.Address,
		City:        req.City,
		Zip:         req.Zip,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      status,
	}, nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client, err := clientFromRequest(req)
	if err != nil {
		return nil, err
	}
	client.ClientID = uuid.NewString()
	client.AuditFields = auditNow(s.Now())

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogOutcome(ctx, err, "Failed to save client", slog.String("name", client.Name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to get client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	existing, err := s.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	updated, err := clientFromRequest(dto.CreateClientRequest(req))
	if err != nil {
		return nil, err
	}
	updated.ClientID = existing.ClientID
	updated.CreatedAt = existing.CreatedAt
	updated.LastUpdatedAt = s.Now()

	if err := s.clientRepo.UpdateClient(ctx, updated); err != nil {
		s.LogOutcome(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}
	return &updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogOutcome(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
