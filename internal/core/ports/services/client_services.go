package services

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// ClientReaderSvc defines read operations for clients
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for clients
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	// DeleteClient never cascades to quotes, invoices or sessions.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
