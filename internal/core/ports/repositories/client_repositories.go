package repositories

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by id. Returns apperrors.ErrNotFound when absent.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients ordered by name.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	// DeleteClient removes the client only; documents referencing it are left as they are.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
