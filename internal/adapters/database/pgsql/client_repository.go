package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	"github.com/SscSPs/oris_formation_app/internal/models"
)

const clientColumns = `client_id, name, siret, vat_number, address, city, zip, contact_name, email, phone, status, created_at, last_updated_at`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Siret,
		&m.VATNumber,
		&m.Address,
		&m.City,
		&m.Zip,
		&m.ContactName,
		&m.Email,
		&m.Phone,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func clientArgs(m models.Client) []any {
	return []any{
		m.ClientID, m.Name, m.Siret, m.VATNumber, m.Address, m.City, m.Zip,
		m.ContactName, m.Email, m.Phone, m.Status, m.CreatedAt, m.LastUpdatedAt,
	}
}

const insertClientSQL = `INSERT INTO clients (` + clientColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	if _, err := r.Pool.Exec(ctx, insertClientSQL, clientArgs(models.ToModelClient(client))...); err != nil {
		return storeError(tableClients, err, fmt.Sprintf("failed to save client %s", client.ClientID))
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		return nil, notFoundOr(tableClients, err, fmt.Sprintf("client %s", clientID))
	}
	client := m.ToDomain()
	return &client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name, client_id`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeError(tableClients, err, "failed to query clients")
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, storeError(tableClients, err, "failed to scan clients")
	}
	clients := make([]domain.Client, len(ms))
	for i, m := range ms {
		clients[i] = m.ToDomain()
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := models.ToModelClient(client)
	query := `
		UPDATE clients SET
			name = $2, siret = $3, vat_number = $4, address = $5, city = $6, zip = $7,
			contact_name = $8, email = $9, phone = $10, status = $11, last_updated_at = $12
		WHERE client_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.Name, m.Siret, m.VATNumber, m.Address, m.City, m.Zip,
		m.ContactName, m.Email, m.Phone, m.Status, m.LastUpdatedAt,
	)
	if err != nil {
		return storeError(tableClients, err, fmt.Sprintf("failed to update client %s", client.ClientID))
	}
	return requireRow(tag, fmt.Sprintf("client %s", client.ClientID))
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1`, clientID)
	if err != nil {
		return storeError(tableClients, err, fmt.Sprintf("failed to delete client %s", clientID))
	}
	return requireRow(tag, fmt.Sprintf("client %s", clientID))
}
