package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	"github.com/SscSPs/oris_formation_app/internal/models"
)

const quoteColumns = `quote_id, number, client_id, date, valid_until, status, items, notes, total_ht, total_vat, total_ttc, created_at, last_updated_at`

type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

func scanQuote(row pgx.Row) (models.Quote, error) {
	var m models.Quote
	err := row.Scan(
		&m.QuoteID,
		&m.Number,
		&m.ClientID,
		&m.Date,
		&m.ValidUntil,
		&m.Status,
		&m.Items,
		&m.Notes,
		&m.TotalHT,
		&m.TotalVAT,
		&m.TotalTTC,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func quoteArgs(m models.Quote) []any {
	items := m.Items
	if items == nil {
		items = []models.LineItem{}
	}
	return []any{
		m.QuoteID, m.Number, m.ClientID, m.Date, m.ValidUntil, m.Status, items, m.Notes,
		m.TotalHT, m.TotalVAT, m.TotalTTC, m.CreatedAt, m.LastUpdatedAt,
	}
}

const insertQuoteSQL = `INSERT INTO quotes (` + quoteColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	if _, err := r.Pool.Exec(ctx, insertQuoteSQL, quoteArgs(models.ToModelQuote(quote))...); err != nil {
		return storeError(tableQuotes, err, fmt.Sprintf("failed to save quote %s", quote.Number))
	}
	return nil
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_id = $1`
	m, err := scanQuote(r.Pool.QueryRow(ctx, query, quoteID))
	if err != nil {
		return nil, notFoundOr(tableQuotes, err, fmt.Sprintf("quote %s", quoteID))
	}
	quote := m.ToDomain()
	return &quote, nil
}

func (r *PgxQuoteRepository) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+quoteColumns+` FROM quotes ORDER BY date DESC, number DESC`)
	if err != nil {
		return nil, storeError(tableQuotes, err, "failed to query quotes")
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Quote, error) {
		return scanQuote(row)
	})
	if err != nil {
		return nil, storeError(tableQuotes, err, "failed to scan quotes")
	}
	quotes := make([]domain.Quote, len(ms))
	for i, m := range ms {
		quotes[i] = m.ToDomain()
	}
	return quotes, nil
}

func (r *PgxQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedAt time.Time) error {
	query := `UPDATE quotes SET status = $2, last_updated_at = $3 WHERE quote_id = $1`
	tag, err := r.Pool.Exec(ctx, query, quoteID, string(status), updatedAt)
	if err != nil {
		return storeError(tableQuotes, err, fmt.Sprintf("failed to update status of quote %s", quoteID))
	}
	return requireRow(tag, fmt.Sprintf("quote %s", quoteID))
}

func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM quotes WHERE quote_id = $1`, quoteID)
	if err != nil {
		return storeError(tableQuotes, err, fmt.Sprintf("failed to delete quote %s", quoteID))
	}
	return requireRow(tag, fmt.Sprintf("quote %s", quoteID))
}
