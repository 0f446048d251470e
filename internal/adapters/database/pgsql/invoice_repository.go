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

const invoiceColumns = `invoice_id, number, type, quote_id, original_invoice_id, original_invoice_number, client_id, date, due_date, status, items, total_ht, total_vat, total_ttc, created_at, last_updated_at`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.Number,
		&m.Type,
		&m.QuoteID,
		&m.OriginalInvoiceID,
		&m.OriginalInvoiceNumber,
		&m.ClientID,
		&m.Date,
		&m.DueDate,
		&m.Status,
		&m.Items,
		&m.TotalHT,
		&m.TotalVAT,
		&m.TotalTTC,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func invoiceArgs(m models.Invoice) []any {
	items := m.Items
	if items == nil {
		items = []models.LineItem{}
	}
	return []any{
		m.InvoiceID, m.Number, m.Type, m.QuoteID, m.OriginalInvoiceID, m.OriginalInvoiceNumber,
		m.ClientID, m.Date, m.DueDate, m.Status, items, m.TotalHT, m.TotalVAT, m.TotalTTC,
		m.CreatedAt, m.LastUpdatedAt,
	}
}

const insertInvoiceSQL = `INSERT INTO invoices (` + invoiceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

// SaveInvoice relies on the unique constraints of the invoices table, so a
// concurrent second credit note or second invoice for a quote fails as a duplicate.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	if _, err := r.Pool.Exec(ctx, insertInvoiceSQL, invoiceArgs(models.ToModelInvoice(invoice))...); err != nil {
		return storeError(tableInvoices, err, fmt.Sprintf("failed to save invoice %s", invoice.Number))
	}
	return nil
}

func (r *PgxInvoiceRepository) findOne(ctx context.Context, where string, arg any, what string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE ` + where
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, notFoundOr(tableInvoices, err, what)
	}
	invoice := m.ToDomain()
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.findOne(ctx, "invoice_id = $1", invoiceID, fmt.Sprintf("invoice %s", invoiceID))
}

func (r *PgxInvoiceRepository) FindInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	return r.findOne(ctx, "number = $1", number, fmt.Sprintf("invoice number %s", number))
}

func (r *PgxInvoiceRepository) FindCreditNoteFor(ctx context.Context, originalInvoiceID string) (*domain.Invoice, error) {
	return r.findOne(ctx, "original_invoice_id = $1 AND type = 'CREDIT_NOTE'", originalInvoiceID,
		fmt.Sprintf("credit note for invoice %s", originalInvoiceID))
}

func (r *PgxInvoiceRepository) FindInvoiceForQuote(ctx context.Context, quoteID string) (*domain.Invoice, error) {
	return r.findOne(ctx, "quote_id = $1 AND type = 'INVOICE'", quoteID, fmt.Sprintf("invoice for quote %s", quoteID))
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY date DESC, number DESC`)
	if err != nil {
		return nil, storeError(tableInvoices, err, "failed to query invoices")
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, storeError(tableInvoices, err, "failed to scan invoices")
	}
	invoices := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		invoices[i] = m.ToDomain()
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedAt time.Time) error {
	query := `UPDATE invoices SET status = $2, last_updated_at = $3 WHERE invoice_id = $1`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, string(status), updatedAt)
	if err != nil {
		return storeError(tableInvoices, err, fmt.Sprintf("failed to update status of invoice %s", invoiceID))
	}
	return requireRow(tag, fmt.Sprintf("invoice %s", invoiceID))
}
