package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// Totals are the stored amount columns of quotes and invoices.
type Totals struct {
	TotalHT  decimal.Decimal `db:"total_ht"`
	TotalVAT decimal.Decimal `db:"total_vat"`
	TotalTTC decimal.Decimal `db:"total_ttc"`
}

func toModelTotals(t domain.Totals) Totals {
	return Totals{TotalHT: t.TotalHT, TotalVAT: t.TotalVAT, TotalTTC: t.TotalTTC}
}

func (t Totals) toDomain() domain.Totals {
	return domain.Totals{TotalHT: t.TotalHT, TotalVAT: t.TotalVAT, TotalTTC: t.TotalTTC}
}

// Quote is a row of the quotes table. Items are stored as JSONB.
type Quote struct {
	QuoteID    string     `db:"quote_id"`
	Number     string     `db:"number"`
	ClientID   string     `db:"client_id"`
	Date       time.Time  `db:"date"`
	ValidUntil time.Time  `db:"valid_until"`
	Status     string     `db:"status"`
	Items      []LineItem `db:"items"`
	Notes      string     `db:"notes"`
	Totals
	AuditFields
}

func ToModelQuote(q domain.Quote) Quote {
	return Quote{
		QuoteID:     q.QuoteID,
		Number:      q.Number,
		ClientID:    q.ClientID,
		Date:        q.Date,
		ValidUntil:  q.ValidUntil,
		Status:      string(q.Status),
		Items:       ToModelLines(q.Items),
		Notes:       q.Notes,
		Totals:      toModelTotals(q.Totals),
		AuditFields: toModelAudit(q.AuditFields),
	}
}

func (m Quote) ToDomain() domain.Quote {
	return domain.Quote{
		QuoteID:     m.QuoteID,
		Number:      m.Number,
		ClientID:    m.ClientID,
		Date:        domain.Day(m.Date),
		ValidUntil:  domain.Day(m.ValidUntil),
		Status:      domain.QuoteStatus(m.Status),
		Items:       ToDomainLines(m.Items),
		Notes:       m.Notes,
		Totals:      m.Totals.toDomain(),
		AuditFields: m.AuditFields.toDomain(),
	}
}

// Invoice is a row of the invoices table, shared by invoices and credit notes.
type Invoice struct {
	InvoiceID             string     `db:"invoice_id"`
	Number                string     `db:"number"`
	Type                  string     `db:"type"`
	QuoteID               *string    `db:"quote_id"`
	OriginalInvoiceID     *string    `db:"original_invoice_id"`
	OriginalInvoiceNumber *string    `db:"original_invoice_number"`
	ClientID              string     `db:"client_id"`
	Date                  time.Time  `db:"date"`
	DueDate               time.Time  `db:"due_date"`
	Status                string     `db:"status"`
	Items                 []LineItem `db:"items"`
	Totals
	AuditFields
}

func ToModelInvoice(inv domain.Invoice) Invoice {
	return Invoice{
		InvoiceID:             inv.InvoiceID,
		Number:                inv.Number,
		Type:                  string(inv.Type),
		QuoteID:               inv.QuoteID,
		OriginalInvoiceID:     inv.OriginalInvoiceID,
		OriginalInvoiceNumber: inv.OriginalInvoiceNumber,
		ClientID:              inv.ClientID,
		Date:                  inv.Date,
		DueDate:               inv.DueDate,
		Status:                string(inv.Status),
		Items:                 ToModelLines(inv.Items),
		Totals:                toModelTotals(inv.Totals),
		AuditFields:           toModelAudit(inv.AuditFields),
	}
}

func (m Invoice) ToDomain() domain.Invoice {
	return domain.Invoice{
		InvoiceID:             m.InvoiceID,
		Number:                m.Number,
		Type:                  domain.InvoiceType(m.Type),
		QuoteID:               m.QuoteID,
		OriginalInvoiceID:     m.OriginalInvoiceID,
		OriginalInvoiceNumber: m.OriginalInvoiceNumber,
		ClientID:              m.ClientID,
		Date:                  domain.Day(m.Date),
		DueDate:               domain.Day(m.DueDate),
		Status:                domain.InvoiceStatus(m.Status),
		Items:                 ToDomainLines(m.Items),
		Totals:                m.Totals.toDomain(),
		AuditFields:           m.AuditFields.toDomain(),
	}
}
