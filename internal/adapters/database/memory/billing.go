package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type QuoteRepository struct {
	store *Store
}

var _ portsrepo.QuoteRepositoryFacade = (*QuoteRepository)(nil)

func checkQuoteUnique(quotes map[string]domain.Quote, quote domain.Quote) error {
	if _, exists := quotes[quote.QuoteID]; exists {
		return duplicate("quote %s", quote.QuoteID)
	}
	for _, q := range quotes {
		if q.Number == quote.Number {
			return duplicate("quote number %s", quote.Number)
		}
	}
	return nil
}

func (r *QuoteRepository) SaveQuote(_ context.Context, quote domain.Quote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := checkQuoteUnique(r.store.quotes, quote); err != nil {
		return err
	}
	r.store.quotes[quote.QuoteID] = cloneQuote(quote)
	return nil
}

func (r *QuoteRepository) FindQuoteByID(_ context.Context, quoteID string) (*domain.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	q, ok := r.store.quotes[quoteID]
	if !ok {
		return nil, notFound("quote %s", quoteID)
	}
	quote := cloneQuote(q)
	return &quote, nil
}

func (r *QuoteRepository) ListQuotes(_ context.Context) ([]domain.Quote, error) {
	r.store.mu.RLock()
	quotes := make([]domain.Quote, 0, len(r.store.quotes))
	for _, q := range r.store.quotes {
		quotes = append(quotes, cloneQuote(q))
	}
	r.store.mu.RUnlock()

	sort.Slice(quotes, func(i, j int) bool {
		if !quotes[i].Date.Equal(quotes[j].Date) {
			return quotes[i].Date.After(quotes[j].Date)
		}
		return quotes[i].Number > quotes[j].Number
	})
	return quotes, nil
}

func (r *QuoteRepository) UpdateQuoteStatus(_ context.Context, quoteID string, status domain.QuoteStatus, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	q, ok := r.store.quotes[quoteID]
	if !ok {
		return notFound("quote %s", quoteID)
	}
	q.Status = status
	q.LastUpdatedAt = updatedAt
	r.store.quotes[quoteID] = q
	return nil
}

func (r *QuoteRepository) DeleteQuote(_ context.Context, quoteID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.quotes[quoteID]; !ok {
		return notFound("quote %s", quoteID)
	}
	delete(r.store.quotes, quoteID)
	return nil
}

type InvoiceRepository struct {
	store *Store
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// checkInvoiceUnique mirrors the unique constraints of the invoices table.
func checkInvoiceUnique(invoices map[string]domain.Invoice, invoice domain.Invoice) error {
	if _, exists := invoices[invoice.InvoiceID]; exists {
		return duplicate("invoice %s", invoice.InvoiceID)
	}
	for _, existing := range invoices {
		if existing.Number == invoice.Number {
			return duplicate("invoice number %s", invoice.Number)
		}
		if invoice.IsCreditNote() && existing.IsCreditNote() &&
			invoice.OriginalInvoiceID != nil && existing.OriginalInvoiceID != nil &&
			*invoice.OriginalInvoiceID == *existing.OriginalInvoiceID {
			return duplicate("credit note for invoice %s", *invoice.OriginalInvoiceID)
		}
		if !invoice.IsCreditNote() && !existing.IsCreditNote() &&
			invoice.QuoteID != nil && existing.QuoteID != nil &&
			*invoice.QuoteID == *existing.QuoteID {
			return duplicate("invoice for quote %s", *invoice.QuoteID)
		}
	}
	return nil
}

func (r *InvoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := checkInvoiceUnique(r.store.invoices, invoice); err != nil {
		return err
	}
	r.store.invoices[invoice.InvoiceID] = cloneInvoice(invoice)
	return nil
}

func (r *InvoiceRepository) find(match func(domain.Invoice) bool) (*domain.Invoice, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, inv := range r.store.invoices {
		if match(inv) {
			found := cloneInvoice(inv)
			return &found, true
		}
	}
	return nil, false
}

func (r *InvoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	inv, ok := r.store.invoices[invoiceID]
	if !ok {
		return nil, notFound("invoice %s", invoiceID)
	}
	found := cloneInvoice(inv)
	return &found, nil
}

func (r *InvoiceRepository) FindInvoiceByNumber(_ context.Context, number string) (*domain.Invoice, error) {
	inv, ok := r.find(func(inv domain.Invoice) bool { return inv.Number == number })
	if !ok {
		return nil, notFound("invoice number %s", number)
	}
	return inv, nil
}

func (r *InvoiceRepository) FindCreditNoteFor(_ context.Context, originalInvoiceID string) (*domain.Invoice, error) {
	inv, ok := r.find(func(inv domain.Invoice) bool {
		return inv.IsCreditNote() && inv.OriginalInvoiceID != nil && *inv.OriginalInvoiceID == originalInvoiceID
	})
	if !ok {
		return nil, notFound("credit note for invoice %s", originalInvoiceID)
	}
	return inv, nil
}

func (r *InvoiceRepository) FindInvoiceForQuote(_ context.Context, quoteID string) (*domain.Invoice, error) {
	inv, ok := r.find(func(inv domain.Invoice) bool {
		return inv.Type == domain.TypeInvoice && inv.QuoteID != nil && *inv.QuoteID == quoteID
	})
	if !ok {
		return nil, notFound("invoice for quote %s", quoteID)
	}
	return inv, nil
}

func (r *InvoiceRepository) ListInvoices(_ context.Context) ([]domain.Invoice, error) {
	r.store.mu.RLock()
	invoices := make([]domain.Invoice, 0, len(r.store.invoices))
	for _, inv := range r.store.invoices {
		invoices = append(invoices, cloneInvoice(inv))
	}
	r.store.mu.RUnlock()

	sort.Slice(invoices, func(i, j int) bool {
		if !invoices[i].Date.Equal(invoices[j].Date) {
			return invoices[i].Date.After(invoices[j].Date)
		}
		return invoices[i].Number > invoices[j].Number
	})
	return invoices, nil
}

func (r *InvoiceRepository) UpdateInvoiceStatus(_ context.Context, invoiceID string, status domain.InvoiceStatus, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inv, ok := r.store.invoices[invoiceID]
	if !ok {
		return notFound("invoice %s", invoiceID)
	}
	inv.Status = status
	inv.LastUpdatedAt = updatedAt
	r.store.invoices[invoiceID] = inv
	return nil
}
