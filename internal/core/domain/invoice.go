package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
)

// InvoiceType distinguishes invoices from credit notes.
type InvoiceType string

const (
	TypeInvoice    InvoiceType = "INVOICE"
	TypeCreditNote InvoiceType = "CREDIT_NOTE"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoicePending:   {InvoicePaid, InvoiceOverdue, InvoiceCancelled},
	InvoiceOverdue:   {InvoicePaid, InvoiceCancelled, InvoicePending},
	InvoicePaid:      {},
	InvoiceCancelled: {},
}

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	_, ok := invoiceTransitions[s]
	return ok
}

// CanTransitionTo reports whether an invoice in state s may move to next.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if s == next {
		return next.IsValid()
	}
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Invoice is either an invoice or a credit note reversing one.
type Invoice struct {
	InvoiceID             string        `json:"id"`
	Number                string        `json:"number"` // FAC-2024-001 or AVR-2024-001
	Type                  InvoiceType   `json:"type"`
	QuoteID               *string       `json:"quoteId,omitempty"`
	OriginalInvoiceID     *string       `json:"originalInvoiceId,omitempty"`
	OriginalInvoiceNumber *string       `json:"originalInvoiceNumber,omitempty"`
	ClientID              string        `json:"clientId"`
	Date                  time.Time     `json:"date"`
	DueDate               time.Time     `json:"dueDate"`
	Status                InvoiceStatus `json:"status"`
	Items                 []QuoteLine   `json:"items"`
	Totals
	AuditFields
}

// IsCreditNote reports whether inv reverses another invoice.
func (inv Invoice) IsCreditNote() bool {
	return inv.Type == TypeCreditNote
}

// Transition moves the invoice to next, enforcing the transition table.
// Credit notes are settled on creation and never change state.
func (inv *Invoice) Transition(next InvoiceStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, next)
	}
	if inv.IsCreditNote() && next != inv.Status {
		return fmt.Errorf("%w: credit note %s is immutable", apperrors.ErrInvalidTransition, inv.Number)
	}
	if !inv.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: invoice %s cannot go from %s to %s", apperrors.ErrInvalidTransition, inv.Number, inv.Status, next)
	}
	inv.Status = next
	return nil
}

// NewInvoiceFromQuote builds the pending invoice issued for an accepted quote.
// Line items are copied, never shared.
func NewInvoiceFromQuote(q Quote, invoiceID string, date time.Time, dueDays int) Invoice {
	quoteID := q.QuoteID
	date = Day(date)
	return Invoice{
		InvoiceID: invoiceID,
		Number:    DeriveNumber(q.Number, PrefixQuote, PrefixInvoice),
		Type:      TypeInvoice,
		QuoteID:   &quoteID,
		ClientID:  q.ClientID,
		Date:      date,
		DueDate:   date.AddDate(0, 0, dueDays),
		Status:    InvoicePending,
		Items:     CloneLines(q.Items),
		Totals:    q.Totals,
	}
}

// NewCreditNote clones original into a settled credit note dated today.
// Totals are carried over as stored on the original.
func NewCreditNote(original Invoice, creditNoteID string, today time.Time) (Invoice, error) {
	if original.IsCreditNote() {
		return Invoice{}, fmt.Errorf("%w: %s is already a credit note", apperrors.ErrValidation, original.Number)
	}
	originalID := original.InvoiceID
	originalNumber := original.Number

	cn := original
	cn.InvoiceID = creditNoteID
	cn.Number = DeriveNumber(original.Number, PrefixInvoice, PrefixCreditNote)
	cn.Type = TypeCreditNote
	cn.OriginalInvoiceID = &originalID
	cn.OriginalInvoiceNumber = &originalNumber
	cn.Date = Day(today)
	cn.Status = InvoicePaid
	cn.Items = CloneLines(original.Items)
	cn.AuditFields = AuditFields{}
	if original.QuoteID != nil {
		quoteID := *original.QuoteID
		cn.QuoteID = &quoteID
	}
	return cn, nil
}
