package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

func TestQuoteStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to domain.QuoteStatus
		ok       bool
	}{
		{domain.QuoteStatusDraft, domain.QuoteSent, true},
		{domain.QuoteSent, domain.QuoteAccepted, true},
		{domain.QuoteSent, domain.QuoteRejected, true},
		{domain.QuoteSent, domain.QuoteExpired, true},
		{domain.QuoteAccepted, domain.QuoteAccepted, true},
		{domain.QuoteAccepted, domain.QuoteRejected, false},
		{domain.QuoteRejected, domain.QuoteSent, false},
		{domain.QuoteStatusDraft, domain.QuoteAccepted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			q := domain.Quote{Number: "DEV-2024-001", Status: tt.from}
			err := q.Transition(tt.to)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, q.Status)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
				assert.Equal(t, tt.from, q.Status)
			}
		})
	}

	q := domain.Quote{Status: domain.QuoteSent}
	assert.True(t, errors.Is(q.Transition("Envoyé"), apperrors.ErrValidation))
}

func TestInvoiceStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to domain.InvoiceStatus
		ok       bool
	}{
		{domain.InvoicePending, domain.InvoicePaid, true},
		{domain.InvoicePending, domain.InvoiceOverdue, true},
		{domain.InvoicePending, domain.InvoiceCancelled, true},
		{domain.InvoiceOverdue, domain.InvoicePaid, true},
		{domain.InvoiceOverdue, domain.InvoicePending, true},
		{domain.InvoicePaid, domain.InvoicePending, false},
		{domain.InvoiceCancelled, domain.InvoicePaid, false},
		{domain.InvoicePaid, domain.InvoicePaid, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			inv := domain.Invoice{Type: domain.TypeInvoice, Status: tt.from}
			err := inv.Transition(tt.to)
			if tt.ok {
				require.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
			}
		})
	}
}

func TestInvoice_CreditNoteIsImmutable(t *testing.T) {
	cn := domain.Invoice{Type: domain.TypeCreditNote, Status: domain.InvoicePaid}
	assert.True(t, errors.Is(cn.Transition(domain.InvoiceCancelled), apperrors.ErrInvalidTransition))
	assert.NoError(t, cn.Transition(domain.InvoicePaid))
}

func sampleQuote() domain.Quote {
	lines := []domain.QuoteLine{
		{LineID: "l1", Description: "Habilitation B1V", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(450), VATRate: 20},
		{LineID: "l2", Description: "Frais", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("80.5"), VATRate: 10},
	}
	return domain.Quote{
		QuoteID:  "q1",
		Number:   "DEV-2024-001",
		ClientID: "c1",
		Date:     time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Status:   domain.QuoteAccepted,
		Items:    lines,
		Totals:   domain.ComputeTotals(lines),
	}
}

func TestNewInvoiceFromQuote(t *testing.T) {
	q := sampleQuote()
	issued := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	inv := domain.NewInvoiceFromQuote(q, "i1", issued, 30)

	assert.Equal(t, "FAC-2024-001", inv.Number)
	assert.Equal(t, domain.TypeInvoice, inv.Type)
	assert.Equal(t, domain.InvoicePending, inv.Status)
	require.NotNil(t, inv.QuoteID)
	assert.Equal(t, "q1", *inv.QuoteID)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), inv.Date)
	assert.Equal(t, inv.Date.AddDate(0, 0, 30), inv.DueDate)
	assert.Equal(t, q.Items, inv.Items)
	assert.Equal(t, q.Totals, inv.Totals)

	inv.Items[0].Description = "edited"
	assert.Equal(t, "Habilitation B1V", q.Items[0].Description)
}

func TestNewCreditNote(t *testing.T) {
	q := sampleQuote()
	original := domain.NewInvoiceFromQuote(q, "i1", q.Date, 30)
	original.Status = domain.InvoicePending
	today := time.Date(2024, 7, 3, 10, 0, 0, 0, time.UTC)

	cn, err := domain.NewCreditNote(original, "cn1", today)
	require.NoError(t, err)

	assert.Equal(t, "cn1", cn.InvoiceID)
	assert.Equal(t, "AVR-2024-001", cn.Number)
	assert.Equal(t, domain.TypeCreditNote, cn.Type)
	assert.Equal(t, domain.InvoicePaid, cn.Status)
	require.NotNil(t, cn.OriginalInvoiceID)
	assert.Equal(t, "i1", *cn.OriginalInvoiceID)
	require.NotNil(t, cn.OriginalInvoiceNumber)
	assert.Equal(t, "FAC-2024-001", *cn.OriginalInvoiceNumber)
	assert.Equal(t, domain.Day(today), cn.Date)
	assert.Equal(t, original.Totals, cn.Totals)

	assert.Equal(t, domain.InvoicePending, original.Status)
	assert.Equal(t, "FAC-2024-001", original.Number)

	_, err = domain.NewCreditNote(cn, "cn2", today)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestNewCreditNote_NumberWithoutPrefix(t *testing.T) {
	cn, err := domain.NewCreditNote(domain.Invoice{InvoiceID: "x", Number: "X-007", Type: domain.TypeInvoice}, "cn", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "X-007-AVR", cn.Number)
}
