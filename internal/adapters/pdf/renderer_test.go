package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/documents"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func demoInvoice() domain.Invoice {
	items := []domain.QuoteLine{{
		LineID: "l1", Description: "Habilitation électrique B1V - BR",
		Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(450), VATRate: 20,
	}}
	return domain.Invoice{
		InvoiceID: "i1", Number: "FAC-2024-001", Type: domain.TypeInvoice,
		ClientID: "c1", Date: day(2024, 3, 1), DueDate: day(2024, 3, 31),
		Status: domain.InvoicePending, Items: items, Totals: domain.ComputeTotals(items),
	}
}

func demoSession() (domain.Session, domain.TrainingModule) {
	return domain.Session{
			SessionID: "s1", TrainingID: "t1", ClientID: "c1",
			StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 12),
			Trainer: "Marc Dubois", Location: "Lyon",
			Trainees: []domain.Trainee{{TraineeID: "tr1", Name: "Paul Martin"}, {TraineeID: "tr2", Name: "Léa Bernard"}},
		}, domain.TrainingModule{
			TrainingID: "t1", Reference: "HAB-BR", Title: "Habilitation électrique B1V - BR", DurationDays: 3,
		}
}

func isPDF(t *testing.T, content []byte) {
	t.Helper()
	require.NotEmpty(t, content)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "output is not a PDF")
}

func TestRenderBillingInvoiceAndCreditNote(t *testing.T) {
	r := NewMarotoRenderer()
	company := domain.DefaultCompanySettings()
	client := &domain.Client{ClientID: "c1", Name: "Enedis", City: "Lyon", Zip: "69003"}

	content, err := r.RenderBilling(context.Background(), documents.InvoiceSheet(demoInvoice(), client, company))
	require.NoError(t, err)
	isPDF(t, content)

	original := demoInvoice()
	cn, err := domain.NewCreditNote(original, "a1", day(2024, 4, 1))
	require.NoError(t, err)
	cn.Number = "AVR-2024-001"
	content, err = r.RenderBilling(context.Background(), documents.InvoiceSheet(cn, nil, company))
	require.NoError(t, err)
	isPDF(t, content)
}

func TestRenderQuoteWithLogo(t *testing.T) {
	company := domain.DefaultCompanySettings()
	company.LogoURL = "data:image/png;base64," + onePixelPNG
	inv := demoInvoice()
	q := domain.Quote{
		QuoteID: "q1", Number: "DEV-2024-042", Date: inv.Date, ValidUntil: inv.DueDate,
		Status: domain.QuoteSent, Items: inv.Items, Totals: inv.Totals, Notes: "Repas non compris",
	}

	content, err := NewMarotoRenderer().RenderBilling(context.Background(), documents.QuoteSheet(q, nil, company))
	require.NoError(t, err)
	isPDF(t, content)
}

func TestRenderAttendance(t *testing.T) {
	session, training := demoSession()
	sheet := documents.NewAttendanceSheet(session, training, nil, domain.DefaultCompanySettings(), documents.MinAttendanceRows)

	content, err := NewMarotoRenderer().RenderAttendance(context.Background(), sheet)
	require.NoError(t, err)
	isPDF(t, content)
}

func TestRenderCertificates(t *testing.T) {
	session, training := demoSession()
	company := domain.DefaultCompanySettings()

	content, err := NewMarotoRenderer().RenderCertificates(context.Background(), documents.NewCertificateSet(session, training, nil, company))
	require.NoError(t, err)
	isPDF(t, content)

	session.Trainees = nil
	content, err = NewMarotoRenderer().RenderCertificates(context.Background(), documents.NewCertificateSet(session, training, nil, company))
	require.NoError(t, err)
	isPDF(t, content)
}

func TestRenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarotoRenderer().RenderBilling(ctx, documents.InvoiceSheet(demoInvoice(), nil, domain.DefaultCompanySettings()))
	assert.ErrorIs(t, err, apperrors.ErrRender)
}

// 1x1 RGB PNG.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAIAAACQd1PeAAAADElEQVR4nGOQc1gPAAGNAQ4n8/9dAAAAAElFTkSuQmCC"

func TestDecodeLogo(t *testing.T) {
	jpeg := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00})

	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantExt extension.Type
	}{
		{name: "empty", input: "", wantOK: false},
		{name: "png data url", input: "data:image/png;base64," + onePixelPNG, wantOK: true, wantExt: extension.Png},
		{name: "bare base64 png", input: onePixelPNG, wantOK: true, wantExt: extension.Png},
		{name: "jpeg", input: jpeg, wantOK: true, wantExt: extension.Jpg},
		{name: "not base64", input: "data:image/png;base64,%%%", wantOK: false},
		{name: "data url without payload", input: "data:image/png", wantOK: false},
		{name: "unsupported image", input: base64.StdEncoding.EncodeToString([]byte("GIF89a")), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, ext, ok := decodeLogo(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.NotEmpty(t, raw)
				assert.Equal(t, tt.wantExt, ext)
			}
		})
	}
}
