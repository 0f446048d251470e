package renderers

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/documents"
)

// DocumentRenderer turns laid-out documents into printable A4 PDF files.
// Implementations report failures wrapped in apperrors.ErrRender.
type DocumentRenderer interface {
	RenderBilling(ctx context.Context, sheet documents.BillingSheet) ([]byte, error)
	RenderAttendance(ctx context.Context, sheet documents.AttendanceSheet) ([]byte, error)
	RenderCertificates(ctx context.Context, set documents.CertificateSet) ([]byte, error)
}
