package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
)

// DefaultCertificationAlertDays is how far ahead certification expiries are flagged.
const DefaultCertificationAlertDays = 90

type dashboardService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
	quoteRepo   portsrepo.QuoteReader
	sessionRepo portsrepo.SessionReader
	certRepo    portsrepo.CertificationRepositoryFacade
	alertDays   int
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(repos portsrepo.RepositoryProvider, alertDays int, options ...Option) portssvc.DashboardService {
	svc := &dashboardService{
		invoiceRepo: repos.InvoiceRepo,
		quoteRepo:   repos.QuoteRepo,
		sessionRepo: repos.SessionRepo,
		certRepo:    repos.CertificationRepo,
		alertDays:   alertDays,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, today time.Time) (*domain.Dashboard, error) {
	if today.IsZero() {
		today = s.Today()
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Dashboard: failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	quotes, err := s.quoteRepo.ListQuotes(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Dashboard: failed to list quotes")
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Dashboard: failed to list sessions")
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	certs, err := s.certRepo.ListCertifications(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Dashboard: failed to list certifications")
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}

	pendingQuotes := 0
	for _, q := range quotes {
		if q.Status == domain.QuoteSent {
			pendingQuotes++
		}
	}

	return &domain.Dashboard{
		RevenueSummary:      domain.SummarizeRevenue(invoices, today.Year()),
		PendingQuotes:       pendingQuotes,
		PlannedSessions:     len(sessions),
		CertificationAlerts: domain.ExpiringCertifications(certs, today, s.alertDays),
	}, nil
}
