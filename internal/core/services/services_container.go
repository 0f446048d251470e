package services

import (
	"github.com/SscSPs/oris_formation_app/internal/core/ports/renderers"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer renderers.DocumentRenderer, options ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo, options...)
	container.Catalog = NewCatalogService(repos.TrainingRepo, options...)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.SequenceRepo, cfg.InvoiceDueDays, options...)
	container.Quote = NewQuoteService(
		repos.QuoteRepo,
		repos.InvoiceRepo,
		repos.SequenceRepo,
		WithQuoteValidityDays(cfg.QuoteValidityDays),
		WithQuoteInvoiceDueDays(cfg.InvoiceDueDays),
		WithQuoteBaseOptions(options...),
	)
	// Drafts are saved through the quote service so numbering stays in one place.
	container.QuoteDraft = NewQuoteDraftService(repos.TrainingRepo, container.Quote, cfg.QuoteValidityDays, options...)
	container.Session = NewSessionService(repos.SessionRepo, options...)
	container.Settings = NewSettingsService(repos.SettingsRepo, options...)
	container.Certification = NewCertificationService(repos.CertificationRepo, options...)
	container.Dashboard = NewDashboardService(repos, cfg.CertAlertDays, options...)
	container.Document = NewDocumentService(repos, container.Settings, renderer, cfg.AttendanceMinRows, options...)
	container.Seed = NewSeedService(repos.SeedRepo, options...)

	return container
}
