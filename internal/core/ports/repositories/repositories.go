package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo        ClientRepositoryFacade
	TrainingRepo      TrainingRepositoryFacade
	QuoteRepo         QuoteRepositoryFacade
	InvoiceRepo       InvoiceRepositoryFacade
	SessionRepo       SessionRepositoryFacade
	SettingsRepo      SettingsRepositoryFacade
	CertificationRepo CertificationRepositoryFacade
	SequenceRepo      SequenceRepository
	SeedRepo          SeedRepository
}
