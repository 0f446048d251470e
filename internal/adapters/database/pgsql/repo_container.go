package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:        newPgxClientRepository(dbPool),
		TrainingRepo:      newPgxTrainingRepository(dbPool),
		QuoteRepo:         newPgxQuoteRepository(dbPool),
		InvoiceRepo:       newPgxInvoiceRepository(dbPool),
		SessionRepo:       newPgxSessionRepository(dbPool),
		SettingsRepo:      newPgxSettingsRepository(dbPool),
		CertificationRepo: newPgxCertificationRepository(dbPool),
		SequenceRepo:      newPgxSequenceRepository(dbPool),
		SeedRepo:          newPgxSeedRepository(dbPool),
	}
}
