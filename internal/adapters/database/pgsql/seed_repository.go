package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	"github.com/SscSPs/oris_formation_app/internal/models"
)

// seedCollection names seed failures the driver cannot tie to one table.
const seedCollection = "seed"

type PgxSeedRepository struct {
	BaseRepository
}

func newPgxSeedRepository(pool *pgxpool.Pool) portsrepo.SeedRepository {
	return &PgxSeedRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SeedRepository = (*PgxSeedRepository)(nil)

// SeedDemoData queues every insert in one batch inside a transaction. Any failing
// statement, a number already in use included, rolls the whole batch back.
func (r *PgxSeedRepository) SeedDemoData(ctx context.Context, data domain.DemoData) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return seedError(err, "failed to start seed transaction")
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			slog.Default().Error("seed rollback failed", "error", rbErr)
		}
	}()

	batch := &pgx.Batch{}
	for _, c := range data.Clients {
		batch.Queue(insertClientSQL, clientArgs(models.ToModelClient(c))...)
	}
	for _, t := range data.Trainings {
		batch.Queue(insertTrainingSQL, trainingArgs(models.ToModelTraining(t))...)
	}
	for _, q := range data.Quotes {
		batch.Queue(insertQuoteSQL, quoteArgs(models.ToModelQuote(q))...)
	}
	// Originals are queued before the credit notes that reference them.
	for _, inv := range data.Invoices {
		if inv.Type != domain.TypeCreditNote {
			batch.Queue(insertInvoiceSQL, invoiceArgs(models.ToModelInvoice(inv))...)
		}
	}
	for _, inv := range data.Invoices {
		if inv.Type == domain.TypeCreditNote {
			batch.Queue(insertInvoiceSQL, invoiceArgs(models.ToModelInvoice(inv))...)
		}
	}
	for _, s := range data.Sessions {
		batch.Queue(insertSessionSQL, sessionArgs(models.ToModelSession(s))...)
	}
	for _, c := range data.Certifications {
		batch.Queue(insertCertificationSQL, certificationArgs(models.ToModelCertification(c))...)
	}
	batch.Queue(upsertSettingsSQL, settingsArgs(models.ToModelSettings(data.Settings))...)
	for _, f := range data.Sequences {
		batch.Queue(raiseSequenceSQL, f.Prefix, f.Year, f.Value)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return seedError(err, fmt.Sprintf("failed to write demo batch of %d statements", batch.Len()))
	}
	if err := r.Commit(ctx, tx); err != nil {
		return seedError(err, "failed to commit demo data")
	}
	return nil
}

// seedError reports a seed failure against the table the server blamed, or
// against the seed as a whole when it named none.
func seedError(err error, action string) error {
	table := seedCollection
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.TableName != "" {
		table = pgErr.TableName
	}
	return storeError(table, err, action)
}
