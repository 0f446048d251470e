package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/oris_formation_app/internal/adapters/database/memory"
	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	repos portsrepo.RepositoryProvider
	ctx   context.Context
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.repos = memory.NewRepositoryProvider(memory.NewStore())
	s.ctx = context.Background()
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(v string) *string { return &v }

func invoice(id, number string, on time.Time) domain.Invoice {
	return domain.Invoice{
		InvoiceID: id,
		Number:    number,
		Type:      domain.TypeInvoice,
		ClientID:  "c1",
		Date:      on,
		DueDate:   on.AddDate(0, 0, 30),
		Status:    domain.InvoicePending,
		Items: []domain.QuoteLine{
			{LineID: "l1", Description: "Formation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100), VATRate: 20},
		},
	}
}

func creditNoteOf(id, number string, original domain.Invoice) domain.Invoice {
	cn := invoice(id, number, original.Date)
	cn.Type = domain.TypeCreditNote
	cn.Status = domain.InvoicePaid
	cn.OriginalInvoiceID = strPtr(original.InvoiceID)
	cn.OriginalInvoiceNumber = strPtr(original.Number)
	return cn
}

func (s *MemoryStoreTestSuite) TestClientNotFound() {
	_, err := s.repos.ClientRepo.FindClientByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.repos.ClientRepo.DeleteClient(s.ctx, "missing"), apperrors.ErrNotFound)
	s.ErrorIs(s.repos.ClientRepo.UpdateClient(s.ctx, domain.Client{ClientID: "missing"}), apperrors.ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestClientsSortedByName() {
	s.Require().NoError(s.repos.ClientRepo.SaveClient(s.ctx, domain.Client{ClientID: "b", Name: "Zeta"}))
	s.Require().NoError(s.repos.ClientRepo.SaveClient(s.ctx, domain.Client{ClientID: "a", Name: "Alpha"}))

	clients, err := s.repos.ClientRepo.ListClients(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(clients, 2)
	s.Equal("Alpha", clients[0].Name)
}

func (s *MemoryStoreTestSuite) TestFindTrainingByTitleExactMatch() {
	s.Require().NoError(s.repos.TrainingRepo.SaveTraining(s.ctx, domain.TrainingModule{TrainingID: "t1", Reference: "HAB-01", Title: "Habilitation B0"}))

	found, err := s.repos.TrainingRepo.FindTrainingByTitle(s.ctx, "Habilitation B0")
	s.Require().NoError(err)
	s.Equal("t1", found.TrainingID)

	_, err = s.repos.TrainingRepo.FindTrainingByTitle(s.ctx, "habilitation b0")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestQuoteNumberIsUnique() {
	q := domain.Quote{QuoteID: "q1", Number: "DEV-2024-001", Date: date(2024, 1, 1), Status: domain.QuoteSent}
	s.Require().NoError(s.repos.QuoteRepo.SaveQuote(s.ctx, q))

	q.QuoteID = "q2"
	s.ErrorIs(s.repos.QuoteRepo.SaveQuote(s.ctx, q), apperrors.ErrDuplicate)
}

func (s *MemoryStoreTestSuite) TestQuotesListedMostRecentFirst() {
	s.Require().NoError(s.repos.QuoteRepo.SaveQuote(s.ctx, domain.Quote{QuoteID: "q1", Number: "DEV-2024-001", Date: date(2024, 1, 1)}))
	s.Require().NoError(s.repos.QuoteRepo.SaveQuote(s.ctx, domain.Quote{QuoteID: "q2", Number: "DEV-2024-002", Date: date(2024, 3, 1)}))

	quotes, err := s.repos.QuoteRepo.ListQuotes(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"q2", "q1"}, []string{quotes[0].QuoteID, quotes[1].QuoteID})
}

func (s *MemoryStoreTestSuite) TestStoredLinesAreNotAliased() {
	inv := invoice("i1", "FAC-2024-001", date(2024, 2, 1))
	s.Require().NoError(s.repos.InvoiceRepo.SaveInvoice(s.ctx, inv))
	inv.Items[0].Description = "changed"

	stored, err := s.repos.InvoiceRepo.FindInvoiceByID(s.ctx, "i1")
	s.Require().NoError(err)
	s.Equal("Formation", stored.Items[0].Description)
}

func (s *MemoryStoreTestSuite) TestOneInvoicePerQuote() {
	first := invoice("i1", "FAC-2024-001", date(2024, 2, 1))
	first.QuoteID = strPtr("q1")
	s.Require().NoError(s.repos.InvoiceRepo.SaveInvoice(s.ctx, first))

	second := invoice("i2", "FAC-2024-002", date(2024, 2, 1))
	second.QuoteID = strPtr("q1")
	s.ErrorIs(s.repos.InvoiceRepo.SaveInvoice(s.ctx, second), apperrors.ErrDuplicate)

	// a credit note carries the quote id of its original
	cn := creditNoteOf("a1", "AVR-2024-001", first)
	cn.QuoteID = strPtr("q1")
	s.NoError(s.repos.InvoiceRepo.SaveInvoice(s.ctx, cn))

	found, err := s.repos.InvoiceRepo.FindInvoiceForQuote(s.ctx, "q1")
	s.Require().NoError(err)
	s.Equal("i1", found.InvoiceID)

	_, err = s.repos.InvoiceRepo.FindInvoiceForQuote(s.ctx, "q2")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestConcurrentCreditNotesOnlyOneWins() {
	original := invoice("i1", "FAC-2024-001", date(2024, 2, 1))
	s.Require().NoError(s.repos.InvoiceRepo.SaveInvoice(s.ctx, original))

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cn := creditNoteOf(string(rune('a'+i)), "AVR-2024-00"+string(rune('1'+i)), original)
			errs <- s.repos.InvoiceRepo.SaveInvoice(s.ctx, cn)
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrDuplicate)
	}
	s.Equal(1, succeeded)

	found, err := s.repos.InvoiceRepo.FindCreditNoteFor(s.ctx, "i1")
	s.Require().NoError(err)
	s.Equal(domain.TypeCreditNote, found.Type)
}

func (s *MemoryStoreTestSuite) TestStatusUpdateOnMissingInvoice() {
	err := s.repos.InvoiceRepo.UpdateInvoiceStatus(s.ctx, "missing", domain.InvoicePaid, time.Now())
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestSequencesArePerPrefixAndYear() {
	next := func(prefix string, year int) int64 {
		v, err := s.repos.SequenceRepo.NextSequence(s.ctx, prefix, year)
		s.Require().NoError(err)
		return v
	}
	s.Equal(int64(1), next("DEV", 2024))
	s.Equal(int64(2), next("DEV", 2024))
	s.Equal(int64(1), next("DEV", 2025))
	s.Equal(int64(1), next("FAC", 2024))
}

func (s *MemoryStoreTestSuite) TestSessionRosterRoundTrip() {
	session := domain.Session{
		SessionID: "s1", TrainingID: "t1", ClientID: "c1",
		StartDate: date(2024, 6, 3), EndDate: date(2024, 6, 5),
		Trainer: "J. Martin", Location: "Lyon",
		Trainees: []domain.Trainee{{TraineeID: "tr1", Name: "Paul"}},
	}
	s.Require().NoError(s.repos.SessionRepo.SaveSession(s.ctx, session))

	session.Trainees = append(session.Trainees, domain.Trainee{TraineeID: "tr2", Name: "Léa"})
	s.Require().NoError(s.repos.SessionRepo.UpdateSession(s.ctx, session))

	stored, err := s.repos.SessionRepo.FindSessionByID(s.ctx, "s1")
	s.Require().NoError(err)
	s.Len(stored.Trainees, 2)
}

func (s *MemoryStoreTestSuite) TestSettingsAbsentUntilSaved() {
	_, err := s.repos.SettingsRepo.FindSettings(s.ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.repos.SettingsRepo.SaveSettings(s.ctx, domain.CompanySettings{Name: "ORIS FORMATION"}))
	settings, err := s.repos.SettingsRepo.FindSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal("ORIS FORMATION", settings.Name)
}

func demoData() domain.DemoData {
	quotes := []domain.Quote{{QuoteID: "q1", Number: "DEV-2024-042", Date: date(2024, 5, 1)}}
	invoices := []domain.Invoice{invoice("i1", "FAC-2024-002", date(2024, 4, 1))}
	return domain.DemoData{
		Clients:        []domain.Client{{ClientID: "c1", Name: "Enedis"}},
		Quotes:         quotes,
		Invoices:       invoices,
		Certifications: []domain.Certification{{CertificationID: "cert1", TraineeName: "Paul"}},
		Settings:       domain.CompanySettings{Name: "ORIS FORMATION"},
		Sequences:      domain.SequenceFloors(quotes, invoices),
	}
}

func (s *MemoryStoreTestSuite) TestSeedRaisesCounters() {
	s.Require().NoError(s.repos.SeedRepo.SeedDemoData(s.ctx, demoData()))

	next, err := s.repos.SequenceRepo.NextSequence(s.ctx, "DEV", 2024)
	s.Require().NoError(err)
	s.Equal(int64(43), next)

	clients, err := s.repos.ClientRepo.ListClients(s.ctx)
	s.Require().NoError(err)
	s.Len(clients, 1)
}

func (s *MemoryStoreTestSuite) TestSeedIsAllOrNothing() {
	s.Require().NoError(s.repos.QuoteRepo.SaveQuote(s.ctx, domain.Quote{QuoteID: "other", Number: "DEV-2024-042"}))

	err := s.repos.SeedRepo.SeedDemoData(s.ctx, demoData())
	s.ErrorIs(err, apperrors.ErrDuplicate)

	clients, err := s.repos.ClientRepo.ListClients(s.ctx)
	s.Require().NoError(err)
	s.Empty(clients)
	_, err = s.repos.SettingsRepo.FindSettings(s.ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSeedNeverLowersCounters(t *testing.T) {
	repos := memory.NewRepositoryProvider(memory.NewStore())
	ctx := context.Background()
	for i := 0; i < 50; i++ {
		_, err := repos.SequenceRepo.NextSequence(ctx, "DEV", 2024)
		require.NoError(t, err)
	}

	require.NoError(t, repos.SeedRepo.SeedDemoData(ctx, domain.DemoData{
		Sequences: []domain.SequenceFloor{{Prefix: "DEV", Year: 2024, Value: 42}},
	}))

	next, err := repos.SequenceRepo.NextSequence(ctx, "DEV", 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(51), next)
}
