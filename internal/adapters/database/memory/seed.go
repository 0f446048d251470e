package memory

import (
	"context"
	"maps"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type SeedRepository struct {
	store *Store
}

var _ portsrepo.SeedRepository = (*SeedRepository)(nil)

// SeedDemoData builds the next state on copies and swaps it in under the
// store lock. On any conflict the store is left unchanged.
func (r *SeedRepository) SeedDemoData(_ context.Context, data domain.DemoData) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := maps.Clone(s.clients)
	for _, c := range data.Clients {
		if _, exists := clients[c.ClientID]; exists {
			return duplicate("client %s", c.ClientID)
		}
		clients[c.ClientID] = c
	}
	trainings := maps.Clone(s.trainings)
	for _, t := range data.Trainings {
		if _, exists := trainings[t.TrainingID]; exists {
			return duplicate("training %s", t.TrainingID)
		}
		trainings[t.TrainingID] = t
	}
	quotes := maps.Clone(s.quotes)
	for _, q := range data.Quotes {
		if err := checkQuoteUnique(quotes, q); err != nil {
			return err
		}
		quotes[q.QuoteID] = cloneQuote(q)
	}
	invoices := maps.Clone(s.invoices)
	for _, inv := range data.Invoices {
		if err := checkInvoiceUnique(invoices, inv); err != nil {
			return err
		}
		invoices[inv.InvoiceID] = cloneInvoice(inv)
	}
	sessions := maps.Clone(s.sessions)
	for _, session := range data.Sessions {
		if _, exists := sessions[session.SessionID]; exists {
			return duplicate("session %s", session.SessionID)
		}
		sessions[session.SessionID] = cloneSession(session)
	}
	certifications := maps.Clone(s.certifications)
	for _, c := range data.Certifications {
		if _, exists := certifications[c.CertificationID]; exists {
			return duplicate("certification %s", c.CertificationID)
		}
		certifications[c.CertificationID] = c
	}
	sequences := maps.Clone(s.sequences)
	for _, f := range data.Sequences {
		key := sequenceKey{prefix: f.Prefix, year: f.Year}
		if f.Value > sequences[key] {
			sequences[key] = f.Value
		}
	}

	settings := data.Settings
	if s.settings != nil {
		settings.CreatedAt = s.settings.CreatedAt
	}

	s.clients = clients
	s.trainings = trainings
	s.quotes = quotes
	s.invoices = invoices
	s.sessions = sessions
	s.certifications = certifications
	s.sequences = sequences
	s.settings = &settings
	return nil
}
