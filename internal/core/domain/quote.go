package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft QuoteStatus = "DRAFT"
	QuoteSent        QuoteStatus = "SENT"
	QuoteAccepted    QuoteStatus = "ACCEPTED"
	QuoteRejected    QuoteStatus = "REJECTED"
	QuoteExpired     QuoteStatus = "EXPIRED"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft: {QuoteSent},
	QuoteSent:        {QuoteAccepted, QuoteRejected, QuoteExpired},
	QuoteAccepted:    {},
	QuoteRejected:    {},
	QuoteExpired:     {},
}

// IsValid reports whether s is a known quote status.
func (s QuoteStatus) IsValid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

// CanTransitionTo reports whether a quote in state s may move to next.
// Staying in the same state is always allowed.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	if s == next {
		return next.IsValid()
	}
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Quote is a priced offer sent to a client.
type Quote struct {
	QuoteID    string      `json:"id"`
	Number     string      `json:"number"` // e.g. DEV-2024-001
	ClientID   string      `json:"clientId"`
	Date       time.Time   `json:"date"`
	ValidUntil time.Time   `json:"validUntil"`
	Status     QuoteStatus `json:"status"`
	Items      []QuoteLine `json:"items"`
	Notes      string      `json:"notes"`
	Totals
	AuditFields
}

// Transition moves the quote to next, enforcing the transition table.
func (q *Quote) Transition(next QuoteStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown quote status %q", apperrors.ErrValidation, next)
	}
	if !q.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: quote %s cannot go from %s to %s", apperrors.ErrInvalidTransition, q.Number, q.Status, next)
	}
	q.Status = next
	return nil
}

// CanConvert reports whether the quote may be turned into an invoice.
func (q Quote) CanConvert() bool {
	return q.Status == QuoteSent || q.Status == QuoteAccepted
}

// QuoteDraft is a quote being edited before it is saved. Its totals are
// recomputed from the lines every time they change.
type QuoteDraft struct {
	DraftID    string      `json:"id"`
	ClientID   string      `json:"clientId"`
	Date       time.Time   `json:"date"`
	ValidUntil time.Time   `json:"validUntil"`
	Notes      string      `json:"notes"`
	Items      []QuoteLine `json:"items"`
	Totals
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Recompute refreshes the draft totals from its lines.
func (d *QuoteDraft) Recompute() {
	d.Totals = ComputeTotals(d.Items)
}

// LineIndex returns the position of the line with the given id, or -1.
func (d *QuoteDraft) LineIndex(lineID string) int {
	for i, l := range d.Items {
		if l.LineID == lineID {
			return i
		}
	}
	return -1
}
