package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// draftTTL is how long an untouched draft is kept.
const draftTTL = 24 * time.Hour

// Editable line fields.
const (
	LineFieldDescription = "description"
	LineFieldQuantity    = "quantity"
	LineFieldUnitPrice   = "unitPrice"
	LineFieldVATRate     = "vatRate"
)

type quoteDraftService struct {
	BaseService
	catalog      portsrepo.TrainingReader
	quotes       portssvc.QuoteWriterSvc
	validityDays int

	mu     sync.Mutex
	drafts map[string]domain.QuoteDraft
}

// NewQuoteDraftService creates the in-memory quote editor. Saved drafts go through quotes.
func NewQuoteDraftService(catalog portsrepo.TrainingReader, quotes portssvc.QuoteWriterSvc, validityDays int, options ...Option) portssvc.QuoteDraftSvcFacade {
	svc := &quoteDraftService{
		catalog:      catalog,
		quotes:       quotes,
		validityDays: validityDays,
		drafts:       make(map[string]domain.QuoteDraft),
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.QuoteDraftSvcFacade = (*quoteDraftService)(nil)

func (s *quoteDraftService) NewDraft(ctx context.Context, req dto.NewDraftRequest) (*domain.QuoteDraft, error) {
	date, err := parseOptionalDay("date", req.Date, s.Today())
	if err != nil {
		return nil, err
	}
	validUntil, err := parseOptionalDay("validUntil", req.ValidUntil, date.AddDate(0, 0, s.validityDays))
	if err != nil {
		return nil, err
	}
	draft := domain.QuoteDraft{
		DraftID:       uuid.NewString(),
		ClientID:      req.ClientID,
		Date:          date,
		ValidUntil:    validUntil,
		Notes:         req.Notes,
		Items:         []domain.QuoteLine{},
		LastUpdatedAt: s.Now(),
	}
	draft.Recompute()

	s.mu.Lock()
	s.pruneLocked()
	s.drafts[draft.DraftID] = draft
	s.mu.Unlock()

	s.LogDebug(ctx, "Quote draft opened", slog.String("draft_id", draft.DraftID))
	return &draft, nil
}

// pruneLocked drops drafts nobody touched for draftTTL. Callers hold s.mu.
func (s *quoteDraftService) pruneLocked() {
	cutoff := s.Now().Add(-draftTTL)
	for id, d := range s.drafts {
		if d.LastUpdatedAt.Before(cutoff) {
			delete(s.drafts, id)
		}
	}
}

func (s *quoteDraftService) load(draftID string) (domain.QuoteDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(draftID)
}

// loadLocked returns a copy of the draft whose items can be changed freely. Callers hold s.mu.
func (s *quoteDraftService) loadLocked(draftID string) (domain.QuoteDraft, error) {
	d, ok := s.drafts[draftID]
	if !ok {
		return domain.QuoteDraft{}, fmt.Errorf("%w: quote draft %s", apperrors.ErrNotFound, draftID)
	}
	d.Items = domain.CloneLines(d.Items)
	return d, nil
}

// edit applies change to the draft and stores the result, holding s.mu from
// read to write so concurrent edits of one draft all land. A failing change
// leaves the draft as it was.
func (s *quoteDraftService) edit(draftID string, change func(d *domain.QuoteDraft) error) (*domain.QuoteDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.loadLocked(draftID)
	if err != nil {
		return nil, err
	}
	if err := change(&d); err != nil {
		return nil, err
	}
	d.Recompute()
	d.LastUpdatedAt = s.Now()
	s.drafts[draftID] = d
	out := d
	out.Items = domain.CloneLines(d.Items)
	return &out, nil
}

func (s *quoteDraftService) GetDraft(ctx context.Context, draftID string) (*domain.QuoteDraft, error) {
	d, err := s.load(draftID)
	if err != nil {
		return nil, err
	}
	d.Recompute()
	return &d, nil
}

func (s *quoteDraftService) UpdateDraft(ctx context.Context, draftID string, req dto.UpdateDraftRequest) (*domain.QuoteDraft, error) {
	return s.edit(draftID, func(d *domain.QuoteDraft) error {
		var err error
		if req.ClientID != nil {
			d.ClientID = *req.ClientID
		}
		if req.Notes != nil {
			d.Notes = *req.Notes
		}
		if req.Date != nil {
			if d.Date, err = parseOptionalDay("date", *req.Date, d.Date); err != nil {
				return err
			}
		}
		if req.ValidUntil != nil {
			if d.ValidUntil, err = parseOptionalDay("validUntil", *req.ValidUntil, d.ValidUntil); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *quoteDraftService) AddLine(ctx context.Context, draftID string) (*domain.QuoteDraft, error) {
	return s.edit(draftID, func(d *domain.QuoteDraft) error {
		d.Items = append(d.Items, domain.QuoteLine{
			LineID:    uuid.NewString(),
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.Zero,
			VATRate:   domain.DefaultVATRate,
		})
		return nil
	})
}

func (s *quoteDraftService) UpdateLine(ctx context.Context, draftID, lineID string, req dto.UpdateLineRequest) (*domain.QuoteDraft, error) {
	// The catalog is read before the draft is locked.
	var training *domain.TrainingModule
	if req.Field == LineFieldDescription {
		found, err := s.catalog.FindTrainingByTitle(ctx, req.Value)
		switch {
		case err == nil:
			training = found
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogOutcome(ctx, err, "Catalog lookup failed", slog.String("draft_id", draftID))
			return nil, fmt.Errorf("failed to look up catalog: %w", err)
		}
	}

	return s.edit(draftID, func(d *domain.QuoteDraft) error {
		idx := d.LineIndex(lineID)
		if idx < 0 {
			return fmt.Errorf("%w: line %s in draft %s", apperrors.ErrNotFound, lineID, draftID)
		}
		line := &d.Items[idx]

		switch req.Field {
		case LineFieldDescription:
			line.Description = req.Value
			if training != nil {
				line.Description = training.Title
				line.UnitPrice = training.PriceHT
				s.LogDebug(ctx, "Line priced from catalog", slog.String("training_id", training.TrainingID))
			}
		case LineFieldQuantity:
			q, err := decimal.NewFromString(strings.TrimSpace(req.Value))
			if err != nil || q.IsNegative() {
				return fmt.Errorf("%w: quantity must be a non-negative number", apperrors.ErrValidation)
			}
			line.Quantity = q
		case LineFieldUnitPrice:
			p, err := decimal.NewFromString(strings.TrimSpace(req.Value))
			if err != nil {
				return fmt.Errorf("%w: unit price must be a number", apperrors.ErrValidation)
			}
			line.UnitPrice = p
		case LineFieldVATRate:
			rate, err := strconv.Atoi(strings.TrimSpace(req.Value))
			if err != nil || !domain.IsAllowedVATRate(rate) {
				return fmt.Errorf("%w: vat rate must be 0, 10 or 20", apperrors.ErrValidation)
			}
			line.VATRate = rate
		default:
			return fmt.Errorf("%w: unknown line field %q", apperrors.ErrValidation, req.Field)
		}
		return nil
	})
}

func (s *quoteDraftService) RemoveLine(ctx context.Context, draftID, lineID string) (*domain.QuoteDraft, error) {
	return s.edit(draftID, func(d *domain.QuoteDraft) error {
		idx := d.LineIndex(lineID)
		if idx < 0 {
			return fmt.Errorf("%w: line %s in draft %s", apperrors.ErrNotFound, lineID, draftID)
		}
		d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
		return nil
	})
}

// SaveDraft takes the draft out of the editor before saving it, so a second
// save of the same draft finds nothing. The draft is put back if the save fails.
func (s *quoteDraftService) SaveDraft(ctx context.Context, draftID string) (*domain.Quote, error) {
	s.mu.Lock()
	d, err := s.loadLocked(draftID)
	if err == nil {
		delete(s.drafts, draftID)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LineRequest, len(d.Items))
	for i, l := range d.Items {
		items[i] = dto.LineRequest{
			ID:          l.LineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
		}
	}
	quote, err := s.quotes.SaveQuote(ctx, dto.SaveQuoteRequest{
		ClientID:   d.ClientID,
		Date:       dto.FormatDay(d.Date),
		ValidUntil: dto.FormatDay(d.ValidUntil),
		Notes:      d.Notes,
		Items:      items,
	})
	if err != nil {
		s.mu.Lock()
		if _, taken := s.drafts[draftID]; !taken {
			s.drafts[draftID] = d
		}
		s.mu.Unlock()
		return nil, err
	}
	return quote, nil
}

func (s *quoteDraftService) DiscardDraft(ctx context.Context, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[draftID]; !ok {
		return fmt.Errorf("%w: quote draft %s", apperrors.ErrNotFound, draftID)
	}
	delete(s.drafts, draftID)
	return nil
}
