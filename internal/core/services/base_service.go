package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	"github.com/SscSPs/oris_formation_app/internal/middleware"
	"github.com/SscSPs/oris_formation_app/internal/platform/metrics"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// BaseService provides common functionality for all services
type BaseService struct {
	clock Clock
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock()
}

// Today returns the current calendar day.
func (s *BaseService) Today() time.Time {
	return domain.Day(s.Now())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogOutcome logs expected failures (validation, not found, duplicates) at warn level
// and everything else at error level.
func (s *BaseService) LogOutcome(ctx context.Context, err error, msg string, keyvals ...any) {
	if isExpected(err) {
		args := make([]any, 0, len(keyvals)+1)
		args = append(args, slog.String("error", err.Error()))
		args = append(args, keyvals...)
		s.GetLogger(ctx).Warn(msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
	if collection, ok := apperrors.CollectionOf(err); ok && errors.Is(err, apperrors.ErrPermission) {
		metrics.StoreErrors.WithLabelValues(collection, "permission").Inc()
	}
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrInvalidTransition)
}

// nextNumber draws the next document number for prefix in the year of date.
func nextNumber(ctx context.Context, seqRepo portsrepo.SequenceRepository, prefix string, date time.Time) (string, error) {
	year := date.Year()
	seq, err := seqRepo.NextSequence(ctx, prefix, year)
	if err != nil {
		return "", fmt.Errorf("failed to draw %s number for %d: %w", prefix, year, err)
	}
	return domain.FormatNumber(prefix, year, seq), nil
}

// parseOptionalDay parses a YYYY-MM-DD field, returning fallback when s is empty.
func parseOptionalDay(field, s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := domain.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	return d, nil
}

func auditNow(now time.Time) domain.AuditFields {
	return domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
}
