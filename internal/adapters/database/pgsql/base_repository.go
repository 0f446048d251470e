package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
)

// Postgres error codes mapped onto application errors.
const (
	pgUniqueViolation    = "23505"
	pgInsufficientAccess = "42501"
)

// Table names, also used as collection names in store errors.
const (
	tableClients        = "clients"
	tableTrainings      = "trainings"
	tableQuotes         = "quotes"
	tableInvoices       = "invoices"
	tableSessions       = "sessions"
	tableCertifications = "certifications"
	tableSettings       = "company_settings"
	tableSequences      = "document_sequences"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// storeError translates a driver error raised on table into an application error.
func storeError(table string, err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, action, pgErr.ConstraintName)
		case pgInsufficientAccess:
			return apperrors.NewCollectionError(table, fmt.Errorf("%w: %s", apperrors.ErrPermission, action))
		}
	}
	return apperrors.NewCollectionError(table, fmt.Errorf("%s: %w", action, err))
}

// notFoundOr maps pgx.ErrNoRows to apperrors.ErrNotFound.
func notFoundOr(table string, err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, action)
	}
	return storeError(table, err, action)
}

// requireRow reports ErrNotFound when an update or delete matched nothing.
func requireRow(tag pgconn.CommandTag, action string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, action)
	}
	return nil
}
