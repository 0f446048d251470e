package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
)

func TestSeedError_NamesFailingTable(t *testing.T) {
	denied := fmt.Errorf("batch: %w", &pgconn.PgError{Code: pgInsufficientAccess, TableName: tableSessions})

	err := seedError(denied, "failed to write demo batch")

	assert.True(t, errors.Is(err, apperrors.ErrPermission))
	collection, ok := apperrors.CollectionOf(err)
	assert.True(t, ok)
	assert.Equal(t, tableSessions, collection)
}

func TestSeedError_FallsBackToSeed(t *testing.T) {
	cases := map[string]error{
		"no table on server error": &pgconn.PgError{Code: pgInsufficientAccess},
		"not a server error":       errors.New("connection reset"),
	}
	for name, cause := range cases {
		t.Run(name, func(t *testing.T) {
			err := seedError(cause, "failed to start seed transaction")
			collection, ok := apperrors.CollectionOf(err)
			assert.True(t, ok)
			assert.Equal(t, seedCollection, collection)
		})
	}
}

func TestSeedError_DuplicateStaysDuplicate(t *testing.T) {
	err := seedError(&pgconn.PgError{Code: pgUniqueViolation, TableName: tableInvoices, ConstraintName: "invoices_number_key"}, "failed to write demo batch")
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
}
