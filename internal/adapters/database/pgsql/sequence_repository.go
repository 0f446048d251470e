package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

const nextSequenceSQL = `
	INSERT INTO document_sequences (prefix, year, value) VALUES ($1, $2, 1)
	ON CONFLICT (prefix, year) DO UPDATE SET value = document_sequences.value + 1
	RETURNING value`

// raiseSequenceSQL never lowers a counter.
const raiseSequenceSQL = `
	INSERT INTO document_sequences (prefix, year, value) VALUES ($1, $2, $3)
	ON CONFLICT (prefix, year) DO UPDATE SET value = GREATEST(document_sequences.value, EXCLUDED.value)`

func (r *PgxSequenceRepository) NextSequence(ctx context.Context, prefix string, year int) (int64, error) {
	var value int64
	if err := r.Pool.QueryRow(ctx, nextSequenceSQL, prefix, year).Scan(&value); err != nil {
		return 0, storeError(tableSequences, err, fmt.Sprintf("failed to advance sequence %s-%d", prefix, year))
	}
	return value, nil
}
