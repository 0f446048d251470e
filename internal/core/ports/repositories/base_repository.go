package repositories

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// SequenceRepository hands out document numbers.
type SequenceRepository interface {
	// NextSequence atomically increments and returns the counter for prefix and year.
	// The first value handed out for a new pair is 1.
	NextSequence(ctx context.Context, prefix string, year int) (int64, error)
}

// SeedRepository writes demo data.
type SeedRepository interface {
	// SeedDemoData persists every document of data in a single all-or-nothing batch
	// and raises number counters to the given floors.
	SeedDemoData(ctx context.Context, data domain.DemoData) error
}
