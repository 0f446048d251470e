package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "DEV-2024-001", domain.FormatNumber(domain.PrefixQuote, 2024, 1))
	assert.Equal(t, "FAC-2025-1234", domain.FormatNumber(domain.PrefixInvoice, 2025, 1234))
}

func TestDeriveNumber(t *testing.T) {
	tests := []struct {
		number, from, to, want string
	}{
		{"FAC-2024-001", "FAC", "AVR", "AVR-2024-001"},
		{"X-007", "FAC", "AVR", "X-007-AVR"},
		{"DEV-2024-042", "DEV", "FAC", "FAC-2024-042"},
		{"Q-1", "DEV", "FAC", "Q-1-FAC"},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DeriveNumber(tt.number, tt.from, tt.to))
		})
	}
}

func TestParseNumber(t *testing.T) {
	prefix, year, seq, ok := domain.ParseNumber("FAC-2024-017")
	assert.True(t, ok)
	assert.Equal(t, "FAC", prefix)
	assert.Equal(t, 2024, year)
	assert.Equal(t, int64(17), seq)

	_, _, _, ok = domain.ParseNumber("X-007")
	assert.False(t, ok)
}

func TestSequenceFloors(t *testing.T) {
	quotes := []domain.Quote{{Number: "DEV-2024-003"}, {Number: "DEV-2024-011"}, {Number: "oops"}}
	invoices := []domain.Invoice{{Number: "FAC-2024-002"}, {Number: "AVR-2023-001"}}

	floors := domain.SequenceFloors(quotes, invoices)

	assert.Equal(t, []domain.SequenceFloor{
		{Prefix: "DEV", Year: 2024, Value: 11},
		{Prefix: "FAC", Year: 2024, Value: 2},
		{Prefix: "AVR", Year: 2023, Value: 1},
	}, floors)
}
