package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00 €"},
		{"12.5", "12,50 €"},
		{"1234.567", "1 234,57 €"},
		{"1000000", "1 000 000,00 €"},
		{"-2500", "-2 500,00 €"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEuro(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(decimal.RequireFromString("2.00")))
	assert.Equal(t, "1,5", FormatQuantity(decimal.RequireFromString("1.5")))
}

func TestFrenchDates(t *testing.T) {
	d := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "10/06/2024", FormatFrenchDate(d))
	assert.Equal(t, "lun. 10 juin", FormatShortFrenchDay(d))
}
