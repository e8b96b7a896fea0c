package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.5", "ARS", "ARS 1.234,50"},
		{"1696.5", "ARS", "ARS 1.696,50"},
		{"0", "USD", "USD 0,00"},
		{"999", "ARS", "ARS 999,00"},
		{"1000000", "USD", "USD 1.000.000,00"},
		{"-25.5", "ARS", "ARS -25,50"},
		{"42.1", "", "42,10"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Equal(t, tt.want, got)
		})
	}
}
