package entities

import (
	"github.com/shopspring/decimal"

	"venueadmin/internal/domain"
)

// CurrencyMetrics aggregates the financial state of all events billed in
// one currency.
type CurrencyMetrics struct {
	Currency            domain.Currency
	TotalEvents         int
	TotalGuests         int
	TotalPendingBalance decimal.Decimal
	TotalPayments       decimal.Decimal
}

// Metrics is the overall aggregation. TotalEvents and TotalGuests equal the
// sums of the per-currency groups.
type Metrics struct {
	TotalEvents int
	TotalGuests int
	ByCurrency  []CurrencyMetrics
}
