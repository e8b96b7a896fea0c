package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"venueadmin/internal/domain"
)

// Event is a booked venue engagement. Financial fields are derived: Total,
// RemainingBalance and RemainingPlates are maintained by the ledger rules,
// never written directly by callers.
type Event struct {
	ID               uint
	Name             string
	Date             time.Time // date component only, venue-local
	Guests           int
	PricePerPlate    decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	RemainingPlates  int
	Currency         domain.Currency
	EventTypeID      uint
	SellerID         uint
	Observations     *string
	Menu             *string
	FileURLs         []string
	Payments         []Payment
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TermsOptions carries the optional fields of a terms update. Nil members
// leave the stored value untouched.
type TermsOptions struct {
	Observations *string
	Menu         *string
	FileURLs     []string
}

// IsSettled reports whether nothing is owed on the event.
func (e *Event) IsSettled() bool {
	return e.RemainingBalance.LessThanOrEqual(decimal.Zero)
}

// TotalPaid sums the amounts of the loaded payments.
func (e *Event) TotalPaid() decimal.Decimal {
	paid := decimal.Zero
	for i := range e.Payments {
		paid = paid.Add(e.Payments[i].Amount)
	}
	return paid
}
