// Package ledger holds the payment-and-balance reconciliation rules for
// events. All functions are pure with respect to the store: they validate
// and mutate an Event in memory, and callers persist the result inside a
// transaction.
package ledger

import (
	"github.com/shopspring/decimal"

	"venueadmin/internal/domain"
	"venueadmin/internal/domain/entities"
)

// ValidateTerms checks the basic pricing terms of an event.
func ValidateTerms(guests int, pricePerPlate decimal.Decimal) error {
	if guests <= 0 {
		return domain.ErrInvalidGuestCount
	}
	if !pricePerPlate.IsPositive() {
		return domain.ErrInvalidPrice
	}
	return nil
}

// Initialize sets the derived financial fields of a freshly created event:
// total = remainingBalance = guests * pricePerPlate, remainingPlates = guests.
func Initialize(ev *entities.Event) error {
	if err := ValidateTerms(ev.Guests, ev.PricePerPlate); err != nil {
		return err
	}
	ev.Total = decimal.NewFromInt(int64(ev.Guests)).Mul(ev.PricePerPlate)
	ev.RemainingBalance = ev.Total
	ev.RemainingPlates = ev.Guests
	return nil
}

// ApplyPayment validates amount against the event's remaining balance and,
// on success, decrements the balance and rederives the remaining plates as
// ceil(remainingBalance / pricePerPlate) so both fields move together.
func ApplyPayment(ev *entities.Event, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(ev.RemainingBalance) {
		return domain.ErrAmountExceedsBalance
	}
	ev.RemainingBalance = ev.RemainingBalance.Sub(amount)
	ev.RemainingPlates = platesFor(ev.RemainingBalance, ev.PricePerPlate)
	return nil
}

// Recalculate applies new terms (guest count and per-plate price) to an
// event that may already have payments against it. Plates fully covered by
// the cumulative payments stay locked in at the price they were paid at;
// only the rest is billed at the new price:
//
//	platesAlreadyPaid = floor(totalPaid / oldPrice)
//	platesRemaining   = max(newGuests - platesAlreadyPaid, 0)
//	remainingBalance  = platesRemaining * newPrice
//	total             = platesAlreadyPaid*oldPrice + remainingBalance
//
// The blended total reflects actual cash flow, not a naive guests*newPrice
// recompute.
func Recalculate(ev *entities.Event, totalPaid decimal.Decimal, newGuests int, newPrice decimal.Decimal) error {
	if err := ValidateTerms(newGuests, newPrice); err != nil {
		return err
	}
	oldPrice := ev.PricePerPlate
	if !oldPrice.IsPositive() {
		return domain.ErrInvalidPrice
	}

	platesAlreadyPaid := totalPaid.Div(oldPrice).Floor().IntPart()
	platesRemaining := int64(newGuests) - platesAlreadyPaid
	if platesRemaining < 0 {
		platesRemaining = 0
	}
	remainingBalance := decimal.NewFromInt(platesRemaining).Mul(newPrice)

	ev.Guests = newGuests
	ev.PricePerPlate = newPrice
	ev.RemainingBalance = remainingBalance
	ev.RemainingPlates = int(platesRemaining)
	ev.Total = decimal.NewFromInt(platesAlreadyPaid).Mul(oldPrice).Add(remainingBalance)
	return nil
}

// platesFor returns ceil(balance / price), never negative. A zero balance
// means every plate is covered.
func platesFor(balance, price decimal.Decimal) int {
	if !balance.IsPositive() || !price.IsPositive() {
		return 0
	}
	return int(balance.Div(price).Ceil().IntPart())
}
