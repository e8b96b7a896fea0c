package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venueadmin/internal/domain"
	"venueadmin/internal/domain/entities"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newEvent(guests int, price string) *entities.Event {
	ev := &entities.Event{
		Name:          "Casamiento López",
		Guests:        guests,
		PricePerPlate: dec(price),
		Currency:      domain.ARS,
	}
	if err := Initialize(ev); err != nil {
		panic(err)
	}
	return ev
}

func TestInitialize(t *testing.T) {
	ev := &entities.Event{Guests: 50, PricePerPlate: dec("25.5")}
	require.NoError(t, Initialize(ev))

	assert.True(t, ev.Total.Equal(dec("1275")), "total = %s", ev.Total)
	assert.True(t, ev.RemainingBalance.Equal(dec("1275")))
	assert.Equal(t, 50, ev.RemainingPlates)
}

func TestInitialize_InvalidTerms(t *testing.T) {
	tests := []struct {
		name   string
		guests int
		price  string
		want   error
	}{
		{"zero guests", 0, "25.5", domain.ErrInvalidGuestCount},
		{"negative guests", -3, "25.5", domain.ErrInvalidGuestCount},
		{"zero price", 10, "0", domain.ErrInvalidPrice},
		{"negative price", 10, "-1", domain.ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &entities.Event{Guests: tt.guests, PricePerPlate: dec(tt.price)}
			assert.ErrorIs(t, Initialize(ev), tt.want)
		})
	}
}

func TestApplyPayment(t *testing.T) {
	ev := newEvent(50, "25.5")

	require.NoError(t, ApplyPayment(ev, dec("600")))
	assert.True(t, ev.RemainingBalance.Equal(dec("675")), "balance = %s", ev.RemainingBalance)
	// 675 / 25.5 = 26.47..., 27 plates still uncovered
	assert.Equal(t, 27, ev.RemainingPlates)

	require.NoError(t, ApplyPayment(ev, dec("675")))
	assert.True(t, ev.RemainingBalance.IsZero())
	assert.Equal(t, 0, ev.RemainingPlates)
	assert.True(t, ev.IsSettled())
}

func TestApplyPayment_ExceedsBalance(t *testing.T) {
	ev := newEvent(10, "100")

	err := ApplyPayment(ev, dec("1000.01"))
	assert.ErrorIs(t, err, domain.ErrAmountExceedsBalance)
	// a rejected payment must not touch the event
	assert.True(t, ev.RemainingBalance.Equal(dec("1000")))
	assert.Equal(t, 10, ev.RemainingPlates)
}

func TestApplyPayment_InvalidAmount(t *testing.T) {
	ev := newEvent(10, "100")

	assert.ErrorIs(t, ApplyPayment(ev, dec("0")), domain.ErrInvalidAmount)
	assert.ErrorIs(t, ApplyPayment(ev, dec("-50")), domain.ErrInvalidAmount)
}

func TestApplyPayment_BalanceMatchesPaymentSum(t *testing.T) {
	ev := newEvent(60, "30")
	amounts := []string{"100", "350.25", "49.75", "500"}

	paid := decimal.Zero
	for _, a := range amounts {
		require.NoError(t, ApplyPayment(ev, dec(a)))
		paid = paid.Add(dec(a))
	}
	assert.True(t, ev.RemainingBalance.Equal(ev.Total.Sub(paid)),
		"balance = total - sum(payments): %s != %s", ev.RemainingBalance, ev.Total.Sub(paid))
}

// Worked reconciliation example: 50 guests at 25.5 with 600 already paid
// covers floor(600/25.5)=23 plates; moving to 60 guests at 30 leaves 37
// plates at the new price and a blended total of 23*25.5 + 37*30.
func TestRecalculate_BlendedTotal(t *testing.T) {
	ev := newEvent(50, "25.5")

	require.NoError(t, Recalculate(ev, dec("600"), 60, dec("30")))

	assert.Equal(t, 60, ev.Guests)
	assert.True(t, ev.PricePerPlate.Equal(dec("30")))
	assert.Equal(t, 37, ev.RemainingPlates)
	assert.True(t, ev.RemainingBalance.Equal(dec("1110")), "balance = %s", ev.RemainingBalance)
	assert.True(t, ev.Total.Equal(dec("1696.5")), "total = %s", ev.Total)
}

func TestRecalculate_NoPayments(t *testing.T) {
	ev := newEvent(50, "25.5")

	require.NoError(t, Recalculate(ev, decimal.Zero, 40, dec("28")))

	assert.Equal(t, 40, ev.RemainingPlates)
	assert.True(t, ev.RemainingBalance.Equal(dec("1120")))
	assert.True(t, ev.Total.Equal(dec("1120")))
}

func TestRecalculate_PaymentsCoverMoreThanNewGuests(t *testing.T) {
	ev := newEvent(50, "10")

	// 480 paid covers 48 plates at the old price; shrinking to 30 guests
	// leaves nothing owed, and the total honors the 48 plates actually paid.
	require.NoError(t, Recalculate(ev, dec("480"), 30, dec("12")))

	assert.Equal(t, 0, ev.RemainingPlates)
	assert.True(t, ev.RemainingBalance.IsZero())
	assert.True(t, ev.Total.Equal(dec("480")))
}

func TestRecalculate_ExactPlateBoundary(t *testing.T) {
	ev := newEvent(20, "25.5")

	// 510 = exactly 20 plates at 25.5; no rounding slack allowed
	require.NoError(t, Recalculate(ev, dec("510"), 25, dec("30")))

	assert.Equal(t, 5, ev.RemainingPlates)
	assert.True(t, ev.RemainingBalance.Equal(dec("150")))
	assert.True(t, ev.Total.Equal(dec("660")))
}

func TestRecalculate_InvalidNewTerms(t *testing.T) {
	ev := newEvent(50, "25.5")

	assert.ErrorIs(t, Recalculate(ev, dec("600"), 0, dec("30")), domain.ErrInvalidGuestCount)
	assert.ErrorIs(t, Recalculate(ev, dec("600"), 60, dec("0")), domain.ErrInvalidPrice)
	// failed recalculation leaves the event untouched
	assert.Equal(t, 50, ev.Guests)
	assert.True(t, ev.Total.Equal(dec("1275")))
}
