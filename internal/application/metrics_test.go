package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venueadmin/internal/domain"
	"venueadmin/internal/ports/input"
)

func TestGetMetrics(t *testing.T) {
	store := newFakeStore()
	eventSvc := NewEventService(store, store)
	paymentSvc := NewPaymentService(store, store, &fakeNotifier{})
	metricsSvc := NewMetricsService(store)
	ctx := context.Background()

	ars1 := validCreateParams()
	ev1, err := eventSvc.CreateEvent(ctx, ars1)
	require.NoError(t, err)

	ars2 := validCreateParams()
	ars2.Name = "Egresados ET 28"
	ars2.Date = date("2026-12-05")
	ars2.Guests = 80
	ars2.PricePerPlate = dec("20")
	_, err = eventSvc.CreateEvent(ctx, ars2)
	require.NoError(t, err)

	usd := validCreateParams()
	usd.Name = "Casamiento Ferreyra"
	usd.Date = date("2026-12-12")
	usd.Currency = "USD"
	usd.Guests = 100
	usd.PricePerPlate = dec("30")
	evUSD, err := eventSvc.CreateEvent(ctx, usd)
	require.NoError(t, err)

	_, err = paymentSvc.CreatePayment(ctx, input.CreatePaymentParams{
		EventID: ev1.ID, Amount: dec("600"), PayerName: "Martina", Date: "2026-06-01",
	})
	require.NoError(t, err)
	_, err = paymentSvc.CreatePayment(ctx, input.CreatePaymentParams{
		EventID: evUSD.ID, Amount: dec("1000"), PayerName: "Ferreyra", Date: "2026-06-02",
	})
	require.NoError(t, err)

	metrics, err := metricsSvc.GetMetrics(ctx)
	require.NoError(t, err)

	require.Len(t, metrics.ByCurrency, 2)
	assert.Equal(t, 3, metrics.TotalEvents)
	assert.Equal(t, 230, metrics.TotalGuests)

	byCurrency := map[domain.Currency]int{}
	sumEvents, sumGuests := 0, 0
	for _, g := range metrics.ByCurrency {
		byCurrency[g.Currency] = g.TotalEvents
		sumEvents += g.TotalEvents
		sumGuests += g.TotalGuests
	}
	// grouped totals reconcile with the overall ones
	assert.Equal(t, metrics.TotalEvents, sumEvents)
	assert.Equal(t, metrics.TotalGuests, sumGuests)
	assert.Equal(t, 2, byCurrency[domain.ARS])
	assert.Equal(t, 1, byCurrency[domain.USD])

	for _, g := range metrics.ByCurrency {
		switch g.Currency {
		case domain.ARS:
			// 1275 - 600 pending on ev1, 1600 untouched on ars2
			assert.True(t, g.TotalPendingBalance.Equal(dec("2275")), "ARS pending = %s", g.TotalPendingBalance)
			assert.True(t, g.TotalPayments.Equal(dec("600")))
		case domain.USD:
			assert.True(t, g.TotalPendingBalance.Equal(dec("2000")))
			assert.True(t, g.TotalPayments.Equal(dec("1000")))
		}
	}
}

func TestGetMetrics_Empty(t *testing.T) {
	metricsSvc := NewMetricsService(newFakeStore())

	metrics, err := metricsSvc.GetMetrics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, metrics.TotalEvents)
	assert.Zero(t, metrics.TotalGuests)
	assert.Empty(t, metrics.ByCurrency)
}
