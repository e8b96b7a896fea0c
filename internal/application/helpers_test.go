package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"venueadmin/internal/domain"
	"venueadmin/internal/domain/entities"
	"venueadmin/internal/domain/ledger"
)

// fakeStore is an in-memory stand-in for the event and payment
// repositories. It reuses the ledger rules the same way the pgx
// repositories do, so service tests exercise the real arithmetic.
type fakeStore struct {
	nextID   uint
	events   map[uint]*entities.Event
	payments []entities.Payment
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, events: map[uint]*entities.Event{}}
}

func (s *fakeStore) Create(ctx context.Context, event *entities.Event) error {
	for _, e := range s.events {
		if e.Date.Equal(event.Date) {
			return &domain.DateConflictError{EventName: e.Name}
		}
	}
	event.ID = s.nextID
	s.nextID++
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *fakeStore) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *e
	copied.Payments = s.paymentsFor(id)
	return &copied, nil
}

func (s *fakeStore) List(ctx context.Context) ([]entities.Event, error) {
	out := make([]entities.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *fakeStore) UpdateTerms(ctx context.Context, id uint, newGuests int, newPrice decimal.Decimal, opts entities.TermsOptions) (*entities.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	totalPaid, _ := s.SumByEventID(ctx, id)
	if err := ledger.Recalculate(e, totalPaid, newGuests, newPrice); err != nil {
		return nil, err
	}
	if opts.Observations != nil {
		e.Observations = opts.Observations
	}
	if opts.Menu != nil {
		e.Menu = opts.Menu
	}
	if opts.FileURLs != nil {
		e.FileURLs = opts.FileURLs
	}
	e.UpdatedAt = time.Now()
	copied := *e
	copied.Payments = s.paymentsFor(id)
	return &copied, nil
}

func (s *fakeStore) Delete(ctx context.Context, id uint) error {
	if _, ok := s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(s.events, id)
	kept := s.payments[:0]
	for _, p := range s.payments {
		if p.EventID != id {
			kept = append(kept, p)
		}
	}
	s.payments = kept
	return nil
}

func (s *fakeStore) FindUnsettledBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	var out []entities.Event
	for _, e := range s.events {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		if e.RemainingBalance.IsPositive() {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *fakeStore) MetricsByCurrency(ctx context.Context) ([]entities.CurrencyMetrics, error) {
	groups := map[domain.Currency]*entities.CurrencyMetrics{}
	group := func(c domain.Currency) *entities.CurrencyMetrics {
		if c == "" {
			c = domain.DefaultCurrency
		}
		g, ok := groups[c]
		if !ok {
			g = &entities.CurrencyMetrics{
				Currency:            c,
				TotalPendingBalance: decimal.Zero,
				TotalPayments:       decimal.Zero,
			}
			groups[c] = g
		}
		return g
	}
	for _, e := range s.events {
		g := group(e.Currency)
		g.TotalEvents++
		g.TotalGuests += e.Guests
		g.TotalPendingBalance = g.TotalPendingBalance.Add(e.RemainingBalance)
	}
	for _, p := range s.payments {
		e, ok := s.events[p.EventID]
		if !ok {
			continue
		}
		g := group(e.Currency)
		g.TotalPayments = g.TotalPayments.Add(p.Amount)
	}
	out := make([]entities.CurrencyMetrics, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func (s *fakeStore) Record(ctx context.Context, payment *entities.Payment) (*entities.Event, error) {
	e, ok := s.events[payment.EventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if err := ledger.ApplyPayment(e, payment.Amount); err != nil {
		return nil, err
	}
	payment.ID = fmt.Sprintf("pay-%d", len(s.payments)+1)
	payment.CreatedAt = time.Now()
	s.payments = append(s.payments, *payment)
	copied := *e
	return &copied, nil
}

func (s *fakeStore) FindByEventID(ctx context.Context, eventID uint) ([]entities.Payment, error) {
	return s.paymentsFor(eventID), nil
}

func (s *fakeStore) SumByEventID(ctx context.Context, eventID uint) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range s.payments {
		if p.EventID == eventID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (s *fakeStore) paymentsFor(eventID uint) []entities.Payment {
	out := []entities.Payment{}
	for _, p := range s.payments {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out
}

// fakeNotifier records every notification it receives.
type fakeNotifier struct {
	recorded  []string
	reminders []string
}

func (n *fakeNotifier) PaymentRecorded(ctx context.Context, event *entities.Event, payment *entities.Payment) error {
	n.recorded = append(n.recorded, fmt.Sprintf("%s:%s", event.Name, payment.Amount))
	return nil
}

func (n *fakeNotifier) BalanceReminder(ctx context.Context, event *entities.Event) error {
	n.reminders = append(n.reminders, event.Name)
	return nil
}
