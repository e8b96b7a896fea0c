package output

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"venueadmin/internal/domain/entities"
)

// EventRepository persists events. Create and UpdateTerms are atomic: the
// date-collision check and the recalculation read-modify-write each run
// inside a single store transaction.
type EventRepository interface {
	// Create inserts the event after checking no other event occupies the
	// same date. On collision it returns a domain.DateConflictError naming
	// the existing event.
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	// UpdateTerms locks the event row, sums its payments, applies the
	// balance recalculation rule with the new terms and persists the
	// result. Optional fields are overwritten only when non-nil.
	UpdateTerms(ctx context.Context, id uint, newGuests int, newPrice decimal.Decimal, opts entities.TermsOptions) (*entities.Event, error)
	// Delete removes the event and, by ownership, all its payments.
	Delete(ctx context.Context, id uint) error
	// FindUnsettledBetween returns events dated within [from, to] that
	// still owe a balance. Used for payment reminders.
	FindUnsettledBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error)
	// MetricsByCurrency aggregates events and their payments per currency.
	MetricsByCurrency(ctx context.Context) ([]entities.CurrencyMetrics, error)
}
