package output

import (
	"context"

	"github.com/shopspring/decimal"

	"venueadmin/internal/domain/entities"
)

// PaymentRepository persists payments. Record is atomic: validating the
// amount against the remaining balance and decrementing that balance happen
// under a lock on the owning event so two concurrent payments can never
// both pass the sufficiency check.
type PaymentRepository interface {
	// Record validates and inserts the payment and updates the owning
	// event's balance. It returns the event as it stands after the payment.
	Record(ctx context.Context, payment *entities.Payment) (*entities.Event, error)
	FindByEventID(ctx context.Context, eventID uint) ([]entities.Payment, error)
	// SumByEventID totals the recorded payment amounts for the event.
	SumByEventID(ctx context.Context, eventID uint) (decimal.Decimal, error)
}
