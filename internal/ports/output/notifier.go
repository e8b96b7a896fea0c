package output

import (
	"context"

	"venueadmin/internal/domain/entities"
)

// Notifier pushes client-facing notifications. Delivery (mail, WhatsApp,
// whatever the venue uses) lives behind this port; a notification failure
// must never fail the operation that triggered it.
type Notifier interface {
	// PaymentRecorded is called after a payment has been committed.
	PaymentRecorded(ctx context.Context, event *entities.Event, payment *entities.Payment) error
	// BalanceReminder is called for an upcoming event that still owes money.
	BalanceReminder(ctx context.Context, event *entities.Event) error
}
