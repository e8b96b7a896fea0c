package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a partial payment recorded against an event's balance.
// Payments are immutable once created; they disappear only when their
// owning event is deleted.
type Payment struct {
	ID        string
	EventID   uint
	Amount    decimal.Decimal
	PayerName string
	Date      string // as supplied by the client, free-form
	CreatedAt time.Time
}
