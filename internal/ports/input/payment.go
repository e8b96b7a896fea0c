package input

import (
	"context"

	"github.com/shopspring/decimal"

	"venueadmin/internal/domain/entities"
)

// CreatePaymentParams records a partial payment against an event.
type CreatePaymentParams struct {
	EventID   uint
	Amount    decimal.Decimal
	PayerName string
	Date      string
}

// PaymentProgress is a snapshot of how much of an event has been paid.
type PaymentProgress struct {
	TotalPaid  decimal.Decimal
	EventTotal decimal.Decimal
}

type PaymentUseCase interface {
	CreatePayment(ctx context.Context, params CreatePaymentParams) (*entities.Payment, error)
	ListPayments(ctx context.Context, eventID uint) ([]entities.Payment, error)
	GetPaymentProgress(ctx context.Context, eventID uint) (*PaymentProgress, error)
}
