package application

import (
	"context"
	"log"
	"strings"

	"venueadmin/internal/domain"
	"venueadmin/internal/domain/entities"
	"venueadmin/internal/ports/input"
	"venueadmin/internal/ports/output"
)

type PaymentService struct {
	paymentRepo output.PaymentRepository
	eventRepo   output.EventRepository
	notifier    output.Notifier
}

func NewPaymentService(
	paymentRepo output.PaymentRepository,
	eventRepo output.EventRepository,
	notifier output.Notifier,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
	}
}

// CreatePayment records a partial payment. The sufficiency check against
// the remaining balance and the balance decrement run atomically in the
// repository; the client notification happens after commit and never fails
// the request.
func (s *PaymentService) CreatePayment(ctx context.Context, params input.CreatePaymentParams) (*entities.Payment, error) {
	if params.EventID == 0 {
		return nil, &domain.MissingFieldError{Field: "eventId"}
	}
	payerName := strings.TrimSpace(params.PayerName)
	if payerName == "" {
		return nil, &domain.MissingFieldError{Field: "payerName"}
	}
	if strings.TrimSpace(params.Date) == "" {
		return nil, &domain.MissingFieldError{Field: "date"}
	}
	if !params.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	payment := &entities.Payment{
		EventID:   params.EventID,
		Amount:    params.Amount,
		PayerName: payerName,
		Date:      params.Date,
	}
	event, err := s.paymentRepo.Record(ctx, payment)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.PaymentRecorded(ctx, event, payment); err != nil {
		log.Printf("notifier: payment recorded (event=%d): %v", event.ID, err)
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, eventID uint) ([]entities.Payment, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByEventID(ctx, eventID)
}

// GetPaymentProgress returns how much has been paid against the event's
// current total. Reads only; calling it twice without intervening writes
// yields identical values.
func (s *PaymentService) GetPaymentProgress(ctx context.Context, eventID uint) (*input.PaymentProgress, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	totalPaid, err := s.paymentRepo.SumByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &input.PaymentProgress{
		TotalPaid:  totalPaid,
		EventTotal: event.Total,
	}, nil
}
