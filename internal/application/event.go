package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"venueadmin/internal/domain"
	"venueadmin/internal/domain/entities"
	"venueadmin/internal/domain/ledger"
	"venueadmin/internal/ports/input"
	"venueadmin/internal/ports/output"
)

type EventService struct {
	eventRepo   output.EventRepository
	paymentRepo output.PaymentRepository
}

func NewEventService(
	eventRepo output.EventRepository,
	paymentRepo output.PaymentRepository,
) *EventService {
	return &EventService{
		eventRepo:   eventRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, params input.CreateEventParams) (*entities.Event, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, &domain.MissingFieldError{Field: "name"}
	}
	if params.Date.IsZero() {
		return nil, &domain.MissingFieldError{Field: "date"}
	}
	if params.EventTypeID == 0 {
		return nil, &domain.MissingFieldError{Field: "eventTypeId"}
	}
	if params.SellerID == 0 {
		return nil, &domain.MissingFieldError{Field: "sellerId"}
	}
	if err := ledger.ValidateTerms(params.Guests, params.PricePerPlate); err != nil {
		return nil, err
	}
	currency, err := domain.ParseCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	event := &entities.Event{
		Name:          name,
		Date:          truncateToDate(params.Date),
		Guests:        params.Guests,
		PricePerPlate: params.PricePerPlate,
		Currency:      currency,
		EventTypeID:   params.EventTypeID,
		SellerID:      params.SellerID,
		Observations:  params.Observations,
		Menu:          params.Menu,
		FileURLs:      params.FileURLs,
	}
	if err := ledger.Initialize(event); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.List(ctx)
}

// UpdateEventTerms changes guest count and per-plate price. The balance
// recalculation against already-recorded payments happens inside the
// repository transaction.
func (s *EventService) UpdateEventTerms(ctx context.Context, id uint, params input.UpdateTermsParams) (*entities.Event, error) {
	if err := ledger.ValidateTerms(params.Guests, params.PricePerPlate); err != nil {
		return nil, err
	}
	opts := entities.TermsOptions{
		Observations: params.Observations,
		Menu:         params.Menu,
		FileURLs:     params.FileURLs,
	}
	event, err := s.eventRepo.UpdateTerms(ctx, id, params.Guests, params.PricePerPlate, opts)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.eventRepo.Delete(ctx, id)
}

// UnsettledBetween lists events in the window that still owe a balance.
func (s *EventService) UnsettledBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	events, err := s.eventRepo.FindUnsettledBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("find unsettled events: %w", err)
	}
	return events, nil
}

// truncateToDate drops the time-of-day component; collisions are checked on
// the date alone.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
