package input

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"venueadmin/internal/domain/entities"
)

// CreateEventParams is everything needed to book an event.
type CreateEventParams struct {
	Name          string
	Date          time.Time
	Guests        int
	PricePerPlate decimal.Decimal
	Currency      string
	EventTypeID   uint
	SellerID      uint
	Observations  *string
	Menu          *string
	FileURLs      []string
}

// UpdateTermsParams changes an event's guest count and per-plate price,
// triggering the balance recalculation rule.
type UpdateTermsParams struct {
	Guests        int
	PricePerPlate decimal.Decimal
	Observations  *string
	Menu          *string
	FileURLs      []string
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, params CreateEventParams) (*entities.Event, error)
	GetEvent(ctx context.Context, id uint) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	UpdateEventTerms(ctx context.Context, id uint, params UpdateTermsParams) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}
