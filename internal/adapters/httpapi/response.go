package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"venueadmin/internal/domain/entities"
	"venueadmin/internal/ports/input"
)

type errorResponse struct {
	Error string `json:"error"`
}

type eventResponse struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	Date             string            `json:"date"`
	Guests           int               `json:"guests"`
	PricePerPlate    decimal.Decimal   `json:"pricePerPlate"`
	Total            decimal.Decimal   `json:"total"`
	RemainingBalance decimal.Decimal   `json:"remainingBalance"`
	RemainingPlates  int               `json:"remainingPlates"`
	Currency         string            `json:"currency"`
	EventTypeID      uint              `json:"eventTypeId"`
	SellerID         uint              `json:"sellerId"`
	Observations     *string           `json:"observations,omitempty"`
	Menu             *string           `json:"menu,omitempty"`
	FileURLs         []string          `json:"fileUrls"`
	Payments         []paymentResponse `json:"payments,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type paymentResponse struct {
	ID        string          `json:"id"`
	EventID   uint            `json:"eventId"`
	Amount    decimal.Decimal `json:"amount"`
	PayerName string          `json:"payerName"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

type progressResponse struct {
	TotalPaid  decimal.Decimal `json:"totalPaid"`
	EventTotal decimal.Decimal `json:"eventTotal"`
}

type currencyMetricsResponse struct {
	Currency            string          `json:"currency"`
	TotalEvents         int             `json:"totalEvents"`
	TotalGuests         int             `json:"totalGuests"`
	TotalPendingBalance decimal.Decimal `json:"totalPendingBalance"`
	TotalPayments       decimal.Decimal `json:"totalPayments"`
}

type metricsResponse struct {
	TotalEvents int                       `json:"totalEvents"`
	TotalGuests int                       `json:"totalGuests"`
	ByCurrency  []currencyMetricsResponse `json:"metricsByCurrency"`
}

func toEventResponse(e *entities.Event) eventResponse {
	resp := eventResponse{
		ID:               e.ID,
		Name:             e.Name,
		Date:             e.Date.Format("2006-01-02"),
		Guests:           e.Guests,
		PricePerPlate:    e.PricePerPlate,
		Total:            e.Total,
		RemainingBalance: e.RemainingBalance,
		RemainingPlates:  e.RemainingPlates,
		Currency:         string(e.Currency),
		EventTypeID:      e.EventTypeID,
		SellerID:         e.SellerID,
		Observations:     e.Observations,
		Menu:             e.Menu,
		FileURLs:         e.FileURLs,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if resp.FileURLs == nil {
		resp.FileURLs = []string{}
	}
	for i := range e.Payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(&e.Payments[i]))
	}
	return resp
}

func toPaymentResponse(p *entities.Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		EventID:   p.EventID,
		Amount:    p.Amount,
		PayerName: p.PayerName,
		Date:      p.Date,
		CreatedAt: p.CreatedAt,
	}
}

func toMetricsResponse(m *entities.Metrics) metricsResponse {
	resp := metricsResponse{
		TotalEvents: m.TotalEvents,
		TotalGuests: m.TotalGuests,
		ByCurrency:  []currencyMetricsResponse{},
	}
	for _, g := range m.ByCurrency {
		resp.ByCurrency = append(resp.ByCurrency, currencyMetricsResponse{
			Currency:            string(g.Currency),
			TotalEvents:         g.TotalEvents,
			TotalGuests:         g.TotalGuests,
			TotalPendingBalance: g.TotalPendingBalance,
			TotalPayments:       g.TotalPayments,
		})
	}
	return resp
}

func toProgressResponse(p *input.PaymentProgress) progressResponse {
	return progressResponse{TotalPaid: p.TotalPaid, EventTotal: p.EventTotal}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
