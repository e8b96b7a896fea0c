package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"venueadmin/internal/ports/input"
)

type createEventRequest struct {
	Name          string          `json:"name"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Guests        int             `json:"guests"`
	PricePerPlate decimal.Decimal `json:"pricePerPlate"`
	Currency      string          `json:"currency"`
	EventTypeID   uint            `json:"eventTypeId"`
	SellerID      uint            `json:"sellerId"`
	Observations  *string         `json:"observations"`
	Menu          *string         `json:"menu"`
	FileURLs      []string        `json:"fileUrls"`
}

type updateTermsRequest struct {
	Guests        int             `json:"guests"`
	PricePerPlate decimal.Decimal `json:"pricePerPlate"`
	Observations  *string         `json:"observations"`
	Menu          *string         `json:"menu"`
	FileURLs      []string        `json:"fileUrls"`
}

// CreateEvent handles POST /api/events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "error.invalid_body", nil)
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "error.invalid_body", nil)
			return
		}
		date = parsed
	}

	event, err := h.eventUseCase.CreateEvent(r.Context(), input.CreateEventParams{
		Name:          req.Name,
		Date:          date,
		Guests:        req.Guests,
		PricePerPlate: req.PricePerPlate,
		Currency:      req.Currency,
		EventTypeID:   req.EventTypeID,
		SellerID:      req.SellerID,
		Observations:  req.Observations,
		Menu:          req.Menu,
		FileURLs:      req.FileURLs,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

// ListEvents handles GET /api/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventUseCase.ListEvents(r.Context())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetEvent handles GET /api/events/{id}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}
	event, err := h.eventUseCase.GetEvent(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// UpdateEventTerms handles PUT /api/events/{id}. Changing guests or the
// per-plate price triggers the balance recalculation against payments
// already made.
func (h *Handler) UpdateEventTerms(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}
	var req updateTermsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "error.invalid_body", nil)
		return
	}
	event, err := h.eventUseCase.UpdateEventTerms(r.Context(), id, input.UpdateTermsParams{
		Guests:        req.Guests,
		PricePerPlate: req.PricePerPlate,
		Observations:  req.Observations,
		Menu:          req.Menu,
		FileURLs:      req.FileURLs,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// DeleteEvent handles DELETE /api/events/{id}. Payments owned by the event
// are deleted with it.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}
	if err := h.eventUseCase.DeleteEvent(r.Context(), id); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// eventIDParam parses the {id} route parameter. A zero or malformed id is
// answered directly with 400.
func (h *Handler) eventIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		h.writeError(w, r, http.StatusBadRequest, "error.invalid_id", nil)
		return 0, false
	}
	return uint(id), true
}
