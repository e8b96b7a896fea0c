package httpapi

import (
	"net/http"

	"github.com/shopspring/decimal"

	"venueadmin/internal/ports/input"
)

type createPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	PayerName string          `json:"payerName"`
	Date      string          `json:"date"`
}

// CreatePayment handles POST /api/events/{id}/payments.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "error.invalid_body", nil)
		return
	}
	payment, err := h.paymentUseCase.CreatePayment(r.Context(), input.CreatePaymentParams{
		EventID:   id,
		Amount:    req.Amount,
		PayerName: req.PayerName,
		Date:      req.Date,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

// ListPayments handles GET /api/events/{id}/payments.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}
	payments, err := h.paymentUseCase.ListPayments(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetPaymentProgress handles GET /api/events/{id}/progress.
func (h *Handler) GetPaymentProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}
	progress, err := h.paymentUseCase.GetPaymentProgress(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}
