package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the chi router for the API. Every /api route requires
// valid staff credentials; mutations additionally require a managing role.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)

	r.Get("/health", HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Get("/{id}", h.GetEvent)
			r.Get("/{id}/payments", h.ListPayments)
			r.Get("/{id}/progress", h.GetPaymentProgress)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireManager)
				r.Post("/", h.CreateEvent)
				r.Put("/{id}", h.UpdateEventTerms)
				r.Delete("/{id}", h.DeleteEvent)
				r.Post("/{id}/payments", h.CreatePayment)
			})
		})

		r.Get("/metrics", h.GetMetrics)
	})

	return r
}
