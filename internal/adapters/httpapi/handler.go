// Package httpapi exposes the application's use cases as a JSON HTTP API.
package httpapi

import (
	"venueadmin/internal/ports/input"
	"venueadmin/internal/ports/output"
)

// Handler handles HTTP requests using use cases.
type Handler struct {
	eventUseCase   input.EventUseCase
	paymentUseCase input.PaymentUseCase
	metricsUseCase input.MetricsUseCase
	translator     output.T
	authenticator  output.Authenticator
}

// NewHandler creates a Handler.
func NewHandler(
	eventUseCase input.EventUseCase,
	paymentUseCase input.PaymentUseCase,
	metricsUseCase input.MetricsUseCase,
	translator output.T,
	authenticator output.Authenticator,
) *Handler {
	return &Handler{
		eventUseCase:   eventUseCase,
		paymentUseCase: paymentUseCase,
		metricsUseCase: metricsUseCase,
		translator:     translator,
		authenticator:  authenticator,
	}
}
