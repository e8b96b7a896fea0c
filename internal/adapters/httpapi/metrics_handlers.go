package httpapi

import "net/http"

// GetMetrics handles GET /api/metrics: per-currency totals of events,
// guests, pending balances and payments.
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.metricsUseCase.GetMetrics(r.Context())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMetricsResponse(metrics))
}

// HealthCheck handles GET /health.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
