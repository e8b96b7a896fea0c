package httpapi

import (
	"errors"
	"log"
	"net/http"

	"venueadmin/internal/domain"
)

// locale picks the caller's preferred language. go-i18n understands the raw
// Accept-Language value.
func locale(r *http.Request) string {
	return r.Header.Get("Accept-Language")
}

// writeError renders a localized error envelope for a fixed message key.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, key string, data map[string]any) {
	writeJSON(w, status, errorResponse{Error: h.translator.T(locale(r), key, data)})
}

// respondDomainError translates a domain error to an HTTP status and a
// localized message. Unknown errors are logged with detail and surfaced
// generically.
func (h *Handler) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status = http.StatusInternalServerError
		key    = "error.internal"
		data   map[string]any
	)

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDateConflict):
		status = http.StatusConflict
		var conflict *domain.DateConflictError
		if errors.As(err, &conflict) {
			data = map[string]any{"Name": conflict.EventName}
		} else {
			data = map[string]any{"Name": "?"}
		}
	case errors.Is(err, domain.ErrAmountExceedsBalance):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrMissingField):
		status = http.StatusBadRequest
		var missing *domain.MissingFieldError
		if errors.As(err, &missing) {
			data = map[string]any{"Field": missing.Field}
		} else {
			data = map[string]any{"Field": "?"}
		}
	case errors.Is(err, domain.ErrInvalidGuestCount),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCurrency):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	if code := domain.Code(err); code != "" {
		key = "error." + code
	}
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
	}
	h.writeError(w, r, status, key, data)
}
