package httpapi

import (
	"context"
	"net/http"

	"venueadmin/internal/domain"
)

type contextKey string

const roleKey contextKey = "role"

// RequireAuth resolves HTTP basic credentials through the Authenticator
// port and stores the resulting role in the request context.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="venueadmin"`)
			h.writeError(w, r, http.StatusUnauthorized, "error.invalid_credentials", nil)
			return
		}
		role, err := h.authenticator.Authenticate(r.Context(), email, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="venueadmin"`)
			h.writeError(w, r, http.StatusUnauthorized, "error.invalid_credentials", nil)
			return
		}
		ctx := context.WithValue(r.Context(), roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireManager allows only roles that may create or modify events.
func (h *Handler) RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(roleKey).(domain.Role)
		if !role.CanManageEvents() {
			h.writeError(w, r, http.StatusForbidden, "error.forbidden", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
