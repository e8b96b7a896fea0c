package output

import (
	"context"

	"venueadmin/internal/domain"
)

// Authenticator resolves staff credentials to a role. Identity lives
// entirely behind this port; the core never sees a user table.
type Authenticator interface {
	// Authenticate returns the role for the given credentials, or
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (domain.Role, error)
}
