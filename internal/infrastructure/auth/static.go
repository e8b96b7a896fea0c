// Package auth provides a credential-lookup adapter backed by the service
// configuration. Identity stays behind the output.Authenticator port; the
// rest of the application never sees a user table.
package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"venueadmin/internal/domain"
	"venueadmin/internal/ports/output"
)

var _ output.Authenticator = (*StaticAuthenticator)(nil)

// Credential is one staff login as declared in the configuration.
type Credential struct {
	Email    string
	Password string
	Role     domain.Role
}

// StaticAuthenticator resolves credentials against a fixed list loaded at
// startup.
type StaticAuthenticator struct {
	byEmail map[string]Credential
}

func NewStaticAuthenticator(credentials []Credential) *StaticAuthenticator {
	byEmail := make(map[string]Credential, len(credentials))
	for _, c := range credentials {
		byEmail[strings.ToLower(strings.TrimSpace(c.Email))] = c
	}
	return &StaticAuthenticator{byEmail: byEmail}
}

func (a *StaticAuthenticator) Authenticate(ctx context.Context, email, password string) (domain.Role, error) {
	c, ok := a.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		// burn the comparison anyway so lookups take the same time
		subtle.ConstantTimeCompare([]byte(password), []byte(password))
		return "", domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) != 1 {
		return "", domain.ErrInvalidCredentials
	}
	return c.Role, nil
}
