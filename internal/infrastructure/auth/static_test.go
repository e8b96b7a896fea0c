package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venueadmin/internal/domain"
)

func TestStaticAuthenticator(t *testing.T) {
	a := NewStaticAuthenticator([]Credential{
		{Email: "dueña@salon.com.ar", Password: "secreto", Role: domain.RoleAdmin},
		{Email: "Vendedor@salon.com.ar", Password: "otro", Role: domain.RoleSubadmin},
	})
	ctx := context.Background()

	role, err := a.Authenticate(ctx, "dueña@salon.com.ar", "secreto")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	// email lookup is case-insensitive
	role, err = a.Authenticate(ctx, "vendedor@salon.com.ar", "otro")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSubadmin, role)

	_, err = a.Authenticate(ctx, "dueña@salon.com.ar", "equivocado")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = a.Authenticate(ctx, "nadie@salon.com.ar", "secreto")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
