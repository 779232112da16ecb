package jwt

import (
	"DishAndMovie/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", "dishandmovie", time.Hour)

	token, err := svc.GenerateTokenUser(42, domain.RoleAdmin)
	require.NoError(t, err)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", "dishandmovie", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
		err   error
	}{
		{
			name: "garbage",
			token: func(*testing.T) string {
				return "not-a-token"
			},
			err: domain.ErrTokenInvalid,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := NewJWTService("other", "dishandmovie", time.Hour).GenerateTokenUser(1, domain.RoleUser)
				require.NoError(t, err)
				return tok
			},
			err: domain.ErrTokenInvalid,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				tok, err := NewJWTService("secret", "someone-else", time.Hour).GenerateTokenUser(1, domain.RoleUser)
				require.NoError(t, err)
				return tok
			},
			err: domain.ErrTokenInvalid,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				tok, err := NewJWTService("secret", "dishandmovie", -time.Minute).GenerateTokenUser(1, domain.RoleUser)
				require.NoError(t, err)
				return tok
			},
			err: domain.ErrTokenExpired,
		},
		{
			name: "zero user",
			token: func(t *testing.T) string {
				tok, err := svc.GenerateTokenUser(0, domain.RoleUser)
				require.NoError(t, err)
				return tok
			},
			err: domain.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.GetUserIDByToken(tt.token(t))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
