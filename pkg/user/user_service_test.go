package user

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/testutil"
	"DishAndMovie/pkg/jwt"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokens := jwt.NewJWTService("secret", "dishandmovie", time.Hour)
	svc := NewUserService(NewUserRepository(db), tokens)

	u, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    " Chef@Example.com ",
		UserName: "chef",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "chef@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)

	_, err = svc.Register(ctx, domain.RegisterRequest{Email: "CHEF@example.com", UserName: "dup", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "chef@EXAMPLE.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, login.Role)

	id, role, err := tokens.GetUserIDByToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
	assert.Equal(t, domain.RoleUser, role)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "chef@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	me, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "chef", me.UserName)

	_, err = svc.Me(ctx, u.ID+1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
