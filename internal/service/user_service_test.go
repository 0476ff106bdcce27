package service

import (
	"context"
	"testing"
	"time"

	"cargofunds/internal/model"
	"cargofunds/internal/repository"
	"cargofunds/internal/testutil"
	"cargofunds/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newUserService(t *testing.T) UserService {
	db := testutil.NewDB(t)
	return NewUserService(repository.NewUserRepository(db), testSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.Register(ctx, RegisterRequest{Username: "  dana ", Password: "secret1", FirstName: "Dana"})
	require.NoError(t, err)
	assert.Equal(t, "dana", user.Username)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.True(t, user.Active)

	finance, err := svc.Register(ctx, RegisterRequest{Username: "fin", Password: "secret1", Role: "finance"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleFinance, finance.Role)

	_, err = svc.Register(ctx, RegisterRequest{Username: "dana", Password: "secret1"})
	assert.EqualError(t, err, "Username already exists: dana")

	_, err = svc.Register(ctx, RegisterRequest{Username: "x", Password: "secret1", Role: "ROOT"})
	assert.True(t, apperror.IsInvalid(err))

	_, err = svc.Register(ctx, RegisterRequest{Username: "y", Password: "123"})
	assert.EqualError(t, err, "Password must be at least 6 characters")
}

func TestLoginIssuesSignedToken(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, RegisterRequest{Username: "erin", Password: "secret1", Role: model.RoleAdmin})
	require.NoError(t, err)

	token, err := svc.Login(ctx, LoginRequest{Username: "erin", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	parsed, err := jwt.Parse(token.Token, func(*jwt.Token) (interface{}, error) { return testSecret, nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "erin", claims["sub"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), parsed.Method.Alg())
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, RegisterRequest{Username: "erin", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Username: "erin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Username: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByUsername(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, RegisterRequest{Username: "erin", Password: "secret1"})
	require.NoError(t, err)

	user, err := svc.GetByUsername(ctx, "erin")
	require.NoError(t, err)
	assert.Equal(t, "erin", user.Username)

	_, err = svc.GetByUsername(ctx, "ghost")
	assert.True(t, apperror.IsNotFound(err))
}
