package service

import (
	"context"
	"testing"

	"feature-prefs-be/internal/dto"
	"feature-prefs-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) IAuthService {
	t.Helper()
	return NewAuthService(memory.NewRepositoryFactory(memory.NewStore()), nil)
}

func TestRegister_HashesPasswordAndRejectsDuplicates(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "ana@example.com",
		FullName: "Ana Test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotZero(t, res.Id)
	assert.Equal(t, "ana@example.com", res.Email)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "ana@example.com",
		FullName: "Ana Again",
		Password: "other-pass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin_IssuesTokenForValidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "ana@example.com",
		FullName: "Ana Test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, "127.0.0.1", "go-test")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Empty(t, res.RefreshToken) // no remember_me
	assert.Equal(t, "ana@example.com", res.User.Email)
}

func TestLogin_RememberMeIssuesRefreshToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "ana@example.com",
		FullName: "Ana Test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, &dto.LoginRequest{
		Email:      "ana@example.com",
		Password:   "s3cret-pass",
		RememberMe: true,
	}, "127.0.0.1", "go-test")
	require.NoError(t, err)
	assert.NotEmpty(t, res.RefreshToken)

	// Logout only revokes, it never errors on unknown hashes.
	require.NoError(t, svc.Logout(ctx, res.RefreshToken))
}

func TestLogin_RejectsBadPasswordAndUnknownUser(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "ana@example.com",
		FullName: "Ana Test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"}, "", "")
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "wrong"}, "", "")
	assert.EqualError(t, err, "invalid credentials")
}
